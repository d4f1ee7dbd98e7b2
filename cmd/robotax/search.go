package main

import (
	"errors"
	"fmt"

	"github.com/Veraticus/robot-taxonomy/internal/cli"
	"github.com/Veraticus/robot-taxonomy/internal/common"
	"github.com/Veraticus/robot-taxonomy/internal/explore"
	"github.com/Veraticus/robot-taxonomy/internal/export"
	"github.com/spf13/cobra"
)

func searchCmd() *cobra.Command {
	var (
		query  explore.Query
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "search <classified.json>",
		Short: "Find classified robots",
		Long: `Filter a classified batch by keyword (matched against name and description)
and by exact domain or kingdom label.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := export.LoadClassified(args[0])
			if err != nil {
				return common.NewUserError("could not read classified records", err)
			}

			found := explore.Search(records, query)
			if asJSON {
				return export.WriteJSON(cmd.OutOrStdout(), found)
			}

			if len(found) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), cli.InfoStyle.Render("No matching robots."))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatTitle(fmt.Sprintf("%d matching robots", len(found))))
			return cli.RenderRecords(cmd.OutOrStdout(), found)
		},
	}

	cmd.Flags().StringVarP(&query.Keyword, "keyword", "k", "", "text to find in name or description")
	cmd.Flags().StringVar(&query.Domain, "domain", "", "exact domain label")
	cmd.Flags().StringVar(&query.Kingdom, "kingdom", "", "exact kingdom label")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print matches as JSON")

	return cmd
}

func similarCmd() *cobra.Command {
	var top int

	cmd := &cobra.Command{
		Use:   "similar <classified.json> <name>",
		Short: "Find robots classified like a given robot",
		Long: `Rank robots by how many taxonomy labels they share with the named robot:
one point per equal label from Domain to Genus, half a point per shared species.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := export.LoadClassified(args[0])
			if err != nil {
				return common.NewUserError("could not read classified records", err)
			}

			matches, err := explore.Similar(records, args[1], top)
			if errors.Is(err, common.ErrNotFound) {
				return common.NewUserError(fmt.Sprintf("no robot named %q", args[1]), err)
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatTitle("Robots similar to "+args[1]))
			return cli.RenderMatches(cmd.OutOrStdout(), matches)
		},
	}

	cmd.Flags().IntVarP(&top, "top", "n", 5, "number of matches to show (0 = all)")

	return cmd
}
