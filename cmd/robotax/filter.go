package main

import (
	"fmt"
	"io"

	"github.com/Veraticus/robot-taxonomy/internal/cli"
	"github.com/Veraticus/robot-taxonomy/internal/ingest"
	"github.com/spf13/cobra"
)

func filterCmd() *cobra.Command {
	var minDescription int

	cmd := &cobra.Command{
		Use:   "filter <input> <output>",
		Short: "Drop entries that are not individual robots",
		Long: `Remove category, list and portal pages and entries whose description is
too short to classify. The kept entries are written unchanged as JSON.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("min-description") {
				cfg.Filter.MinDescription = minDescription
			}

			records, err := readInput(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}

			kept, _ := ingest.Filter(records, ingest.FilterOptions{MinDescription: cfg.Filter.MinDescription})

			if err := writeOutput(args[1], cmd.OutOrStdout(), func(w io.Writer) error {
				return ingest.WriteRecords(w, kept)
			}); err != nil {
				return err
			}

			fmt.Fprintln(cmd.ErrOrStderr(), cli.FormatSuccess(
				fmt.Sprintf("Filtered %d → %d valid robot entries", len(records), len(kept))))
			return nil
		},
	}

	cmd.Flags().IntVar(&minDescription, "min-description", ingest.DefaultMinDescription, "minimum description length")

	return cmd
}
