package main

import (
	"fmt"
	"time"

	"github.com/Veraticus/robot-taxonomy/internal/cli"
	"github.com/Veraticus/robot-taxonomy/internal/common"
	"github.com/Veraticus/robot-taxonomy/internal/export"
	"github.com/spf13/cobra"
)

func runsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "Manage stored classification runs",
		Long:  `List, inspect and delete classification runs saved with 'robotax classify --save'.`,
	}

	cmd.AddCommand(listRunsCmd())
	cmd.AddCommand(showRunCmd())
	cmd.AddCommand(deleteRunCmd())

	return cmd
}

func listRunsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			store, err := initStorage(ctx, cfg)
			if err != nil {
				return err
			}
			defer closeStore(store)

			runs, err := store.ListRuns(ctx)
			if err != nil {
				return fmt.Errorf("failed to list runs: %w", err)
			}

			if len(runs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), cli.InfoStyle.Render("No runs found. Use 'robotax classify --save' to store one."))
				return nil
			}

			return cli.RenderRuns(cmd.OutOrStdout(), runs)
		},
	}
}

func showRunCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show the records of a stored run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			store, err := initStorage(ctx, cfg)
			if err != nil {
				return err
			}
			defer closeStore(store)

			run, err := store.GetRun(ctx, args[0])
			if err != nil {
				return common.NewUserError(fmt.Sprintf("run %s not found", args[0]), err)
			}

			if format != "" {
				outFormat, err := export.ParseFormat(format)
				if err != nil {
					return common.NewUserError("invalid --format", err)
				}
				return export.Write(cmd.OutOrStdout(), run.Records, outFormat)
			}

			meta := fmt.Sprintf("Source: %s\nCreated: %s\nRecords: %d\nSkipped: %d",
				run.Source, run.CreatedAt.Local().Format(time.DateTime), len(run.Records), run.Skipped)
			fmt.Fprintln(cmd.OutOrStdout(), cli.RenderBox("Run "+run.ID, meta))

			return cli.RenderRecords(cmd.OutOrStdout(), run.Records)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "export records instead of a table (json, csv)")

	return cmd
}

func deleteRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a stored run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			store, err := initStorage(ctx, cfg)
			if err != nil {
				return err
			}
			defer closeStore(store)

			if err := store.DeleteRun(ctx, args[0]); err != nil {
				return common.NewUserError(fmt.Sprintf("could not delete run %s", args[0]), err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess("Deleted run "+args[0]))
			return nil
		},
	}
}
