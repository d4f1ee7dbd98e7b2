package main

import (
	"context"
	"fmt"

	"github.com/Veraticus/robot-taxonomy/internal/classifier"
	"github.com/Veraticus/robot-taxonomy/internal/cli"
	"github.com/Veraticus/robot-taxonomy/internal/common"
	"github.com/Veraticus/robot-taxonomy/internal/export"
	"github.com/Veraticus/robot-taxonomy/internal/model"
	"github.com/Veraticus/robot-taxonomy/internal/service"
	"github.com/spf13/cobra"
)

func summaryCmd() *cobra.Command {
	var (
		runID  string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "summary [classified.json]",
		Short: "Show label distributions of a classified batch",
		Long: `Count the labels at every taxonomy level, either for a classified JSON file
or for a stored run (--run). Species are counted per occurrence.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if (len(args) == 1) == (runID != "") {
				return common.NewUserError("specify either a classified file or --run", nil)
			}

			var summary classifier.Summary
			if runID != "" {
				cfg, err := loadConfig()
				if err != nil {
					return err
				}
				store, err := initStorage(ctx, cfg)
				if err != nil {
					return err
				}
				defer closeStore(store)

				summary, err = storedSummary(ctx, store, runID)
				if err != nil {
					return err
				}
			} else {
				records, err := export.LoadClassified(args[0])
				if err != nil {
					return common.NewUserError("could not read classified records", err)
				}
				summary = classifier.SummarizeRecords(records)
			}

			if asJSON {
				return export.WriteSummary(cmd.OutOrStdout(), summary)
			}
			return cli.RenderSummary(cmd.OutOrStdout(), summary)
		},
	}

	cmd.Flags().StringVar(&runID, "run", "", "summarize a stored run")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the summary as JSON")

	return cmd
}

// storedSummary builds a summary from per-level counts kept in the store.
func storedSummary(ctx context.Context, store service.RunStore, runID string) (classifier.Summary, error) {
	info, err := store.GetRunInfo(ctx, runID)
	if err != nil {
		return classifier.Summary{}, fmt.Errorf("failed to load run: %w", err)
	}

	dist := make(map[model.Level]map[string]int, len(model.Levels()))
	for _, level := range model.Levels() {
		counts, err := store.Distribution(ctx, runID, level)
		if err != nil {
			return classifier.Summary{}, err
		}
		dist[level] = counts
	}

	return classifier.NewSummary(info.RecordCount, info.Skipped, dist), nil
}
