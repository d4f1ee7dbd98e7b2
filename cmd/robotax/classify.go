package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/Veraticus/robot-taxonomy/internal/classifier"
	"github.com/Veraticus/robot-taxonomy/internal/cli"
	"github.com/Veraticus/robot-taxonomy/internal/common"
	"github.com/Veraticus/robot-taxonomy/internal/config"
	"github.com/Veraticus/robot-taxonomy/internal/export"
	"github.com/Veraticus/robot-taxonomy/internal/ingest"
	"github.com/Veraticus/robot-taxonomy/internal/model"
	"github.com/spf13/cobra"
)

func classifyCmd() *cobra.Command {
	var (
		output       string
		format       string
		taxonomyPath string
		onError      string
		workers      int
		filter       bool
		save         bool
		noProgress   bool
	)

	cmd := &cobra.Command{
		Use:   "classify <input>",
		Short: "Classify a batch of robot records",
		Long: `Classify every record of a JSON array (or YAML sequence for .yaml/.yml files)
at all eight taxonomy levels. Use "-" to read JSON from standard input.

Classified records are written to --output (default stdout) and a
distribution summary is printed to stderr.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			stderr := cmd.ErrOrStderr()

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("workers") {
				cfg.Classification.Workers = workers
			}
			if cmd.Flags().Changed("on-error") {
				cfg.Classification.OnError = onError
			}
			if cmd.Flags().Changed("taxonomy") {
				cfg.Taxonomy.Path = config.ExpandPath(taxonomyPath)
			}

			outFormat, err := export.ParseFormat(format)
			if err != nil {
				return common.NewUserError("invalid --format", err)
			}

			records, err := readInput(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}

			if filter {
				var dropped int
				records, dropped = ingest.Filter(records, ingest.FilterOptions{MinDescription: cfg.Filter.MinDescription})
				slog.Info("Filtered input records", "kept", len(records), "dropped", dropped)
			}

			c := classifier.New(loadRegistry(cfg.Taxonomy.Path))

			opts := classifier.BatchOptions{
				Workers: cfg.Classification.Workers,
				OnError: classifier.ErrorPolicy(cfg.Classification.OnError),
			}
			var progress *cli.Progress
			if !noProgress && len(records) > 0 {
				progress = cli.NewProgress(stderr, len(records))
				opts.Progress = progress.Increment
			}

			batch, err := c.ClassifyBatch(ctx, records, opts)
			if progress != nil {
				progress.Finish()
			}
			if err != nil {
				return fmt.Errorf("classification failed: %w", err)
			}

			if err := writeOutput(output, cmd.OutOrStdout(), func(w io.Writer) error {
				return export.Write(w, batch.Records, outFormat)
			}); err != nil {
				return err
			}

			if err := cli.RenderSummary(stderr, classifier.Summarize(batch)); err != nil {
				return fmt.Errorf("failed to print summary: %w", err)
			}

			if !save {
				return nil
			}
			if len(batch.Records) == 0 {
				return common.NewUserError("nothing to save", common.ErrNoRecords)
			}

			store, err := initStorage(ctx, cfg)
			if err != nil {
				return err
			}
			defer closeStore(store)

			run := &model.Run{
				Source:  args[0],
				Records: batch.Records,
				Skipped: len(batch.Skipped),
			}
			if err := store.SaveRun(ctx, run); err != nil {
				return fmt.Errorf("failed to save run: %w", err)
			}

			fmt.Fprintln(stderr, cli.FormatSuccess(fmt.Sprintf("Saved run %s (%d records)", run.ID, len(run.Records))))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVarP(&format, "format", "f", string(export.FormatJSON), "output format (json, csv)")
	cmd.Flags().StringVar(&taxonomyPath, "taxonomy", "", "taxonomy definition document (default: built-in)")
	cmd.Flags().StringVar(&onError, "on-error", string(classifier.PolicySkip), "malformed record policy (skip, abort)")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "parallel workers (0 = number of CPUs)")
	cmd.Flags().BoolVar(&filter, "filter", false, "drop index pages and short descriptions before classifying")
	cmd.Flags().BoolVar(&save, "save", false, "store the run in the database")
	cmd.Flags().BoolVar(&noProgress, "no-progress", false, "hide the progress bar")

	return cmd
}
