package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Veraticus/robot-taxonomy/internal/common"
	"github.com/Veraticus/robot-taxonomy/internal/config"
	"github.com/Veraticus/robot-taxonomy/internal/ingest"
	"github.com/Veraticus/robot-taxonomy/internal/model"
	"github.com/Veraticus/robot-taxonomy/internal/service"
	"github.com/Veraticus/robot-taxonomy/internal/storage"
	"github.com/Veraticus/robot-taxonomy/internal/taxonomy"
	"github.com/spf13/viper"
)

// stdioPath selects standard input or output instead of a file.
const stdioPath = "-"

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return nil, common.NewUserError("configuration is invalid", err)
	}
	return cfg, nil
}

func initStorage(ctx context.Context, cfg *config.Config) (service.RunStore, error) {
	store, err := storage.NewSQLiteStorage(cfg.Database.Path)
	if err != nil {
		return nil, err
	}

	// Run migrations
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

func closeStore(store service.RunStore) {
	if err := store.Close(); err != nil {
		common.LogError(err, "Failed to close database", common.Fields{})
	}
}

// loadRegistry builds the taxonomy, reporting each level that fell back to
// the built-in definitions.
func loadRegistry(path string) *taxonomy.Registry {
	reg := taxonomy.Load(path)
	if n := len(reg.Fallbacks()); n > 0 {
		slog.Debug("Taxonomy loaded with fallbacks", "source", reg.Source(), "fallbacks", n)
	}
	return reg
}

// readInput loads raw records from path, or JSON from in when path is "-".
func readInput(path string, in io.Reader) ([]model.InputRecord, error) {
	var (
		records []model.InputRecord
		err     error
	)
	if path == stdioPath {
		records, err = ingest.ReadRecords(in, ingest.FormatJSON)
	} else {
		records, err = ingest.LoadRecords(path)
	}
	if err != nil {
		return nil, common.NewUserError("could not read input records", err)
	}
	return records, nil
}

// writeOutput calls write with a file at path, or with out when path is
// empty or "-".
func writeOutput(path string, out io.Writer, write func(io.Writer) error) error {
	if path == "" || path == stdioPath {
		return write(out)
	}

	f, err := os.Create(path) //nolint:gosec // path is supplied by the user
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}
	return nil
}

// parseLevels returns every level, or the single level named in args.
func parseLevels(args []string) ([]model.Level, error) {
	if len(args) == 0 {
		return model.Levels(), nil
	}
	level, ok := model.ParseLevel(args[0])
	if !ok {
		return nil, common.NewUserError(fmt.Sprintf("unknown taxonomy level %q", args[0]), nil)
	}
	return []model.Level{level}, nil
}
