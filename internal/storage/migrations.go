package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// ExpectedSchemaVersion is the latest schema version that the application expects.
// If the database cannot be migrated to this version, it's a fatal error.
const ExpectedSchemaVersion = 2

// Migration represents a database schema migration.
type Migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Initial schema",
		Up: func(tx *sql.Tx) error {
			return execAll(tx,
				`CREATE TABLE IF NOT EXISTS runs (
					id TEXT PRIMARY KEY,
					source TEXT NOT NULL,
					created_at DATETIME NOT NULL,
					skipped INTEGER NOT NULL DEFAULT 0
				)`,
				`CREATE INDEX idx_runs_created_at ON runs(created_at)`,

				`CREATE TABLE IF NOT EXISTS classified_records (
					run_id TEXT NOT NULL,
					position INTEGER NOT NULL,
					name TEXT NOT NULL,
					url TEXT NOT NULL DEFAULT '',
					description TEXT NOT NULL DEFAULT '',
					domain TEXT NOT NULL,
					kingdom TEXT NOT NULL,
					phylum TEXT NOT NULL,
					class TEXT NOT NULL,
					"order" TEXT NOT NULL,
					family TEXT NOT NULL,
					genus TEXT NOT NULL,
					PRIMARY KEY (run_id, position),
					FOREIGN KEY (run_id) REFERENCES runs(id) ON DELETE CASCADE
				)`,

				`CREATE TABLE IF NOT EXISTS record_species (
					run_id TEXT NOT NULL,
					position INTEGER NOT NULL,
					rank INTEGER NOT NULL,
					species TEXT NOT NULL,
					PRIMARY KEY (run_id, position, rank),
					FOREIGN KEY (run_id, position) REFERENCES classified_records(run_id, position) ON DELETE CASCADE
				)`,
			)
		},
	},
	{
		Version:     2,
		Description: "Add indexes for label distribution queries",
		Up: func(tx *sql.Tx) error {
			return execAll(tx,
				`CREATE INDEX idx_classified_records_kingdom ON classified_records(run_id, kingdom)`,
				`CREATE INDEX idx_record_species_species ON record_species(run_id, species)`,
			)
		},
	},
}

func execAll(tx *sql.Tx, queries ...string) error {
	for _, query := range queries {
		if _, err := tx.Exec(query); err != nil {
			return fmt.Errorf("failed to execute query: %w", err)
		}
	}
	return nil
}

// SchemaVersion reports the schema version recorded in the database.
func (s *SQLiteStorage) SchemaVersion(ctx context.Context) (int, error) {
	var version int
	if err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		return 0, fmt.Errorf("failed to get schema version: %w", err)
	}
	return version, nil
}

// Migrate applies all pending database migrations.
func (s *SQLiteStorage) Migrate(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	currentVersion, err := s.SchemaVersion(ctx)
	if err != nil {
		return err
	}

	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		tx, txErr := s.db.BeginTx(ctx, nil)
		if txErr != nil {
			return fmt.Errorf("failed to begin transaction: %w", txErr)
		}

		if upErr := migration.Up(tx); upErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", migration.Version, upErr)
		}

		if _, execErr := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", migration.Version)); execErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to update schema version: %w", execErr)
		}

		if commitErr := tx.Commit(); commitErr != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, commitErr)
		}

		slog.Info("Applied migration",
			"version", migration.Version,
			"description", migration.Description)
	}

	finalVersion, err := s.SchemaVersion(ctx)
	if err != nil {
		return fmt.Errorf("failed to verify final schema version: %w", err)
	}

	if finalVersion != ExpectedSchemaVersion {
		return fmt.Errorf("database schema version mismatch: expected %d, got %d", ExpectedSchemaVersion, finalVersion)
	}

	return nil
}
