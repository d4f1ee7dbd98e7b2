package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Veraticus/robot-taxonomy/internal/common"
	"github.com/Veraticus/robot-taxonomy/internal/model"
	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"
)

// labelColumns maps single-label levels to their classified_records column.
var labelColumns = map[model.Level]string{
	model.LevelDomain:  "domain",
	model.LevelKingdom: "kingdom",
	model.LevelPhylum:  "phylum",
	model.LevelClass:   "class",
	model.LevelOrder:   `"order"`,
	model.LevelFamily:  "family",
	model.LevelGenus:   "genus",
}

// SaveRun stores a run and all of its records in one transaction. An empty
// ID is replaced with a new UUID and a zero CreatedAt with the current time;
// both are written back to run.
func (s *SQLiteStorage) SaveRun(ctx context.Context, run *model.Run) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateRun(run); err != nil {
		return err
	}

	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}
	run.CreatedAt = run.CreatedAt.UTC()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO runs (id, source, created_at, skipped) VALUES (?, ?, ?, ?)`,
			run.ID, run.Source, run.CreatedAt, run.Skipped,
		); err != nil {
			var sqliteErr sqlite3.Error
			if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey {
				return fmt.Errorf("run %s: %w", run.ID, common.ErrDuplicateEntry)
			}
			return fmt.Errorf("failed to insert run: %w", err)
		}

		return insertRecords(ctx, tx, run.ID, run.Records)
	})
}

func insertRecords(ctx context.Context, tx *sql.Tx, runID string, records []model.ClassifiedRecord) error {
	recStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO classified_records (
			run_id, position, name, url, description,
			domain, kingdom, phylum, class, "order", family, genus
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = recStmt.Close() }()

	speciesStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO record_species (run_id, position, rank, species) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = speciesStmt.Close() }()

	for i, rec := range records {
		if _, err := recStmt.ExecContext(ctx,
			runID, i, rec.Name, rec.URL, rec.Description,
			rec.Domain, rec.Kingdom, rec.Phylum, rec.Class, rec.Order, rec.Family, rec.Genus,
		); err != nil {
			return fmt.Errorf("failed to insert record %d: %w", i, err)
		}

		for rank, species := range rec.Species {
			if _, err := speciesStmt.ExecContext(ctx, runID, i, rank, species); err != nil {
				return fmt.Errorf("failed to insert species for record %d: %w", i, err)
			}
		}
	}
	return nil
}

// GetRunInfo returns a run's metadata without loading its records.
func (s *SQLiteStorage) GetRunInfo(ctx context.Context, id string) (*model.RunInfo, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, runInfoQuery+` WHERE r.id = ?`, id)
	info, err := scanRunInfo(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("run %s: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return info, nil
}

// GetRun loads a run with its records in batch order.
func (s *SQLiteStorage) GetRun(ctx context.Context, id string) (*model.Run, error) {
	info, err := s.GetRunInfo(ctx, id)
	if err != nil {
		return nil, err
	}

	records, err := s.getRecords(ctx, id, info.RecordCount)
	if err != nil {
		return nil, err
	}

	return &model.Run{
		ID:        info.ID,
		Source:    info.Source,
		CreatedAt: info.CreatedAt,
		Skipped:   info.Skipped,
		Records:   records,
	}, nil
}

func (s *SQLiteStorage) getRecords(ctx context.Context, runID string, count int) ([]model.ClassifiedRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, url, description, domain, kingdom, phylum, class, "order", family, genus
		FROM classified_records
		WHERE run_id = ?
		ORDER BY position
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer func() { _ = rows.Close() }()

	records := make([]model.ClassifiedRecord, 0, count)
	for rows.Next() {
		var rec model.ClassifiedRecord
		if err := rows.Scan(
			&rec.Name, &rec.URL, &rec.Description,
			&rec.Domain, &rec.Kingdom, &rec.Phylum, &rec.Class, &rec.Order, &rec.Family, &rec.Genus,
		); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate records: %w", err)
	}

	speciesRows, err := s.db.QueryContext(ctx, `
		SELECT position, species
		FROM record_species
		WHERE run_id = ?
		ORDER BY position, rank
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query species: %w", err)
	}
	defer func() { _ = speciesRows.Close() }()

	for speciesRows.Next() {
		var (
			position int
			species  string
		)
		if err := speciesRows.Scan(&position, &species); err != nil {
			return nil, fmt.Errorf("failed to scan species: %w", err)
		}
		if position < 0 || position >= len(records) {
			return nil, fmt.Errorf("species for unknown record position %d", position)
		}
		records[position].Species = append(records[position].Species, species)
	}
	if err := speciesRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate species: %w", err)
	}

	return records, nil
}

const runInfoQuery = `
	SELECT r.id, r.source, r.created_at, r.skipped,
		(SELECT COUNT(*) FROM classified_records c WHERE c.run_id = r.id)
	FROM runs r`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRunInfo(row rowScanner) (*model.RunInfo, error) {
	var info model.RunInfo
	if err := row.Scan(&info.ID, &info.Source, &info.CreatedAt, &info.Skipped, &info.RecordCount); err != nil {
		return nil, err
	}
	return &info, nil
}

// ListRuns returns every stored run, newest first.
func (s *SQLiteStorage) ListRuns(ctx context.Context) ([]model.RunInfo, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, runInfoQuery+` ORDER BY r.created_at DESC, r.rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var runs []model.RunInfo
	for rows.Next() {
		info, err := scanRunInfo(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, *info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate runs: %w", err)
	}
	return runs, nil
}

// DeleteRun removes a run and its records.
func (s *SQLiteStorage) DeleteRun(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		for _, query := range []string{
			`DELETE FROM record_species WHERE run_id = ?`,
			`DELETE FROM classified_records WHERE run_id = ?`,
		} {
			if _, err := tx.ExecContext(ctx, query, id); err != nil {
				return fmt.Errorf("failed to delete run records: %w", err)
			}
		}

		result, err := tx.ExecContext(ctx, `DELETE FROM runs WHERE id = ?`, id)
		if err != nil {
			return fmt.Errorf("failed to delete run: %w", err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to check deleted rows: %w", err)
		}
		if affected == 0 {
			return fmt.Errorf("run %s: %w", id, common.ErrNotFound)
		}
		return nil
	})
}

// Distribution counts the labels of a stored run at one level. Species is
// counted per occurrence.
func (s *SQLiteStorage) Distribution(ctx context.Context, runID string, level model.Level) (map[string]int, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateLevel(level); err != nil {
		return nil, err
	}
	if _, err := s.GetRunInfo(ctx, runID); err != nil {
		return nil, err
	}

	var query string
	if level == model.LevelSpecies {
		query = `SELECT species, COUNT(*) FROM record_species WHERE run_id = ? GROUP BY species`
	} else {
		col := labelColumns[level]
		query = fmt.Sprintf(`SELECT %s, COUNT(*) FROM classified_records WHERE run_id = ? GROUP BY %s`, col, col)
	}

	rows, err := s.db.QueryContext(ctx, query, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s distribution: %w", level.Key(), err)
	}
	defer func() { _ = rows.Close() }()

	dist := make(map[string]int)
	for rows.Next() {
		var (
			label string
			count int
		)
		if err := rows.Scan(&label, &count); err != nil {
			return nil, fmt.Errorf("failed to scan distribution: %w", err)
		}
		dist[label] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate distribution: %w", err)
	}
	return dist, nil
}
