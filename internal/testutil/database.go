// Package testutil provides shared fixtures for tests across the robotax packages.
package testutil

import (
	"context"
	"testing"

	"github.com/Veraticus/robot-taxonomy/internal/model"
	"github.com/Veraticus/robot-taxonomy/internal/service"
	"github.com/Veraticus/robot-taxonomy/internal/storage"
)

// SetupTestStore creates a migrated in-memory run store that is closed when
// the test finishes.
func SetupTestStore(t *testing.T) service.RunStore {
	t.Helper()

	store, err := storage.NewSQLiteStorage(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := store.Migrate(context.Background()); err != nil {
		_ = store.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() {
		_ = store.Close()
	})

	return store
}

// SeedRun stores a run built from records and returns its ID.
func SeedRun(t *testing.T, store service.RunStore, source string, records []model.ClassifiedRecord) string {
	t.Helper()

	run := &model.Run{Source: source, Records: records}
	if err := store.SaveRun(context.Background(), run); err != nil {
		t.Fatalf("failed to seed run: %v", err)
	}
	return run.ID
}
