// Package service defines the interfaces for all application services.
package service

import (
	"context"

	"github.com/Veraticus/robot-taxonomy/internal/model"
)

// RunStore defines the contract for persisting classification runs.
type RunStore interface {
	SaveRun(ctx context.Context, run *model.Run) error
	GetRun(ctx context.Context, id string) (*model.Run, error)
	GetRunInfo(ctx context.Context, id string) (*model.RunInfo, error)
	ListRuns(ctx context.Context) ([]model.RunInfo, error)
	DeleteRun(ctx context.Context, id string) error

	// Distribution counts labels at one level; species per occurrence.
	Distribution(ctx context.Context, runID string, level model.Level) (map[string]int, error)

	Migrate(ctx context.Context) error
	Close() error
}
