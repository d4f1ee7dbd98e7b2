// Package storage provides the data persistence layer for classification runs.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/robot-taxonomy/internal/model"
)

// Validation errors.
var (
	ErrNilContext   = errors.New("context cannot be nil")
	ErrEmptyString  = errors.New("string parameter cannot be empty")
	ErrNilParameter = errors.New("parameter cannot be nil")
	ErrInvalidRun   = errors.New("invalid run")
	ErrInvalidLevel = errors.New("invalid taxonomy level")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateRun checks a run before it is written.
func validateRun(run *model.Run) error {
	if run == nil {
		return fmt.Errorf("%w: run", ErrNilParameter)
	}
	if strings.TrimSpace(run.Source) == "" {
		return fmt.Errorf("%w: missing source", ErrInvalidRun)
	}
	if run.Skipped < 0 {
		return fmt.Errorf("%w: negative skipped count", ErrInvalidRun)
	}

	for i, rec := range run.Records {
		if err := validateRecord(rec); err != nil {
			return fmt.Errorf("record at index %d: %w", i, err)
		}
	}
	return nil
}

// validateRecord requires a label at every level.
func validateRecord(rec model.ClassifiedRecord) error {
	for _, level := range model.Levels() {
		if len(rec.Labels(level)) == 0 {
			return fmt.Errorf("%w: missing %s label", ErrInvalidRun, level.Key())
		}
	}
	return nil
}

// validateLevel ensures level is one of the taxonomy levels.
func validateLevel(level model.Level) error {
	for _, l := range model.Levels() {
		if l == level {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrInvalidLevel, level)
}
