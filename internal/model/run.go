package model

import "time"

// Run is a persisted classification batch.
type Run struct {
	CreatedAt time.Time
	ID        string
	Source    string
	Records   []ClassifiedRecord
	Skipped   int
}

// RunInfo describes a stored run without its records.
type RunInfo struct {
	CreatedAt   time.Time
	ID          string
	Source      string
	RecordCount int
	Skipped     int
}
