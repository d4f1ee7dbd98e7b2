package classifier

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"

	"github.com/Veraticus/robot-taxonomy/internal/model"
)

// ErrorPolicy decides what a batch does with a malformed record.
type ErrorPolicy string

const (
	// PolicySkip drops malformed records and reports them in Batch.Skipped.
	PolicySkip ErrorPolicy = "skip"
	// PolicyAbort fails the batch on the first malformed record.
	PolicyAbort ErrorPolicy = "abort"
)

// BatchOptions configures batch classification.
type BatchOptions struct {
	// Progress, when set, is called once per finished record from worker
	// goroutines and must be safe for concurrent use.
	Progress func()
	OnError  ErrorPolicy
	// Workers bounds parallelism; zero or less means one per CPU.
	Workers int
}

// DefaultBatchOptions returns one worker per CPU and skip-and-continue.
func DefaultBatchOptions() BatchOptions {
	return BatchOptions{
		Workers: runtime.NumCPU(),
		OnError: PolicySkip,
	}
}

// SkippedRecord identifies an input record that was not classified.
type SkippedRecord struct {
	Err   error
	Index int
}

// Batch is the ordered output of a batch run.
type Batch struct {
	Records []model.ClassifiedRecord
	Skipped []SkippedRecord
	Total   int
}

type batchResult struct {
	err    error
	record model.ClassifiedRecord
}

// ClassifyBatch classifies records in parallel. Output order always matches
// input order; skipped records leave no gap.
func (c *Classifier) ClassifyBatch(ctx context.Context, records []model.InputRecord, opts BatchOptions) (*Batch, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(records) {
		workers = len(records)
	}
	policy := opts.OnError
	if policy == "" {
		policy = PolicySkip
	}
	if policy != PolicySkip && policy != PolicyAbort {
		return nil, fmt.Errorf("unknown error policy %q", policy)
	}

	results := make([]batchResult, len(records))

	workChan := make(chan int, len(records))
	for i := range records {
		workChan <- i
	}
	close(workChan)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range workChan {
				if ctx.Err() != nil {
					return
				}
				rec, err := c.classify(records[i], i)
				results[i] = batchResult{record: rec, err: err}
				if opts.Progress != nil {
					opts.Progress()
				}
			}
		}()
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("batch classification interrupted: %w", err)
	}

	batch := &Batch{
		Records: make([]model.ClassifiedRecord, 0, len(records)),
		Total:   len(records),
	}
	for i, res := range results {
		if res.err == nil {
			batch.Records = append(batch.Records, res.record)
			continue
		}
		if policy == PolicyAbort {
			return nil, res.err
		}
		slog.Warn("Skipping malformed record", "index", i, "error", res.err)
		batch.Skipped = append(batch.Skipped, SkippedRecord{Index: i, Err: res.err})
	}

	slog.Debug("Batch classified",
		"total", batch.Total,
		"classified", len(batch.Records),
		"skipped", len(batch.Skipped),
		"workers", workers)

	return batch, nil
}

// ClassifyAll classifies records in order and fails on the first malformed
// record.
func (c *Classifier) ClassifyAll(records []model.InputRecord) ([]model.ClassifiedRecord, error) {
	batch, err := c.ClassifyBatch(context.Background(), records, BatchOptions{OnError: PolicyAbort})
	if err != nil {
		return nil, err
	}
	return batch.Records, nil
}
