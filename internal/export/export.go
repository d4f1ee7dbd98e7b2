// Package export writes classified batches and their summaries for
// downstream consumers.
package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Veraticus/robot-taxonomy/internal/classifier"
	"github.com/Veraticus/robot-taxonomy/internal/model"
)

// Format identifies an output encoding.
type Format string

// Supported output formats.
const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// SpeciesSeparator joins species labels in a single CSV cell.
const SpeciesSeparator = ";"

// ErrUnsupportedFormat is returned for an unknown output format.
var ErrUnsupportedFormat = errors.New("unsupported output format")

var csvHeader = []string{
	"name", "url", "domain", "kingdom", "phylum", "class",
	"order", "family", "genus", "species", "description",
}

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatJSON, FormatCSV:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// Write encodes records in the given format.
func Write(w io.Writer, records []model.ClassifiedRecord, format Format) error {
	switch format {
	case FormatJSON:
		return WriteJSON(w, records)
	case FormatCSV:
		return WriteCSV(w, records)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// WriteJSON writes records as an indented JSON array. An empty batch is
// written as [] and a record without species as an empty list.
func WriteJSON(w io.Writer, records []model.ClassifiedRecord) error {
	out := make([]model.ClassifiedRecord, len(records))
	for i, rec := range records {
		if rec.Species == nil {
			rec.Species = []string{}
		}
		out[i] = rec
	}
	return encodeIndented(w, out)
}

// WriteCSV writes one row per record under a fixed header.
func WriteCSV(w io.Writer, records []model.ClassifiedRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for i, rec := range records {
		row := []string{
			rec.Name, rec.URL, rec.Domain, rec.Kingdom, rec.Phylum, rec.Class,
			rec.Order, rec.Family, rec.Genus,
			strings.Join(rec.Species, SpeciesSeparator),
			rec.Description,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row %d: %w", i, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}

// WriteSummary writes the per-level distributions of a batch as JSON.
func WriteSummary(w io.Writer, summary classifier.Summary) error {
	return encodeIndented(w, summary)
}

// ReadClassified decodes a JSON array previously written by WriteJSON.
func ReadClassified(r io.Reader) ([]model.ClassifiedRecord, error) {
	var records []model.ClassifiedRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode classified records: %w", err)
	}
	return records, nil
}

// LoadClassified reads a classified JSON file.
func LoadClassified(path string) ([]model.ClassifiedRecord, error) {
	f, err := os.Open(path) //nolint:gosec // path is supplied by the user
	if err != nil {
		return nil, fmt.Errorf("failed to open classified file: %w", err)
	}
	defer func() { _ = f.Close() }()

	records, err := ReadClassified(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

func encodeIndented(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
