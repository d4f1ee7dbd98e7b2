// Package ingest reads raw robot entries produced by upstream collectors.
package ingest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Veraticus/robot-taxonomy/internal/model"
	"gopkg.in/yaml.v3"
)

// Format identifies the encoding of a record collection.
type Format string

// Supported input formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrNotArray is returned when the top-level document is not a list.
var ErrNotArray = errors.New("record collection must be an array")

// FormatForPath infers the input format from a file extension. Anything that
// is not .yaml or .yml is read as JSON.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// LoadRecords reads a record collection from a file.
func LoadRecords(path string) ([]model.InputRecord, error) {
	f, err := os.Open(path) //nolint:gosec // path is supplied by the user
	if err != nil {
		return nil, fmt.Errorf("failed to open records file: %w", err)
	}
	defer func() { _ = f.Close() }()

	records, err := ReadRecords(f, FormatForPath(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return records, nil
}

// ReadRecords decodes a collection of raw entries. Elements that are not
// objects are kept as nil records so classification can report them by index.
func ReadRecords(r io.Reader, format Format) ([]model.InputRecord, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read records: %w", err)
	}

	switch format {
	case FormatJSON:
		return decodeJSON(data)
	case FormatYAML:
		return decodeYAML(data)
	default:
		return nil, fmt.Errorf("unsupported input format %q", format)
	}
}

// WriteRecords writes raw entries as an indented JSON array.
func WriteRecords(w io.Writer, records []model.InputRecord) error {
	if records == nil {
		records = []model.InputRecord{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("failed to encode records: %w", err)
	}
	return nil
}

func decodeJSON(data []byte) ([]model.InputRecord, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, ErrNotArray
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	records := make([]model.InputRecord, len(raw))
	for i, elem := range raw {
		elem = bytes.TrimSpace(elem)
		if len(elem) == 0 || elem[0] != '{' {
			continue
		}
		var rec model.InputRecord
		if err := json.Unmarshal(elem, &rec); err != nil {
			return nil, fmt.Errorf("invalid JSON at index %d: %w", i, err)
		}
		records[i] = rec
	}
	return records, nil
}

func decodeYAML(data []byte) ([]model.InputRecord, error) {
	var doc []any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		var typeErr *yaml.TypeError
		if errors.As(err, &typeErr) {
			return nil, ErrNotArray
		}
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	if doc == nil && len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrNotArray
	}

	records := make([]model.InputRecord, len(doc))
	for i, elem := range doc {
		if m, ok := elem.(map[string]any); ok {
			records[i] = model.InputRecord(m)
		}
	}
	return records, nil
}
