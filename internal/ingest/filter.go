package ingest

import (
	"strings"

	"github.com/Veraticus/robot-taxonomy/internal/model"
)

// DefaultMinDescription is the shortest description a raw entry may carry
// and still be kept by Filter.
const DefaultMinDescription = 50

// excludedNameMarkers identify wiki index and navigation pages.
var excludedNameMarkers = []string{"category:", "list_of", "portal:"}

// FilterOptions configures Filter.
type FilterOptions struct {
	MinDescription int
}

// DefaultFilterOptions returns the standard filter settings.
func DefaultFilterOptions() FilterOptions {
	return FilterOptions{MinDescription: DefaultMinDescription}
}

// Filter drops entries that do not describe an individual robot: index
// pages and entries whose description is too short to classify. Records
// that are not objects are dropped as well. It returns the kept records in
// input order and the number dropped.
func Filter(records []model.InputRecord, opts FilterOptions) ([]model.InputRecord, int) {
	kept := make([]model.InputRecord, 0, len(records))
	for _, rec := range records {
		if rec == nil {
			continue
		}
		name, _ := rec["name"].(string)
		if isIndexPage(name) {
			continue
		}
		description, _ := rec["description"].(string)
		if len([]rune(description)) < opts.MinDescription {
			continue
		}
		kept = append(kept, rec)
	}
	return kept, len(records) - len(kept)
}

func isIndexPage(name string) bool {
	lower := strings.ToLower(name)
	for _, marker := range excludedNameMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
