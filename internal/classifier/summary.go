package classifier

import (
	"encoding/json"
	"sort"

	"github.com/Veraticus/robot-taxonomy/internal/model"
)

// Summary holds per-level label frequencies for a completed batch.
type Summary struct {
	distributions map[model.Level]map[string]int
	Total         int
	Skipped       int
}

// LabelCount is one row of a frequency table.
type LabelCount struct {
	Label string
	Count int
}

// Summarize counts the labels of a batch, including its skipped records.
func Summarize(b *Batch) Summary {
	s := SummarizeRecords(b.Records)
	s.Skipped = len(b.Skipped)
	return s
}

// SummarizeRecords counts labels per level. Species is counted per
// occurrence, so a record with two species adds to both.
func SummarizeRecords(records []model.ClassifiedRecord) Summary {
	s := Summary{
		Total:         len(records),
		distributions: make(map[model.Level]map[string]int, len(model.Levels())),
	}
	for _, level := range model.Levels() {
		s.distributions[level] = make(map[string]int)
	}

	for _, rec := range records {
		for _, level := range model.Levels() {
			for _, label := range rec.Labels(level) {
				s.distributions[level][label]++
			}
		}
	}

	return s
}

// NewSummary builds a summary from precomputed counts, such as those read
// back from storage. Levels missing from dist have no labels.
func NewSummary(total, skipped int, dist map[model.Level]map[string]int) Summary {
	s := Summary{
		Total:         total,
		Skipped:       skipped,
		distributions: make(map[model.Level]map[string]int, len(model.Levels())),
	}
	for _, level := range model.Levels() {
		counts := make(map[string]int, len(dist[level]))
		for k, v := range dist[level] {
			counts[k] = v
		}
		s.distributions[level] = counts
	}
	return s
}

// Distribution returns a copy of the label counts at level.
func (s Summary) Distribution(level model.Level) map[string]int {
	out := make(map[string]int, len(s.distributions[level]))
	for k, v := range s.distributions[level] {
		out[k] = v
	}
	return out
}

// MostCommon returns the counts at level ordered by count, then label.
func (s Summary) MostCommon(level model.Level) []LabelCount {
	counts := make([]LabelCount, 0, len(s.distributions[level]))
	for label, n := range s.distributions[level] {
		counts = append(counts, LabelCount{Label: label, Count: n})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Label < counts[j].Label
	})
	return counts
}

// MarshalJSON renders the summary as {"<level>_distribution": {...}} for
// every level plus the record totals.
func (s Summary) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(model.Levels())+2)
	out["total_robots"] = s.Total
	out["skipped_records"] = s.Skipped
	for _, level := range model.Levels() {
		out[level.Key()+"_distribution"] = s.Distribution(level)
	}
	return json.Marshal(out)
}
