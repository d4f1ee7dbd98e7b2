// Package explore queries a classified batch.
package explore

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Veraticus/robot-taxonomy/internal/common"
	"github.com/Veraticus/robot-taxonomy/internal/model"
)

// Score weights used by Similar.
const (
	LevelMatchScore   = 1.0
	SpeciesMatchScore = 0.5
)

// Query selects records. Empty fields match everything.
type Query struct {
	// Keyword is matched case-insensitively against name and description.
	Keyword string
	Domain  string
	Kingdom string
}

// Match is a record scored against a similarity target.
type Match struct {
	Record model.ClassifiedRecord
	Score  float64
}

// Search returns the records that satisfy every criterion of q, in input
// order.
func Search(records []model.ClassifiedRecord, q Query) []model.ClassifiedRecord {
	keyword := strings.ToLower(q.Keyword)

	var out []model.ClassifiedRecord
	for _, rec := range records {
		if q.Domain != "" && rec.Domain != q.Domain {
			continue
		}
		if q.Kingdom != "" && rec.Kingdom != q.Kingdom {
			continue
		}
		if keyword != "" &&
			!strings.Contains(strings.ToLower(rec.Name), keyword) &&
			!strings.Contains(strings.ToLower(rec.Description), keyword) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// Similar ranks every other record by how many taxonomy labels it shares
// with the record called name. Ties keep input order. A topN of zero or
// less returns every candidate.
func Similar(records []model.ClassifiedRecord, name string, topN int) ([]Match, error) {
	targetIdx := -1
	for i, rec := range records {
		if strings.EqualFold(rec.Name, name) {
			targetIdx = i
			break
		}
	}
	if targetIdx < 0 {
		return nil, fmt.Errorf("robot %q: %w", name, common.ErrNotFound)
	}
	target := records[targetIdx]

	matches := make([]Match, 0, len(records)-1)
	for i, rec := range records {
		if i == targetIdx {
			continue
		}
		matches = append(matches, Match{Record: rec, Score: score(target, rec)})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if topN > 0 && len(matches) > topN {
		matches = matches[:topN]
	}
	return matches, nil
}

func score(a, b model.ClassifiedRecord) float64 {
	var s float64
	for _, level := range model.Levels() {
		if level == model.LevelSpecies {
			continue
		}
		if a.Label(level) == b.Label(level) {
			s += LevelMatchScore
		}
	}

	species := make(map[string]bool, len(a.Species))
	for _, sp := range a.Species {
		species[sp] = true
	}
	for _, sp := range b.Species {
		if species[sp] {
			s += SpeciesMatchScore
			// Count each shared label once.
			delete(species, sp)
		}
	}
	return s
}
