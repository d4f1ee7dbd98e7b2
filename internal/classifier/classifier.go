// Package classifier maps raw robot records onto the taxonomy by keyword
// matching against their text.
package classifier

import (
	"sort"
	"strings"

	"github.com/Veraticus/robot-taxonomy/internal/model"
)

// Taxonomy supplies the per-level category tables in match order.
type Taxonomy interface {
	Categories(level model.Level) []model.Category
}

// Field names with fixed meaning in an InputRecord.
const (
	FieldName        = "name"
	FieldDescription = "description"
	FieldURL         = "url"
)

// UnknownName is reported for records that carry no name field.
const UnknownName = "Unknown"

type compiledLevel struct {
	rule       levelRule
	categories []model.Category
}

// Classifier is a pure function of (record, taxonomy). It holds no mutable
// state and is safe for concurrent use.
type Classifier struct {
	levels  []compiledLevel
	species []model.Category
}

// New captures the category tables of tax once; later classification never
// consults tax again.
func New(tax Taxonomy) *Classifier {
	c := &Classifier{
		levels:  make([]compiledLevel, 0, len(singleLabelRules)),
		species: tax.Categories(model.LevelSpecies),
	}
	for _, rule := range singleLabelRules {
		c.levels = append(c.levels, compiledLevel{
			rule:       rule,
			categories: tax.Categories(rule.level),
		})
	}
	return c
}

// Classify labels a single record at every taxonomy level.
func (c *Classifier) Classify(rec model.InputRecord) (model.ClassifiedRecord, error) {
	return c.classify(rec, -1)
}

func (c *Classifier) classify(rec model.InputRecord, index int) (model.ClassifiedRecord, error) {
	if rec == nil {
		return model.ClassifiedRecord{}, &MalformedRecordError{Index: index, Reason: "record is not an object"}
	}

	name, hasName, err := stringField(rec, FieldName, index)
	if err != nil {
		return model.ClassifiedRecord{}, err
	}
	description, _, err := stringField(rec, FieldDescription, index)
	if err != nil {
		return model.ClassifiedRecord{}, err
	}
	url, _ := rec[FieldURL].(string)

	text := normalize(rec, name, description)

	out := model.ClassifiedRecord{
		Name:        name,
		URL:         url,
		Description: description,
		Domain:      classifyDomain(text),
	}
	if !hasName {
		out.Name = UnknownName
	}

	for _, lvl := range c.levels {
		label := firstMatch(text, lvl.categories, lvl.rule)
		switch lvl.rule.level {
		case model.LevelKingdom:
			out.Kingdom = label
		case model.LevelPhylum:
			out.Phylum = label
		case model.LevelClass:
			out.Class = label
		case model.LevelOrder:
			out.Order = label
		case model.LevelFamily:
			out.Family = label
		case model.LevelGenus:
			out.Genus = label
		}
	}

	out.Species = c.classifySpecies(text, out.Kingdom)

	return out, nil
}

// stringField reads an optional string field. A nil value counts as absent.
func stringField(rec model.InputRecord, key string, index int) (string, bool, error) {
	v, ok := rec[key]
	if !ok || v == nil {
		return "", false, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", false, &MalformedRecordError{Index: index, Reason: key + " is not a string"}
	}
	return s, true, nil
}

// normalize joins name, description and every other string field except the
// URL with single spaces and lower-cases the result. Extra fields are taken
// in key order so the text is deterministic.
func normalize(rec model.InputRecord, name, description string) string {
	parts := make([]string, 0, len(rec))
	if name != "" {
		parts = append(parts, name)
	}
	if description != "" {
		parts = append(parts, description)
	}

	keys := make([]string, 0, len(rec))
	for k := range rec {
		switch k {
		case FieldName, FieldDescription, FieldURL:
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if s, ok := rec[k].(string); ok {
			parts = append(parts, s)
		}
	}

	return strings.ToLower(strings.Join(parts, " "))
}

// containsAny is a raw substring test: "car" matches "scare".
func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func classifyDomain(text string) string {
	for _, chk := range domainChecks {
		if containsAny(text, chk.keywords) {
			return chk.label
		}
	}
	return domainFallback
}

// firstMatch returns the earliest category with a keyword hit, then the
// first secondary check that hits, then the level default.
func firstMatch(text string, categories []model.Category, rule levelRule) string {
	for _, cat := range categories {
		if containsAny(text, cat.Keywords) {
			return cat.Name
		}
	}
	for _, chk := range rule.secondary {
		if containsAny(text, chk.keywords) {
			return chk.label
		}
	}
	return rule.fallback
}

func (c *Classifier) classifySpecies(text, kingdom string) []string {
	var species []string
	for _, cat := range c.species {
		if containsAny(text, cat.Keywords) {
			species = append(species, cat.Name)
		}
	}
	if len(species) > 0 {
		return species
	}

	if s, ok := speciesByKingdom[kingdom]; ok {
		return []string{s}
	}
	return []string{speciesFallback}
}
