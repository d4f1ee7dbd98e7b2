// Package taxonomy holds the fixed robot taxonomy: its levels, the categories
// at each level, their display descriptions and the keyword tables used to
// recognize them in free text.
package taxonomy

import (
	"log/slog"
	"os"

	"github.com/Veraticus/robot-taxonomy/internal/model"
)

// BuiltinSource names the registry built from the compiled-in tables.
const BuiltinSource = "builtin"

// Registry is the read-only taxonomy shared by all classification calls.
// It has no mutators; every accessor returns copies.
type Registry struct {
	categories   map[model.Level][]model.Category
	descriptions map[model.Level]map[string]string
	source       string
	fallbacks    []*ConfigurationError
}

// Default returns the registry built from the built-in tables.
func Default() *Registry {
	return build(BuiltinSource, nil, nil)
}

// Load builds a registry from a definition document at path. It never fails:
// an unreadable file yields the built-in registry, and each level missing
// from the document falls back to its built-in definitions. Every fallback
// is logged and kept in Fallbacks.
func Load(path string) *Registry {
	if path == "" {
		return Default()
	}

	content, err := os.ReadFile(path)
	if err != nil {
		cfgErr := &ConfigurationError{Source: path, Err: ErrSourceUnavailable}
		slog.Warn("Taxonomy definition not readable, using built-in taxonomy",
			"path", path,
			"error", err)
		return build(path, nil, []*ConfigurationError{cfgErr})
	}

	return Parse(path, content)
}

// Parse builds a registry from definition document content. source labels
// the document in diagnostics.
func Parse(source string, content []byte) *Registry {
	parsed := parseDefinitions(content)

	var fallbacks []*ConfigurationError
	for _, level := range model.Levels() {
		defs, ok := parsed[level]
		switch {
		case !ok:
			fallbacks = append(fallbacks, &ConfigurationError{Source: source, Level: level, Err: ErrSectionMissing})
		case len(defs) == 0:
			fallbacks = append(fallbacks, &ConfigurationError{Source: source, Level: level, Err: ErrSectionEmpty})
			delete(parsed, level)
		default:
			continue
		}
		slog.Warn("Taxonomy level falling back to built-in categories",
			"source", source,
			"level", level,
			"reason", fallbacks[len(fallbacks)-1].Err)
	}

	return build(source, parsed, fallbacks)
}

// build assembles a registry. Levels absent from defs use the built-in
// definitions. Matching order always follows the keyword table; categories
// that exist only in the definitions are listed after it with no keywords.
func build(source string, defs map[model.Level][]definition, fallbacks []*ConfigurationError) *Registry {
	r := &Registry{
		categories:   make(map[model.Level][]model.Category, len(defaultKeywords)),
		descriptions: make(map[model.Level]map[string]string, len(defaultKeywords)),
		source:       source,
		fallbacks:    fallbacks,
	}

	for _, level := range model.Levels() {
		levelDefs, ok := defs[level]
		if !ok {
			levelDefs = defaultDefinitions[level]
		}

		descs := make(map[string]string, len(levelDefs))
		for _, d := range levelDefs {
			descs[d.Name] = d.Description
		}
		// Keyword categories the document omits keep their built-in text.
		for _, d := range defaultDefinitions[level] {
			if _, exists := descs[d.Name]; !exists {
				descs[d.Name] = d.Description
			}
		}

		keywords := defaultKeywords[level]
		cats := make([]model.Category, 0, len(keywords)+len(levelDefs))
		listed := make(map[string]bool, len(keywords))
		for _, ks := range keywords {
			kw := make([]string, len(ks.Keywords))
			copy(kw, ks.Keywords)
			cats = append(cats, model.Category{
				Name:        ks.Name,
				Description: descs[ks.Name],
				Level:       level,
				Keywords:    kw,
			})
			listed[ks.Name] = true
		}
		for _, d := range levelDefs {
			if listed[d.Name] {
				continue
			}
			cats = append(cats, model.Category{
				Name:        d.Name,
				Description: d.Description,
				Level:       level,
			})
			listed[d.Name] = true
		}

		r.categories[level] = cats
		r.descriptions[level] = descs
	}

	return r
}

// AllLevels returns the taxonomy levels in rank order.
func (r *Registry) AllLevels() []model.Level {
	return model.Levels()
}

// Categories returns the categories of a level in match order.
func (r *Registry) Categories(level model.Level) []model.Category {
	cats := r.categories[level]
	out := make([]model.Category, len(cats))
	for i, c := range cats {
		out[i] = c
		out[i].Keywords = append([]string(nil), c.Keywords...)
	}
	return out
}

// Describe returns the display description of a category, or "" when the
// level has no such category.
func (r *Registry) Describe(level model.Level, name string) string {
	return r.descriptions[level][name]
}

// Source names the document the registry was built from.
func (r *Registry) Source() string {
	return r.source
}

// Fallbacks lists the levels that used built-in definitions instead of the
// source document.
func (r *Registry) Fallbacks() []*ConfigurationError {
	out := make([]*ConfigurationError, len(r.fallbacks))
	copy(out, r.fallbacks)
	return out
}
