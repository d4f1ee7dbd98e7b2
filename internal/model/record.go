package model

// InputRecord is one raw robot entry as supplied by an upstream collector.
// A nil InputRecord stands for an entry that was not an object at all.
type InputRecord map[string]any

// ClassifiedRecord is the output of classifying one InputRecord.
type ClassifiedRecord struct {
	Name        string   `json:"name"`
	URL         string   `json:"url"`
	Description string   `json:"description"`
	Domain      string   `json:"domain"`
	Kingdom     string   `json:"kingdom"`
	Phylum      string   `json:"phylum"`
	Class       string   `json:"class"`
	Order       string   `json:"order"`
	Family      string   `json:"family"`
	Genus       string   `json:"genus"`
	Species     []string `json:"species"`
}

// Label returns the single label assigned at a level.
// Species is multi-valued; use Species directly for it.
func (r ClassifiedRecord) Label(level Level) string {
	switch level {
	case LevelDomain:
		return r.Domain
	case LevelKingdom:
		return r.Kingdom
	case LevelPhylum:
		return r.Phylum
	case LevelClass:
		return r.Class
	case LevelOrder:
		return r.Order
	case LevelFamily:
		return r.Family
	case LevelGenus:
		return r.Genus
	}
	return ""
}

// Labels returns every label the record carries at a level, including
// all species entries.
func (r ClassifiedRecord) Labels(level Level) []string {
	if level == LevelSpecies {
		return r.Species
	}
	if label := r.Label(level); label != "" {
		return []string{label}
	}
	return nil
}
