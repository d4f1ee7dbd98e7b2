// Package model defines the core domain models used throughout the application.
package model

import "strings"

// Level identifies one rank of the robot taxonomy.
type Level string

// Taxonomy levels, from the broadest rank to the leaf.
const (
	LevelDomain  Level = "Domain"
	LevelKingdom Level = "Kingdom"
	LevelPhylum  Level = "Phylum"
	LevelClass   Level = "Class"
	LevelOrder   Level = "Order"
	LevelFamily  Level = "Family"
	LevelGenus   Level = "Genus"
	LevelSpecies Level = "Species"
)

var allLevels = []Level{
	LevelDomain,
	LevelKingdom,
	LevelPhylum,
	LevelClass,
	LevelOrder,
	LevelFamily,
	LevelGenus,
	LevelSpecies,
}

// Levels returns every taxonomy level in rank order.
func Levels() []Level {
	out := make([]Level, len(allLevels))
	copy(out, allLevels)
	return out
}

// ParseLevel resolves a level name case-insensitively.
func ParseLevel(s string) (Level, bool) {
	for _, l := range allLevels {
		if strings.EqualFold(string(l), strings.TrimSpace(s)) {
			return l, true
		}
	}
	return "", false
}

// Key is the lower-case form used in serialized records and summaries.
func (l Level) Key() string {
	return strings.ToLower(string(l))
}

func (l Level) String() string {
	return string(l)
}

// Category is a named taxonomy bucket at one level.
type Category struct {
	Name        string
	Description string
	Level       Level
	Keywords    []string
}
