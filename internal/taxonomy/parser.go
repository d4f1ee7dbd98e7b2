package taxonomy

import (
	"regexp"
	"strings"

	"github.com/Veraticus/robot-taxonomy/internal/model"
)

var (
	headingPattern = regexp.MustCompile(`^###\s+([A-Za-z]+)\s+Level:`)
	entryPattern   = regexp.MustCompile(`\*\*(.*?)\*\*: (.*)$`)
)

// parseDefinitions extracts `**Name**: description` entries from every
// `### <Level> Level: ...` section of a definition document. A section runs
// until the next `###` heading. Levels whose heading never appears are absent
// from the result; levels whose section holds no entries map to an empty slice.
func parseDefinitions(content []byte) map[model.Level][]definition {
	sections := make(map[model.Level][]definition)

	var (
		current model.Level
		inLevel bool
		seen    map[string]int
	)

	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimRight(line, "\r")

		if strings.HasPrefix(line, "###") {
			inLevel = false
			m := headingPattern.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			level, ok := model.ParseLevel(m[1])
			if !ok {
				continue
			}
			// A repeated heading replaces the earlier section.
			current, inLevel = level, true
			sections[level] = []definition{}
			seen = make(map[string]int)
			continue
		}

		if !inLevel {
			continue
		}

		m := entryPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		name := strings.TrimSpace(m[1])
		if name == "" {
			continue
		}
		desc := strings.TrimSpace(m[2])
		if i, dup := seen[name]; dup {
			sections[current][i].Description = desc
			continue
		}
		seen[name] = len(sections[current])
		sections[current] = append(sections[current], definition{Name: name, Description: desc})
	}

	return sections
}
