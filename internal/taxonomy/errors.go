package taxonomy

import (
	"errors"
	"fmt"

	"github.com/Veraticus/robot-taxonomy/internal/model"
)

// Reasons a definition source could not supply a level.
var (
	ErrSourceUnavailable = errors.New("definition source unavailable")
	ErrSectionMissing    = errors.New("level section missing")
	ErrSectionEmpty      = errors.New("level section has no categories")
)

// ConfigurationError records a level that fell back to the built-in
// definitions. It is informational: the registry is still complete.
type ConfigurationError struct {
	Err    error
	Source string
	// Level is empty when the whole source was unusable.
	Level model.Level
}

func (e *ConfigurationError) Error() string {
	if e.Level == "" {
		return fmt.Sprintf("taxonomy %s: %v", e.Source, e.Err)
	}
	return fmt.Sprintf("taxonomy %s: level %s: %v", e.Source, e.Level, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}
