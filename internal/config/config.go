package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/robot-taxonomy/internal/common"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// DefaultDatabasePath is where runs are stored unless configured otherwise.
const DefaultDatabasePath = "$HOME/.local/share/robotax/robotax.db"

// Config holds all application configuration.
type Config struct {
	Taxonomy       TaxonomyConfig       `mapstructure:"taxonomy"`
	Database       DatabaseConfig       `mapstructure:"database"`
	Classification ClassificationConfig `mapstructure:"classification"`
	Filter         FilterConfig         `mapstructure:"filter"`
	Logging        LoggingConfig        `mapstructure:"logging"`
}

// TaxonomyConfig points at an optional taxonomy definition document.
type TaxonomyConfig struct {
	// Path is empty for the built-in taxonomy.
	Path string `mapstructure:"path"`
}

// DatabaseConfig configures the run store.
type DatabaseConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

// ClassificationConfig controls batch classification.
type ClassificationConfig struct {
	OnError string `mapstructure:"on_error" validate:"required,oneof=skip abort"`
	Workers int    `mapstructure:"workers" validate:"gte=0"`
}

// FilterConfig controls the raw-entry filter.
type FilterConfig struct {
	MinDescription int `mapstructure:"min_description" validate:"gte=0"`
}

// LoggingConfig selects the slog level and handler.
type LoggingConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=console json"`
}

var validate = validator.New()

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("database.path", DefaultDatabasePath)
	v.SetDefault("classification.workers", 0)
	v.SetDefault("classification.on_error", "skip")
	v.SetDefault("filter.min_description", 50)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}

// Load unmarshals and validates the configuration held by v. Paths are
// returned with ~ and environment variables expanded.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidConfig, err)
	}

	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %s", common.ErrInvalidConfig, describeValidation(err))
	}

	cfg.Taxonomy.Path = ExpandPath(cfg.Taxonomy.Path)
	cfg.Database.Path = ExpandPath(cfg.Database.Path)

	return &cfg, nil
}

// describeValidation flattens validator errors into "field: rule" pairs.
func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		parts = append(parts, fmt.Sprintf("%s must satisfy %s", fe.Namespace(), rule))
	}
	return strings.Join(parts, "; ")
}
