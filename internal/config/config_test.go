package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Veraticus/robot-taxonomy/internal/common"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper(t *testing.T, overrides map[string]any) *viper.Viper {
	t.Helper()
	v := viper.New()
	SetDefaults(v)
	for k, val := range overrides {
		v.Set(k, val)
	}
	return v
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	cfg, err := Load(newViper(t, nil))
	require.NoError(t, err)

	assert.Empty(t, cfg.Taxonomy.Path)
	assert.Equal(t, "/home/tester/.local/share/robotax/robotax.db", cfg.Database.Path)
	assert.Equal(t, 0, cfg.Classification.Workers)
	assert.Equal(t, "skip", cfg.Classification.OnError)
	assert.Equal(t, 50, cfg.Filter.MinDescription)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
taxonomy:
  path: ` + filepath.Join(dir, "framework.md") + `
classification:
  workers: 4
  on_error: abort
logging:
  level: debug
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	v := newViper(t, nil)
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "framework.md"), cfg.Taxonomy.Path)
	assert.Equal(t, 4, cfg.Classification.Workers)
	assert.Equal(t, "abort", cfg.Classification.OnError)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		overrides map[string]any
		name      string
		wantMsg   string
	}{
		{name: "unknown error policy", overrides: map[string]any{"classification.on_error": "retry"}, wantMsg: "OnError must satisfy oneof=skip abort"},
		{name: "negative workers", overrides: map[string]any{"classification.workers": -2}, wantMsg: "Workers must satisfy gte=0"},
		{name: "bad log level", overrides: map[string]any{"logging.level": "loud"}, wantMsg: "Level must satisfy oneof"},
		{name: "empty database path", overrides: map[string]any{"database.path": ""}, wantMsg: "Path must satisfy required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(newViper(t, tt.overrides))
			require.Error(t, err)
			assert.ErrorIs(t, err, common.ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestExpandPath(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	t.Setenv("ROBOTAX_DATA", "/data")

	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"~", "/home/tester"},
		{"~/robots.json", "/home/tester/robots.json"},
		{"$ROBOTAX_DATA/robots.json", "/data/robots.json"},
		{"/abs/path", "/abs/path"},
		{"relative/~file", "relative/~file"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.input))
		})
	}
}
