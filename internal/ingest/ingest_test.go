package ingest

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Veraticus/robot-taxonomy/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadRecords_JSON(t *testing.T) {
	input := `[
		{"name": "Atlas", "description": "A humanoid", "year": 2013},
		"not an object",
		null,
		{"name": "Spot", "tags": ["legged"]}
	]`

	records, err := ReadRecords(strings.NewReader(input), FormatJSON)
	require.NoError(t, err)
	require.Len(t, records, 4)

	assert.Equal(t, "Atlas", records[0]["name"])
	assert.InDelta(t, 2013, records[0]["year"], 0)
	assert.Nil(t, records[1])
	assert.Nil(t, records[2])
	assert.Equal(t, []any{"legged"}, records[3]["tags"])
}

func TestReadRecords_YAML(t *testing.T) {
	input := `
- name: Atlas
  description: A humanoid
- just a string
- name: Spot
`

	records, err := ReadRecords(strings.NewReader(input), FormatYAML)
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, model.InputRecord{"name": "Atlas", "description": "A humanoid"}, records[0])
	assert.Nil(t, records[1])
	assert.Equal(t, "Spot", records[2]["name"])
}

func TestReadRecords_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		format  Format
		wantErr error
		wantMsg string
	}{
		{name: "json object", input: `{"name": "Atlas"}`, format: FormatJSON, wantErr: ErrNotArray},
		{name: "json empty", input: "  ", format: FormatJSON, wantErr: ErrNotArray},
		{name: "json truncated", input: `[{"name": `, format: FormatJSON, wantMsg: "invalid JSON"},
		{name: "yaml mapping", input: "name: Atlas\n", format: FormatYAML, wantErr: ErrNotArray},
		{name: "yaml empty", input: "", format: FormatYAML, wantErr: ErrNotArray},
		{name: "unknown format", input: "[]", format: "toml", wantMsg: "unsupported input format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadRecords(strings.NewReader(tt.input), tt.format)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestFormatForPath(t *testing.T) {
	assert.Equal(t, FormatYAML, FormatForPath("robots.yaml"))
	assert.Equal(t, FormatYAML, FormatForPath("ROBOTS.YML"))
	assert.Equal(t, FormatJSON, FormatForPath("robots.json"))
	assert.Equal(t, FormatJSON, FormatForPath("robots"))
}

func TestLoadRecords(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "robots.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`[{"name": "Atlas"}]`), 0o600))
	records, err := LoadRecords(jsonPath)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Atlas", records[0]["name"])

	yamlPath := filepath.Join(dir, "robots.yml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("- name: Spot\n"), 0o600))
	records, err = LoadRecords(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, "Spot", records[0]["name"])

	_, err = LoadRecords(filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	badPath := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(badPath, []byte(`{}`), 0o600))
	_, err = LoadRecords(badPath)
	assert.ErrorIs(t, err, ErrNotArray)
	assert.Contains(t, err.Error(), "bad.json")
}

func TestWriteRecords(t *testing.T) {
	var buf bytes.Buffer
	records := []model.InputRecord{
		{"name": "Atlas", "description": "Boston <Dynamics> & co"},
	}
	require.NoError(t, WriteRecords(&buf, records))
	assert.Contains(t, buf.String(), "<Dynamics> & co")
	assert.Contains(t, buf.String(), "\n    \"name\": \"Atlas\"")

	back, err := ReadRecords(&buf, FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, records, back)

	buf.Reset()
	require.NoError(t, WriteRecords(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())
}
