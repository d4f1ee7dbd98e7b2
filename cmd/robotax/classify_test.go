package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Veraticus/robot-taxonomy/internal/classifier"
	"github.com/Veraticus/robot-taxonomy/internal/common"
	"github.com/Veraticus/robot-taxonomy/internal/export"
	"github.com/Veraticus/robot-taxonomy/internal/model"
	"github.com/Veraticus/robot-taxonomy/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyCmd_Flags(t *testing.T) {
	cmd := classifyCmd()

	for name, def := range map[string]string{
		"output":      "",
		"format":      "json",
		"taxonomy":    "",
		"on-error":    "skip",
		"workers":     "0",
		"filter":      "false",
		"save":        "false",
		"no-progress": "false",
	} {
		flag := cmd.Flag(name)
		require.NotNil(t, flag, "flag %s should exist", name)
		assert.Equal(t, def, flag.DefValue, "default of %s", name)
	}
}

func TestClassifyCmd_WritesJSON(t *testing.T) {
	dir := setupTestConfig(t)
	input := writeInputFile(t, dir, "robots.json", testutil.SampleInputs()[:3])
	output := filepath.Join(dir, "classified.json")

	_, stderr, err := execute(t, classifyCmd(), input, "--output", output, "--no-progress")
	require.NoError(t, err)

	got, err := export.LoadClassified(output)
	require.NoError(t, err)
	assert.Equal(t, testutil.SampleClassified(), got)

	assert.Contains(t, stderr, "Robots classified: 3")
}

func TestClassifyCmd_Stdout(t *testing.T) {
	dir := setupTestConfig(t)
	input := writeInputFile(t, dir, "robots.json", testutil.SampleInputs()[:1])

	stdout, _, err := execute(t, classifyCmd(), input, "--no-progress", "--workers", "2")
	require.NoError(t, err)

	got, err := export.ReadClassified(strings.NewReader(stdout))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Medical", got[0].Kingdom)
}

func TestClassifyCmd_StdinCSV(t *testing.T) {
	setupTestConfig(t)

	cmd := classifyCmd()
	cmd.SetIn(strings.NewReader(`[{"name": "Nautilus", "description": "underwater submarine explorer"}]`))
	stdout, _, err := execute(t, cmd, "-", "--format", "csv", "--no-progress")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "name,url,domain,kingdom,phylum,class,order,family,genus,species,description", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "Nautilus,,Physical,Marine,"))
}

func TestClassifyCmd_Filter(t *testing.T) {
	dir := setupTestConfig(t)
	input := writeInputFile(t, dir, "robots.json", testutil.SampleInputs())

	stdout, _, err := execute(t, classifyCmd(), input, "--filter", "--no-progress")
	require.NoError(t, err)

	got, err := export.ReadClassified(strings.NewReader(stdout))
	require.NoError(t, err)
	assert.Equal(t, testutil.SampleClassified(), got)
}

func TestClassifyCmd_ErrorPolicies(t *testing.T) {
	dir := setupTestConfig(t)
	path := filepath.Join(dir, "mixed.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"name": "ok"}, 42, {"name": ["bad"]}]`), 0o600))

	stdout, stderr, err := execute(t, classifyCmd(), path, "--no-progress")
	require.NoError(t, err)
	got, err := export.ReadClassified(strings.NewReader(stdout))
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Contains(t, stderr, "Records skipped: 2")

	_, _, err = execute(t, classifyCmd(), path, "--no-progress", "--on-error", "abort")
	assert.ErrorIs(t, err, classifier.ErrMalformedRecord)
}

func TestClassifyCmd_Save(t *testing.T) {
	dir := setupTestConfig(t)
	input := writeInputFile(t, dir, "robots.json", testutil.SampleInputs()[:3])

	_, stderr, err := execute(t, classifyCmd(), input, "--save", "--no-progress", "-o", filepath.Join(dir, "out.json"))
	require.NoError(t, err)
	assert.Contains(t, stderr, "Saved run")

	stdout, _, err := execute(t, listRunsCmd())
	require.NoError(t, err)
	assert.Contains(t, stdout, input)
}

func TestClassifyCmd_SaveEmpty(t *testing.T) {
	dir := setupTestConfig(t)
	input := writeInputFile(t, dir, "empty.json", []model.InputRecord{})

	_, _, err := execute(t, classifyCmd(), input, "--save", "--no-progress")
	assert.ErrorIs(t, err, common.ErrNoRecords)
}

func TestClassifyCmd_InvalidInput(t *testing.T) {
	dir := setupTestConfig(t)

	tests := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{name: "missing file", args: []string{filepath.Join(dir, "missing.json")}, wantMsg: "could not read input records"},
		{name: "bad format", args: []string{"-", "--format", "xml"}, wantMsg: "invalid --format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, classifyCmd(), tt.args...)
			require.Error(t, err)
			msg, ok := common.UserMessage(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestClassifyCmd_CustomTaxonomy(t *testing.T) {
	dir := setupTestConfig(t)
	input := writeInputFile(t, dir, "robots.json", testutil.SampleInputs()[:1])

	_, stderr, err := execute(t, classifyCmd(), input, "--no-progress", "--taxonomy", filepath.Join(dir, "missing.md"))
	require.NoError(t, err, "an unreadable taxonomy falls back to the built-in one")
	assert.Contains(t, stderr, "Robots classified: 1")
}
