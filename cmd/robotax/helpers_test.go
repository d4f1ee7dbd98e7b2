package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/Veraticus/robot-taxonomy/internal/config"
	"github.com/Veraticus/robot-taxonomy/internal/model"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

// setupTestConfig points the global config at a fresh database in a temp
// directory and restores the defaults afterwards.
func setupTestConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	resetConfig := func() {
		viper.Reset()
		config.SetDefaults(viper.GetViper())
	}
	resetConfig()
	t.Cleanup(resetConfig)

	viper.Set("database.path", filepath.Join(dir, "robotax.db"))
	return dir
}

func writeInputFile(t *testing.T, dir, name string, records []model.InputRecord) string {
	t.Helper()
	data, err := json.Marshal(records)
	require.NoError(t, err)
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

// execute runs cmd with args and returns its stdout and stderr.
func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	cmd.SilenceUsage = true
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}
