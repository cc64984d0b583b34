package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/marketdesk/marketdesk-cli/pkg/files"
	"github.com/marketdesk/marketdesk-cli/pkg/models"
)

// runCommand executes sub under a root carrying the global flags, against dir
func runCommand(t *testing.T, dir string, sub *cobra.Command, args ...string) (string, error) {
	t.Helper()

	root := &cobra.Command{Use: "marketdesk", SilenceUsage: true}
	AddGlobalFlags(root)
	root.AddCommand(sub)

	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(append([]string{sub.Name(), "--data-dir", dir, "-q", "--no-color"}, args...))

	err := root.Execute()
	return buf.String(), err
}

func storedPreferences(t *testing.T, dir string) models.PreferenceSet {
	t.Helper()
	prefs, err := files.ReadPreferences(filepath.Join(dir, files.PreferencesFile))
	require.NoError(t, err)
	return prefs
}

func TestShowCommand(t *testing.T) {
	dir := t.TempDir()
	defaults := models.DefaultPreferences()

	t.Run("table", func(t *testing.T) {
		out, err := runCommand(t, dir, NewShowCommand())
		require.NoError(t, err)
		for _, key := range models.FieldKeys {
			assert.Contains(t, out, key)
		}
		assert.Contains(t, out, defaults.Fingerprint())
	})

	t.Run("json", func(t *testing.T) {
		out, err := runCommand(t, dir, NewShowCommand(), "-o", "json")
		require.NoError(t, err)

		var decoded models.PreferenceSet
		require.NoError(t, json.Unmarshal([]byte(out), &decoded))
		assert.Equal(t, defaults, decoded)
	})

	t.Run("yaml", func(t *testing.T) {
		out, err := runCommand(t, dir, NewShowCommand(), "-o", "yaml")
		require.NoError(t, err)
		assert.Contains(t, out, "language: ar")
	})

	t.Run("single field", func(t *testing.T) {
		out, err := runCommand(t, dir, NewShowCommand(), "chartType")
		require.NoError(t, err)
		assert.Equal(t, "candlestick\n", out)
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := runCommand(t, dir, NewShowCommand(), "fontSize")
		assert.Error(t, err)
	})

	t.Run("invalid output", func(t *testing.T) {
		_, err := runCommand(t, dir, NewShowCommand(), "-o", "xml")
		assert.Error(t, err)
	})
}

func TestToggleCommand(t *testing.T) {
	dir := t.TempDir()

	_, err := runCommand(t, dir, NewToggleCommand(), "darkMode")
	require.NoError(t, err)
	assert.True(t, storedPreferences(t, dir).DarkMode)

	_, err = runCommand(t, dir, NewToggleCommand(), "dark-mode")
	require.NoError(t, err)
	assert.Equal(t, models.DefaultPreferences(), storedPreferences(t, dir), "toggling twice restores the record")

	_, err = runCommand(t, dir, NewToggleCommand(), "sound")
	require.NoError(t, err)
	prefs := storedPreferences(t, dir)
	assert.False(t, prefs.Sound)
	assert.True(t, prefs.Notifications)
	assert.False(t, prefs.DarkMode)

	_, err = runCommand(t, dir, NewToggleCommand(), "language")
	assert.ErrorIs(t, err, models.ErrUnknownField)
}

func TestSetCommand(t *testing.T) {
	dir := t.TempDir()

	_, err := runCommand(t, dir, NewSetCommand(), "language", "en")
	require.NoError(t, err)
	_, err = runCommand(t, dir, NewSetCommand(), "chartType", "line")
	require.NoError(t, err)
	_, err = runCommand(t, dir, NewSetCommand(), "chart", "area")
	require.NoError(t, err)

	prefs := storedPreferences(t, dir)
	assert.Equal(t, models.LanguageEnglish, prefs.Language)
	assert.Equal(t, models.ChartArea, prefs.ChartType)

	_, err = runCommand(t, dir, NewSetCommand(), "chartType", "pie")
	assert.ErrorIs(t, err, models.ErrInvalidChartType)
	assert.Equal(t, prefs, storedPreferences(t, dir), "a rejected value leaves the store untouched")

	_, err = runCommand(t, dir, NewSetCommand(), "autoRefresh", "false")
	require.NoError(t, err)
	assert.False(t, storedPreferences(t, dir).AutoRefresh)

	_, err = runCommand(t, dir, NewSetCommand(), "theme", "dark")
	assert.Error(t, err)

	_, err = runCommand(t, dir, NewSetCommand(), "language")
	assert.Error(t, err, "value is required")
}

func TestResetCommand(t *testing.T) {
	dir := t.TempDir()

	_, err := runCommand(t, dir, NewSetCommand(), "darkMode", "true")
	require.NoError(t, err)

	_, err = runCommand(t, dir, NewResetCommand(), "--yes")
	require.NoError(t, err)
	assert.Equal(t, models.DefaultPreferences(), storedPreferences(t, dir))

	_, err = runCommand(t, dir, NewResetCommand(), "--yes")
	assert.NoError(t, err, "resetting the defaults is a no-op")
}

func TestExportCommand(t *testing.T) {
	dir := t.TempDir()
	_, err := runCommand(t, dir, NewSetCommand(), "chartType", "line")
	require.NoError(t, err)

	t.Run("stdout", func(t *testing.T) {
		out, err := runCommand(t, dir, NewExportCommand())
		require.NoError(t, err)

		var decoded models.PreferenceSet
		require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))
		assert.Equal(t, models.ChartLine, decoded.ChartType)
	})

	t.Run("file", func(t *testing.T) {
		dest := filepath.Join(t.TempDir(), "backup.yaml")
		_, err := runCommand(t, dir, NewExportCommand(), "--file", dest)
		require.NoError(t, err)

		prefs, err := files.ReadPreferences(dest)
		require.NoError(t, err)
		assert.Equal(t, storedPreferences(t, dir), prefs)
	})

	t.Run("json file", func(t *testing.T) {
		dest := filepath.Join(t.TempDir(), "backup.json")
		_, err := runCommand(t, dir, NewExportCommand(), "--file", dest, "-o", "json")
		require.NoError(t, err)

		data, err := os.ReadFile(dest)
		require.NoError(t, err)
		assert.True(t, strings.Contains(string(data), `"chartType": "line"`))
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := runCommand(t, dir, NewExportCommand(), "--file", filepath.Join(t.TempDir(), "nope", "x.yaml"))
		assert.Error(t, err)
	})

	t.Run("unknown format", func(t *testing.T) {
		dest := filepath.Join(t.TempDir(), "backup.xml")
		_, err := runCommand(t, dir, NewExportCommand(), "--file", dest, "-o", "xml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid output format")
		assert.NoFileExists(t, dest)
	})
}

func TestClipboardCommand(t *testing.T) {
	var copied string
	orig := copyToClipboard
	copyToClipboard = func(s string) error {
		copied = s
		return nil
	}
	defer func() { copyToClipboard = orig }()

	dir := t.TempDir()
	_, err := runCommand(t, dir, NewClipboardCommand())
	require.NoError(t, err)

	prefs, err := files.ParsePreferences([]byte(copied))
	require.NoError(t, err)
	assert.Equal(t, models.DefaultPreferences(), prefs)
}

func TestEditCommand(t *testing.T) {
	t.Setenv("EDITOR", "true")

	t.Run("creates the file with defaults", func(t *testing.T) {
		dir := t.TempDir()
		_, err := runCommand(t, dir, NewEditCommand())
		require.NoError(t, err)
		assert.Equal(t, models.DefaultPreferences(), storedPreferences(t, dir))
	})

	t.Run("requires the file store", func(t *testing.T) {
		_, err := runCommand(t, t.TempDir(), NewEditCommand(), "--store", "log")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "file store")
	})

	t.Run("invalid after editing", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, files.PreferencesFile)
		require.NoError(t, os.WriteFile(path, []byte("language: fr\n"), 0644))

		_, err := runCommand(t, dir, NewEditCommand())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid")
	})
}
