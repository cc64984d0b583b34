package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketdesk/marketdesk-cli/pkg/models"
	"github.com/marketdesk/marketdesk-cli/pkg/store"
)

func newTestCommand(t *testing.T, dir string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("config", "", "")
	cmd.Flags().String("data-dir", dir, "")
	cmd.Flags().String("store", "", "")
	cmd.Flags().String("log-level", "", "")
	return cmd
}

func TestNewCommandContext_FileStore(t *testing.T) {
	dir := t.TempDir()
	cmd := newTestCommand(t, dir)

	ctx, err := NewCommandContext(cmd)
	require.NoError(t, err)
	defer ctx.Close()

	assert.Equal(t, store.BackendFile, ctx.Store.Name())
	assert.Equal(t, filepath.Join(dir, "preferences.yaml"), ctx.Config.Store.Path)

	prefs, err := ctx.LoadPreferences()
	require.NoError(t, err)
	assert.Equal(t, models.DefaultPreferences(), prefs, "nothing stored yet")

	next := models.WithLanguage(prefs, models.LanguageEnglish)
	require.NoError(t, ctx.SavePreferences(next))

	loaded, err := ctx.LoadPreferences()
	require.NoError(t, err)
	assert.Equal(t, next, loaded)
}

func TestNewCommandContext_CreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "fresh", "marketdesk")
	cmd := newTestCommand(t, dir)

	ctx, err := NewCommandContext(cmd)
	require.NoError(t, err)

	assert.DirExists(t, dir)
	assert.DirExists(t, filepath.Join(dir, "logs"))

	ctx.Logger.Info("closing")
	ctx.Close()
	ctx.Close()
	assert.Nil(t, ctx.Store, "the store is released on close")

	entries, err := os.ReadDir(filepath.Join(dir, "logs"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	content, err := os.ReadFile(filepath.Join(dir, "logs", entries[0].Name()))
	require.NoError(t, err)
	assert.Contains(t, string(content), "closing", "close flushes the log file")
}

func TestNewCommandContext_StoreFlag(t *testing.T) {
	cmd := newTestCommand(t, t.TempDir())
	require.NoError(t, cmd.Flags().Set("store", "log"))

	ctx, err := NewCommandContext(cmd)
	require.NoError(t, err)
	defer ctx.Close()

	assert.Equal(t, store.BackendLog, ctx.Store.Name())
	assert.NoError(t, ctx.SavePreferences(models.DefaultPreferences()))
}

func TestNewCommandContext_InvalidBackend(t *testing.T) {
	cmd := newTestCommand(t, t.TempDir())
	require.NoError(t, cmd.Flags().Set("store", "s3"))

	_, err := NewCommandContext(cmd)
	assert.Error(t, err)
}

func TestEditorLauncher(t *testing.T) {
	t.Setenv("EDITOR", "")
	assert.Equal(t, "vi", NewEditorLauncher().DefaultEditor)

	t.Setenv("EDITOR", "true --wait")
	launcher := NewEditorLauncher()
	assert.Equal(t, "true --wait", launcher.DefaultEditor)
	assert.NoError(t, launcher.OpenFile(filepath.Join(t.TempDir(), "x.yaml")))

	launcher.DefaultEditor = "   "
	assert.Error(t, launcher.OpenFile("x.yaml"))
}
