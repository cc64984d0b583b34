package testhelpers

import (
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/marketdesk/marketdesk-cli/pkg/files"
	"github.com/marketdesk/marketdesk-cli/pkg/models"
	"github.com/marketdesk/marketdesk-cli/pkg/store"
)

// TestEnvironment is a temporary data directory with a file store in it
type TestEnvironment struct {
	t       *testing.T
	TempDir string
}

// NewTestEnvironment creates a new test environment with a temporary directory
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	dir := t.TempDir()
	if err := files.InitDataDir(dir); err != nil {
		t.Fatalf("Failed to init data dir: %v", err)
	}

	return &TestEnvironment{t: t, TempDir: dir}
}

// PreferencesPath is where the file store keeps the record
func (e *TestEnvironment) PreferencesPath() string {
	return filepath.Join(e.TempDir, files.PreferencesFile)
}

// FileStore opens a file store over the environment
func (e *TestEnvironment) FileStore() *store.FileStore {
	return store.NewFileStore(e.PreferencesPath(), zap.NewNop())
}

// WritePreferences stores a record directly on disk
func (e *TestEnvironment) WritePreferences(prefs models.PreferenceSet) {
	e.t.Helper()
	if err := files.WritePreferences(e.PreferencesPath(), prefs); err != nil {
		e.t.Fatalf("Failed to write preferences: %v", err)
	}
}

// ReadPreferences reads the record back from disk
func (e *TestEnvironment) ReadPreferences() models.PreferenceSet {
	e.t.Helper()
	prefs, err := files.ReadPreferences(e.PreferencesPath())
	if err != nil {
		e.t.Fatalf("Failed to read preferences: %v", err)
	}
	return prefs
}
