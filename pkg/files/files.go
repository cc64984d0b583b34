package files

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/marketdesk/marketdesk-cli/pkg/models"
)

const (
	AppDir          = "marketdesk"
	LogsDir         = "logs"
	PreferencesFile = "preferences.yaml"
	ConfigFile      = "marketdesk.yaml"
	ExportFile      = "marketdesk-preferences.yaml"
)

// ErrNoPreferences is returned when no preferences file exists yet.
var ErrNoPreferences = errors.New("no preferences file")

// DefaultDir returns the per-user directory holding preferences, config and logs.
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine user config directory: %w", err)
	}
	return filepath.Join(base, AppDir), nil
}

// InitDataDir creates the data directory layout under dir.
func InitDataDir(dir string) error {
	dirs := []string{
		dir,
		filepath.Join(dir, LogsDir),
	}

	for _, d := range dirs {
		if err := os.MkdirAll(d, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", d, err)
		}
	}

	return nil
}

// ReadPreferences loads a preference record from a YAML file.
// Missing fields keep their default values.
func ReadPreferences(path string) (models.PreferenceSet, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return models.DefaultPreferences(), fmt.Errorf("%w: %s", ErrNoPreferences, path)
		}
		return models.DefaultPreferences(), fmt.Errorf("failed to read preferences %s: %w", path, err)
	}

	return ParsePreferences(content)
}

// ParsePreferences decodes YAML on top of the defaults.
func ParsePreferences(content []byte) (models.PreferenceSet, error) {
	prefs := models.DefaultPreferences()
	if err := yaml.Unmarshal(content, &prefs); err != nil {
		return models.DefaultPreferences(), fmt.Errorf("failed to parse preferences YAML: %w", err)
	}
	return prefs, nil
}

// MarshalPreferences encodes a record as YAML.
func MarshalPreferences(prefs models.PreferenceSet) ([]byte, error) {
	content, err := yaml.Marshal(prefs)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal preferences to YAML: %w", err)
	}
	return content, nil
}

// WritePreferences writes a record to path. The file is replaced atomically.
func WritePreferences(path string, prefs models.PreferenceSet) error {
	content, err := MarshalPreferences(prefs)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory for preferences: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write preferences %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write preferences %s: %w", path, err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to set permissions on %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace preferences %s: %w", path, err)
	}

	return nil
}

// WriteFile writes content to a file (for exports)
func WriteFile(path string, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}
