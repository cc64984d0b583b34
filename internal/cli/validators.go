package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/marketdesk/marketdesk-cli/pkg/models"
)

// ValidateOutputFormat validates the output format flag
func ValidateOutputFormat(format string) error {
	validFormats := []string{"text", "json", "yaml"}
	if Contains(validFormats, format) {
		return nil
	}
	return fmt.Errorf("invalid output format: %s (must be: text, json, or yaml)", format)
}

// ValidateFieldKey validates a preference key as typed on the command line
func ValidateFieldKey(key string) error {
	if key == "" {
		return fmt.Errorf("field name cannot be empty")
	}
	p := models.DefaultPreferences()
	if _, err := p.Get(key); err != nil {
		return fmt.Errorf("unknown field: %s (must be one of: %s)", key, strings.Join(models.FieldKeys, ", "))
	}
	return nil
}

// ValidateExportPath checks that an export destination is not a directory
// and that its parent exists
func ValidateExportPath(path string) error {
	if path == "" {
		return fmt.Errorf("export path cannot be empty")
	}
	if !filepath.IsAbs(path) {
		path, _ = filepath.Abs(path)
	}

	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return fmt.Errorf("path is a directory, expected file: %s", path)
	}

	parent := filepath.Dir(path)
	info, err := os.Stat(parent)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("directory does not exist: %s", parent)
		}
		return fmt.Errorf("error accessing directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("path is not a directory: %s", parent)
	}

	return nil
}

// Contains checks if a string is in a slice
func Contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
