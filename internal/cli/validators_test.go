package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateOutputFormat(t *testing.T) {
	for _, format := range []string{"text", "json", "yaml"} {
		assert.NoError(t, ValidateOutputFormat(format), format)
	}
	assert.Error(t, ValidateOutputFormat("xml"))
	assert.Error(t, ValidateOutputFormat(""))
}

func TestValidateFieldKey(t *testing.T) {
	tests := []struct {
		key     string
		wantErr bool
	}{
		{"darkMode", false},
		{"dark-mode", false},
		{"language", false},
		{"chartType", false},
		{"chart", false},
		{"", true},
		{"fontSize", true},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			err := ValidateFieldKey(tt.key)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateExportPath(t *testing.T) {
	dir := t.TempDir()

	assert.NoError(t, ValidateExportPath(filepath.Join(dir, "prefs.yaml")))
	assert.Error(t, ValidateExportPath(""))
	assert.Error(t, ValidateExportPath(dir), "a directory is not a valid destination")
	assert.Error(t, ValidateExportPath(filepath.Join(dir, "missing", "prefs.yaml")))

	blocker := filepath.Join(dir, "blocker")
	assert.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))
	assert.Error(t, ValidateExportPath(filepath.Join(blocker, "prefs.yaml")))
}

func TestContains(t *testing.T) {
	assert.True(t, Contains([]string{"a", "b"}, "b"))
	assert.False(t, Contains([]string{"a", "b"}, "c"))
	assert.False(t, Contains(nil, "a"))
}
