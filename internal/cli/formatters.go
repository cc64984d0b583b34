package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"

	"github.com/marketdesk/marketdesk-cli/pkg/labels"
	"github.com/marketdesk/marketdesk-cli/pkg/models"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
)

// OutputResults formats and outputs results based on the specified format
func OutputResults(w io.Writer, format string, data interface{}) error {
	switch OutputFormat(format) {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(data)

	case FormatYAML:
		yamlData, err := yaml.Marshal(data)
		if err != nil {
			return err
		}
		fmt.Fprint(w, string(yamlData))
		return nil

	case FormatText:
		// For text format, we expect the caller to have already formatted
		// the data appropriately. This is a fallback.
		fmt.Fprintf(w, "%v\n", data)
		return nil

	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// RenderPreferencesTable renders a record as a table with one row per field
func RenderPreferencesTable(prefs models.PreferenceSet) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	if noColor {
		t.Style().Color = table.ColorOptions{}
	} else {
		t.Style().Color.Header = text.Colors{text.Bold}
	}
	t.AppendHeader(table.Row{"KEY", "VALUE", labels.PanelTitle, ""})

	for _, key := range models.FieldKeys {
		raw, _ := prefs.Get(key)
		t.AppendRow(table.Row{key, raw, labels.FieldLabel(key), labels.ValueLabel(prefs, key)})
	}

	t.AppendSeparator()
	t.AppendFooter(table.Row{"fingerprint", prefs.Fingerprint(), "", ""})

	return t.Render()
}
