package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marketdesk/marketdesk-cli/internal/cli"
	"github.com/marketdesk/marketdesk-cli/pkg/files"
)

// NewExportCommand creates the export command
func NewExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the preferences to stdout or a file",
		Long: `Export the stored preferences as YAML (or JSON with -o json).

By default the record is written to stdout. Use --file to write it to a file.

Examples:
  # Export to stdout
  marketdesk export

  # Export to a file
  marketdesk export --file backup.yaml

  # Export as JSON
  marketdesk export -o json`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("output")
			if err := cli.ValidateOutputFormat(format); err != nil {
				return err
			}
			if f, _ := cmd.Flags().GetString("file"); f != "" {
				return cli.ValidateExportPath(f)
			}
			return nil
		},
		RunE: runExport,
	}

	cmd.Flags().StringP("file", "f", "", "Export to file instead of stdout")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewCommandContext(cmd)
	if err != nil {
		return err
	}
	defer ctx.Close()

	prefs, err := ctx.LoadPreferences()
	if err != nil {
		return err
	}

	outputFormat, _ := cmd.Flags().GetString("output")
	exportToFile, _ := cmd.Flags().GetString("file")

	if outputFormat == "json" {
		if exportToFile == "" {
			return cli.OutputResults(cmd.OutOrStdout(), outputFormat, prefs)
		}
		data, err := json.MarshalIndent(prefs, "", "  ")
		if err != nil {
			return err
		}
		if err := files.WriteFile(exportToFile, string(data)+"\n"); err != nil {
			return fmt.Errorf("failed to export preferences: %w", err)
		}
		cli.PrintSuccess("Preferences exported to: %s (json format)", exportToFile)
		return nil
	}

	data, err := files.MarshalPreferences(prefs)
	if err != nil {
		return err
	}

	if exportToFile == "" {
		fmt.Fprint(cmd.OutOrStdout(), string(data))
		return nil
	}

	if err := files.WritePreferences(exportToFile, prefs); err != nil {
		return fmt.Errorf("failed to export preferences: %w", err)
	}
	cli.PrintSuccess("Preferences exported to: %s", exportToFile)
	return nil
}
