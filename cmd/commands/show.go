package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marketdesk/marketdesk-cli/internal/cli"
)

// NewShowCommand creates the show command
func NewShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [field]",
		Short: "Display the stored preferences",
		Long: `Display the preferences held by the configured store.

Without an argument every field is printed. With a field name only that
field's value is printed, which is handy in scripts.

Examples:
  # Show all preferences as a table
  marketdesk show

  # Show a single field
  marketdesk show chartType

  # Output as JSON
  marketdesk show -o json`,
		Args: cobra.MaximumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("output")
			if err := cli.ValidateOutputFormat(format); err != nil {
				return err
			}
			if len(args) == 1 {
				return cli.ValidateFieldKey(args[0])
			}
			return nil
		},
		RunE: runShow,
	}

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewCommandContext(cmd)
	if err != nil {
		return err
	}
	defer ctx.Close()

	prefs, err := ctx.LoadPreferences()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if len(args) == 1 {
		value, err := prefs.Get(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(out, value)
		return nil
	}

	outputFormat, _ := cmd.Flags().GetString("output")
	if outputFormat == "json" || outputFormat == "yaml" {
		return cli.OutputResults(out, outputFormat, prefs)
	}

	fmt.Fprintln(out, cli.RenderPreferencesTable(prefs))
	return nil
}
