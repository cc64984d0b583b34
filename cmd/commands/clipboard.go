package commands

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/marketdesk/marketdesk-cli/internal/cli"
	"github.com/marketdesk/marketdesk-cli/pkg/files"
)

// NewClipboardCommand creates the clipboard command
func NewClipboardCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clipboard",
		Short: "Copy the preferences to the clipboard",
		Long: `Copy the stored preferences, as YAML, to the system clipboard.

The copied text can be pasted into another machine's preferences file.

Examples:
  marketdesk clipboard`,
		Args:    cobra.NoArgs,
		Aliases: []string{"clip", "copy"},
		RunE:    runClipboard,
	}

	return cmd
}

func runClipboard(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewCommandContext(cmd)
	if err != nil {
		return err
	}
	defer ctx.Close()

	prefs, err := ctx.LoadPreferences()
	if err != nil {
		return err
	}

	data, err := files.MarshalPreferences(prefs)
	if err != nil {
		return err
	}

	if err := copyToClipboard(string(data)); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}

	cli.PrintSuccess("Preferences copied to clipboard")
	cli.PrintInfo("Fingerprint: %s", prefs.Fingerprint())
	return nil
}

// copyToClipboard is swapped out in tests
var copyToClipboard = clipboard.WriteAll
