package commands

import (
	"github.com/spf13/cobra"

	"github.com/marketdesk/marketdesk-cli/internal/cli"
	"github.com/marketdesk/marketdesk-cli/pkg/labels"
	"github.com/marketdesk/marketdesk-cli/pkg/models"
)

// NewToggleCommand creates the toggle command
func NewToggleCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "toggle <field>",
		Short: "Flip a boolean preference",
		Long: `Flip one of the boolean preferences and save the result.

Fields: darkMode, notifications, sound, autoRefresh.

Examples:
  marketdesk toggle darkMode
  marketdesk toggle auto-refresh`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{models.KeyDarkMode, models.KeyNotifications, models.KeySound, models.KeyAutoRefresh},
		RunE:      runToggle,
	}

	return cmd
}

func runToggle(cmd *cobra.Command, args []string) error {
	field, err := models.ParseToggleField(args[0])
	if err != nil {
		return err
	}

	ctx, err := cli.NewCommandContext(cmd)
	if err != nil {
		return err
	}
	defer ctx.Close()

	prefs, err := ctx.LoadPreferences()
	if err != nil {
		return err
	}

	next := models.Toggle(prefs, field)
	if err := ctx.SavePreferences(next); err != nil {
		return err
	}

	cli.PrintSuccess("%s: %s", labels.ForToggle(field).Label, labels.ValueLabel(next, field.Key()))
	return nil
}
