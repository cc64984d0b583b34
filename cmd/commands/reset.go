package commands

import (
	"github.com/spf13/cobra"

	"github.com/marketdesk/marketdesk-cli/internal/cli"
	"github.com/marketdesk/marketdesk-cli/pkg/labels"
	"github.com/marketdesk/marketdesk-cli/pkg/models"
)

// NewResetCommand creates the reset command
func NewResetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Restore the default preferences",
		Long: `Replace the stored preferences with the defaults.

You will be asked to confirm unless --yes is given.

Examples:
  marketdesk reset
  marketdesk reset --yes`,
		Args: cobra.NoArgs,
		RunE: runReset,
	}

	return cmd
}

func runReset(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewCommandContext(cmd)
	if err != nil {
		return err
	}
	defer ctx.Close()

	prefs, err := ctx.LoadPreferences()
	if err != nil {
		return err
	}

	defaults := models.DefaultPreferences()
	if prefs == defaults {
		cli.PrintInfo("Preferences already match the defaults")
		return nil
	}

	confirmed, err := cli.Confirm("Reset all preferences to their defaults?", false)
	if err != nil {
		return err
	}
	if !confirmed {
		cli.PrintInfo("Reset cancelled")
		return nil
	}

	if err := ctx.SavePreferences(defaults); err != nil {
		return err
	}

	cli.PrintSuccess("%s", labels.Reset)
	return nil
}
