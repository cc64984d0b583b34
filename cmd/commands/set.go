package commands

import (
	"github.com/spf13/cobra"

	"github.com/marketdesk/marketdesk-cli/internal/cli"
	"github.com/marketdesk/marketdesk-cli/pkg/labels"
	"github.com/marketdesk/marketdesk-cli/pkg/models"
)

// NewSetCommand creates the set command
func NewSetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <field> <value>",
		Short: "Set a preference to a value",
		Long: `Set any preference and save the result.

Boolean fields take true or false. language takes ar or en.
chartType takes candlestick, line, or area.

Examples:
  marketdesk set language en
  marketdesk set chartType area
  marketdesk set sound false`,
		Args: cobra.ExactArgs(2),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return cli.ValidateFieldKey(args[0])
		},
		RunE: runSet,
	}

	return cmd
}

func runSet(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewCommandContext(cmd)
	if err != nil {
		return err
	}
	defer ctx.Close()

	prefs, err := ctx.LoadPreferences()
	if err != nil {
		return err
	}

	next, err := models.Apply(prefs, args[0], args[1])
	if err != nil {
		return err
	}

	if next == prefs {
		cli.PrintInfo("%s unchanged", args[0])
		return nil
	}

	if err := ctx.SavePreferences(next); err != nil {
		return err
	}

	key, _ := models.CanonicalKey(args[0])
	cli.PrintSuccess("%s: %s", labels.FieldLabel(key), labels.ValueLabel(next, key))
	return nil
}
