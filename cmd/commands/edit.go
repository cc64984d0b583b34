package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marketdesk/marketdesk-cli/internal/cli"
	"github.com/marketdesk/marketdesk-cli/pkg/files"
	"github.com/marketdesk/marketdesk-cli/pkg/models"
	"github.com/marketdesk/marketdesk-cli/pkg/store"
)

// NewEditCommand creates the edit command
func NewEditCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit the preferences file in your editor",
		Long: `Open the preferences file in your default editor ($EDITOR).

Only available with the file store. The file is created with the defaults
if it does not exist yet, and checked again once the editor exits.

Examples:
  marketdesk edit
  EDITOR=nano marketdesk edit`,
		Args: cobra.NoArgs,
		RunE: runEdit,
	}

	return cmd
}

func runEdit(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewCommandContext(cmd)
	if err != nil {
		return err
	}
	defer ctx.Close()

	fileStore, ok := ctx.Store.(*store.FileStore)
	if !ok {
		return fmt.Errorf("edit requires the file store, current store is %s", ctx.Store.Name())
	}
	path := fileStore.Path()

	if _, err := files.ReadPreferences(path); err != nil {
		if !errors.Is(err, files.ErrNoPreferences) {
			cli.PrintWarning("Preferences file is currently invalid: %v", err)
		} else if err := files.WritePreferences(path, models.DefaultPreferences()); err != nil {
			return err
		}
	}

	launcher := cli.NewEditorLauncher()
	cli.PrintInfo("Opening %s in editor...", path)
	if err := launcher.OpenFile(path); err != nil {
		return err
	}

	if _, err := files.ReadPreferences(path); err != nil {
		return fmt.Errorf("edited preferences are invalid: %w", err)
	}

	cli.PrintSuccess("Preferences edited successfully")
	return nil
}
