package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/marketdesk/marketdesk-cli/cmd/commands"
	"github.com/marketdesk/marketdesk-cli/internal/cli"
	"github.com/marketdesk/marketdesk-cli/pkg/tui"
)

// Version is set during build with -ldflags
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "marketdesk",
	Short: "Terminal trading desk preferences",
	Long: `marketdesk keeps the display preferences of the trading dashboard: dark mode,
notifications, sounds, auto refresh, language and chart type. Run it without
arguments to open the interactive settings panel.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := cli.NewCommandContext(cmd)
		if err != nil {
			return err
		}
		defer ctx.Close()

		app := tui.NewApp(tui.AppOptions{
			Form: tui.SettingsFormOptions{
				Source:  ctx.Store,
				Sink:    ctx.Store,
				Logger:  ctx.Logger,
				Timeout: ctx.Config.Store.Timeout,
			},
			Version: version,
		})
		p := tea.NewProgram(app, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("failed to start the terminal user interface: %w", err)
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of marketdesk",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("marketdesk version %s\n", version)
	},
}

func init() {
	commands.AddGlobalFlags(rootCmd)

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(commands.NewShowCommand())
	rootCmd.AddCommand(commands.NewToggleCommand())
	rootCmd.AddCommand(commands.NewSetCommand())
	rootCmd.AddCommand(commands.NewResetCommand())
	rootCmd.AddCommand(commands.NewExportCommand())
	rootCmd.AddCommand(commands.NewClipboardCommand())
	rootCmd.AddCommand(commands.NewEditCommand())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		cli.PrintError("%v", err)
		os.Exit(1)
	}
}
