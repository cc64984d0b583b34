package commands

import (
	"github.com/spf13/cobra"

	"github.com/marketdesk/marketdesk-cli/internal/cli"
)

// AddGlobalFlags registers the flags every command understands
func AddGlobalFlags(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.String("config", "", "Config file (default is marketdesk.yaml in the data directory)")
	pf.String("data-dir", "", "Data directory (default is the user config directory)")
	pf.String("store", "", "Preference store backend: file, redis, or log")
	pf.String("log-level", "", "Log level: debug, info, warn, or error")
	pf.StringP("output", "o", "text", "Output format: text, json, or yaml")
	pf.BoolP("quiet", "q", false, "Suppress informational output")
	pf.Bool("no-color", false, "Disable colored output")
	pf.BoolP("yes", "y", false, "Skip confirmation prompts")

	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		ApplyGlobalFlags(cmd)
	}
}

// ApplyGlobalFlags hands the output flags to the cli helpers
func ApplyGlobalFlags(cmd *cobra.Command) {
	quiet, _ := cmd.Flags().GetBool("quiet")
	noColor, _ := cmd.Flags().GetBool("no-color")
	yes, _ := cmd.Flags().GetBool("yes")
	cli.SetGlobalFlags(quiet, noColor, yes)
}
