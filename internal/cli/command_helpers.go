package cli

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/marketdesk/marketdesk-cli/internal/config"
	"github.com/marketdesk/marketdesk-cli/internal/logging"
	"github.com/marketdesk/marketdesk-cli/pkg/files"
	"github.com/marketdesk/marketdesk-cli/pkg/models"
	"github.com/marketdesk/marketdesk-cli/pkg/store"
)

// EnvFile is the dotenv file read from the working directory.
const EnvFile = ".env"

// CommandContext carries configuration, logger and store for one command run
type CommandContext struct {
	Config *config.Config
	Logger *zap.Logger
	Store  store.Store

	closeLog func()
}

// NewCommandContext loads configuration from the command's flags and opens the store
func NewCommandContext(cmd *cobra.Command) (*CommandContext, error) {
	opts := config.LoadOptions{
		EnvFile: EnvFile,
		Flags:   cmd.Flags(),
	}
	if f := cmd.Flags().Lookup("config"); f != nil {
		opts.ConfigFile = f.Value.String()
	}
	if f := cmd.Flags().Lookup("data-dir"); f != nil {
		opts.Dir = f.Value.String()
	}

	cfg, err := config.Load(opts)
	if err != nil {
		return nil, err
	}

	if err := files.InitDataDir(cfg.Dir); err != nil {
		return nil, err
	}

	logger, closeLog, err := logging.New(logging.Options{Dir: cfg.Log.Dir, Level: cfg.Log.Level})
	if err != nil {
		return nil, err
	}

	s, err := store.Open(cfg.StoreOptions(), logger)
	if err != nil {
		closeLog()
		return nil, err
	}

	logger.Debug("command context ready",
		zap.String("command", cmd.CommandPath()),
		zap.String("store", s.Name()),
	)

	return &CommandContext{Config: cfg, Logger: logger, Store: s, closeLog: closeLog}, nil
}

// LoadPreferences returns the stored record, or the defaults when none is stored yet
func (c *CommandContext) LoadPreferences() (models.PreferenceSet, error) {
	ctx, cancel := context.WithTimeout(context.Background(), c.Config.Store.Timeout)
	defer cancel()

	prefs, err := store.LoadOrDefault(ctx, c.Store)
	if err != nil {
		c.Logger.Error("failed to load preferences", zap.Error(err))
		return prefs, fmt.Errorf("failed to load preferences: %w", err)
	}
	return prefs, nil
}

// SavePreferences hands the record to the configured store
func (c *CommandContext) SavePreferences(prefs models.PreferenceSet) error {
	if err := store.PersistWithTimeout(c.Store, prefs, c.Config.Store.Timeout); err != nil {
		c.Logger.Error("failed to save preferences", zap.Error(err))
		return fmt.Errorf("failed to save preferences: %w", err)
	}
	return nil
}

// Close releases the store, then flushes and closes the log file.
// Calling it more than once is safe.
func (c *CommandContext) Close() {
	if c.Store != nil {
		if err := c.Store.Close(); err != nil && c.Logger != nil {
			c.Logger.Warn("failed to close store", zap.String("store", c.Store.Name()), zap.Error(err))
		}
		c.Store = nil
	}
	if c.closeLog != nil {
		c.closeLog()
		c.closeLog = nil
	}
}

// EditorLauncher handles all editor-related operations
type EditorLauncher struct {
	DefaultEditor string
}

// NewEditorLauncher creates a new editor launcher
func NewEditorLauncher() *EditorLauncher {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vi"
	}
	return &EditorLauncher{
		DefaultEditor: editor,
	}
}

// OpenFile opens a file in the configured editor
func (e *EditorLauncher) OpenFile(filepath string) error {
	parts := strings.Fields(e.DefaultEditor)
	if len(parts) == 0 {
		return fmt.Errorf("no editor configured")
	}

	editorCmd := exec.Command(parts[0], append(parts[1:], filepath)...)
	editorCmd.Stdin = os.Stdin
	editorCmd.Stdout = os.Stdout
	editorCmd.Stderr = os.Stderr

	if err := editorCmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}

	return nil
}
