package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	"go.uber.org/zap"

	"github.com/marketdesk/marketdesk-cli/pkg/models"
	"github.com/marketdesk/marketdesk-cli/pkg/store"
)

// SettingsDataStore holds the record the form owns and the last stored copy
type SettingsDataStore struct {
	prefs    models.PreferenceSet
	baseline models.PreferenceSet // last loaded or saved, for the unsaved indicator
	loaded   bool
}

// SettingsUIComponents manages UI-specific components
type SettingsUIComponents struct {
	viewport     viewport.Model
	spinner      spinner.Model
	help         help.Model
	keys         settingsKeyMap
	exitConfirm  *ConfirmationModel
	resetConfirm *ConfirmationModel
}

// SettingsViewportManager manages viewport and layout
type SettingsViewportManager struct {
	width    int
	height   int
	rowLines []int // first content line of each focusable row
}

// SettingsFocus tracks which control has focus
type SettingsFocus struct {
	focusIndex int
}

// SettingsPersistence wires the form to its source and sink
type SettingsPersistence struct {
	source  store.Source
	sink    store.Sink
	timeout time.Duration
	logger  *zap.Logger
	saving  bool
}
