package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/marketdesk/marketdesk-cli/pkg/labels"
	"github.com/marketdesk/marketdesk-cli/pkg/models"
	"github.com/marketdesk/marketdesk-cli/pkg/store"
)

// DefaultSaveTimeout bounds a single load or save
const DefaultSaveTimeout = 5 * time.Second

// Focusable rows, top to bottom
const (
	fieldDarkMode = iota
	fieldNotifications
	fieldSound
	fieldAutoRefresh
	fieldLanguage
	fieldChartType
	fieldSave
	totalFields
)

// SettingsFormOptions wires a form to its surroundings. A nil Sink logs the
// record instead of storing it; a nil Source starts from the defaults.
type SettingsFormOptions struct {
	Source  store.Source
	Sink    store.Sink
	Logger  *zap.Logger
	Timeout time.Duration
}

// SettingsFormModel is the preferences panel. It owns one record and is the
// only writer of it; every edit replaces the record with a new value.
type SettingsFormModel struct {
	SettingsDataStore
	SettingsUIComponents
	SettingsViewportManager
	SettingsFocus
	SettingsPersistence
}

type preferencesLoadedMsg struct {
	prefs models.PreferenceSet
	err   error
}

type preferencesSavedMsg struct {
	prefs models.PreferenceSet
	err   error
}

func NewSettingsFormModel(opts SettingsFormOptions) *SettingsFormModel {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultSaveTimeout
	}
	sink := opts.Sink
	if sink == nil {
		sink = store.NewLogSink(logger)
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWhite))

	defaults := models.DefaultPreferences()
	return &SettingsFormModel{
		SettingsDataStore: SettingsDataStore{
			prefs:    defaults,
			baseline: defaults,
			loaded:   opts.Source == nil,
		},
		SettingsUIComponents: SettingsUIComponents{
			viewport:     viewport.New(80, 20),
			spinner:      s,
			help:         help.New(),
			keys:         newSettingsKeyMap(),
			exitConfirm:  NewConfirmation(),
			resetConfirm: NewConfirmation(),
		},
		SettingsPersistence: SettingsPersistence{
			source:  opts.Source,
			sink:    sink,
			timeout: timeout,
			logger:  logger,
		},
	}
}

func (m *SettingsFormModel) Init() tea.Cmd {
	if m.source == nil {
		return nil
	}
	return m.loadPreferences()
}

func (m *SettingsFormModel) loadPreferences() tea.Cmd {
	src, timeout := m.source, m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		prefs, err := store.LoadOrDefault(ctx, src)
		return preferencesLoadedMsg{prefs: prefs, err: err}
	}
}

// Preferences returns the current record
func (m *SettingsFormModel) Preferences() models.PreferenceSet {
	return m.prefs
}

// Dirty reports whether the record differs from the last loaded or saved one
func (m *SettingsFormModel) Dirty() bool {
	return m.prefs != m.baseline
}

// Saving reports whether a save is in flight
func (m *SettingsFormModel) Saving() bool {
	return m.saving
}

// ToggleField flips one boolean preference
func (m *SettingsFormModel) ToggleField(f models.ToggleField) {
	m.prefs = models.Toggle(m.prefs, f)
}

// SetLanguage selects the language; values outside the set are ignored
func (m *SettingsFormModel) SetLanguage(l models.Language) {
	m.prefs = models.WithLanguage(m.prefs, l)
}

// SetChartType selects the chart type; values outside the set are ignored
func (m *SettingsFormModel) SetChartType(c models.ChartType) {
	m.prefs = models.WithChartType(m.prefs, c)
}

// Save hands a copy of the current record to the sink. The record itself is
// never touched; the outcome arrives as a preferencesSavedMsg. While a save
// is in flight further calls return nil.
func (m *SettingsFormModel) Save() tea.Cmd {
	if m.saving {
		return nil
	}
	m.saving = true

	prefs := m.prefs
	sink, timeout := m.sink, m.timeout
	m.logger.Debug("saving preferences", zap.String("fingerprint", prefs.Fingerprint()))

	persist := func() tea.Msg {
		err := store.PersistWithTimeout(sink, prefs, timeout)
		return preferencesSavedMsg{prefs: prefs, err: err}
	}
	return tea.Batch(m.spinner.Tick, persist)
}

func (m *SettingsFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case preferencesLoadedMsg:
		m.loaded = true
		m.prefs = msg.prefs
		m.baseline = msg.prefs
		if msg.err != nil {
			m.logger.Error("failed to load preferences", zap.Error(msg.err))
			return m, errorStatusCmd(fmt.Sprintf("%s: %v", labels.LoadFailed, msg.err))
		}
		m.logger.Debug("preferences loaded", zap.String("fingerprint", msg.prefs.Fingerprint()))
		return m, nil

	case preferencesSavedMsg:
		return m, m.handleSaved(msg)

	case spinner.TickMsg:
		if m.saving {
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		if m.exitConfirm.Active() {
			return m, m.exitConfirm.Update(msg)
		}
		if m.resetConfirm.Active() {
			return m, m.resetConfirm.Update(msg)
		}
		if !m.loaded {
			if key.Matches(msg, m.keys.Exit) {
				return m, exitCmd
			}
			return m, nil
		}
		return m, m.handleKey(msg)
	}

	return m, nil
}

func (m *SettingsFormModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Save):
		return m.Save()

	case key.Matches(msg, m.keys.Exit):
		return m.requestExit()

	case key.Matches(msg, m.keys.Reset):
		m.requestReset()
		return nil

	case key.Matches(msg, m.keys.Up):
		if m.focusIndex > 0 {
			m.focusIndex--
		}

	case key.Matches(msg, m.keys.Down):
		if m.focusIndex < totalFields-1 {
			m.focusIndex++
		}

	case key.Matches(msg, m.keys.Next):
		m.focusIndex = (m.focusIndex + 1) % totalFields

	case key.Matches(msg, m.keys.Prev):
		m.focusIndex = (m.focusIndex - 1 + totalFields) % totalFields

	case key.Matches(msg, m.keys.Toggle):
		return m.activate()

	// Options run right to left, so left moves to the next one
	case key.Matches(msg, m.keys.Left):
		m.cycle(1)

	case key.Matches(msg, m.keys.Right):
		m.cycle(-1)

	case key.Matches(msg, m.keys.Scroll):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return cmd
	}
	return nil
}

// activate performs the focused row's primary action
func (m *SettingsFormModel) activate() tea.Cmd {
	switch {
	case m.focusIndex < len(models.ToggleFields):
		m.ToggleField(models.ToggleFields[m.focusIndex])
	case m.focusIndex == fieldLanguage, m.focusIndex == fieldChartType:
		m.cycle(1)
	case m.focusIndex == fieldSave:
		return m.Save()
	}
	return nil
}

// cycle moves a focused select by delta, wrapping around
func (m *SettingsFormModel) cycle(delta int) {
	switch m.focusIndex {
	case fieldLanguage:
		i := indexOf(models.Languages, m.prefs.Language)
		m.SetLanguage(models.Languages[wrap(i+delta, len(models.Languages))])
	case fieldChartType:
		i := indexOf(models.ChartTypes, m.prefs.ChartType)
		m.SetChartType(models.ChartTypes[wrap(i+delta, len(models.ChartTypes))])
	}
}

func indexOf[T comparable](items []T, v T) int {
	for i, item := range items {
		if item == v {
			return i
		}
	}
	return 0
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}

func (m *SettingsFormModel) handleSaved(msg preferencesSavedMsg) tea.Cmd {
	m.saving = false
	if msg.err != nil {
		m.logger.Error("failed to save preferences", zap.Error(msg.err))
		return errorStatusCmd(fmt.Sprintf("%s: %v", labels.SaveFailed, msg.err))
	}

	m.baseline = msg.prefs
	m.logger.Info("preferences saved", zap.String("fingerprint", msg.prefs.Fingerprint()))
	return statusCmd("✓ " + labels.Saved)
}

func (m *SettingsFormModel) requestExit() tea.Cmd {
	if !m.Dirty() {
		return exitCmd
	}

	m.exitConfirm.ShowDialog(
		labels.ExitTitle,
		labels.ExitMessage,
		labels.ExitWarning,
		true,
		m.dialogWidth(),
		10,
		func() tea.Cmd {
			m.logger.Info("leaving with unsaved preferences")
			return exitCmd
		},
		nil,
	)
	return nil
}

func (m *SettingsFormModel) requestReset() {
	m.resetConfirm.ShowDialog(
		labels.ResetTitle,
		labels.ResetMessage,
		"",
		true,
		m.dialogWidth(),
		9,
		func() tea.Cmd {
			m.prefs = models.DefaultPreferences()
			return statusCmd(labels.Reset)
		},
		nil,
	)
}

func (m *SettingsFormModel) dialogWidth() int {
	w, _ := m.size()
	if w-4 > 70 {
		return 70
	}
	return w - 4
}

func (m *SettingsFormModel) size() (int, int) {
	w, h := m.width, m.height
	if w == 0 || h == 0 {
		return 80, 24
	}
	return w, h
}

func (m *SettingsFormModel) View() string {
	width, height := m.size()

	if m.exitConfirm.Active() {
		return ContentPaddingStyle.Render(m.exitConfirm.View())
	}
	if m.resetConfirm.Active() {
		return ContentPaddingStyle.Render(m.resetConfirm.View())
	}
	if !m.loaded {
		return ContentPaddingStyle.Render(alignRight(labels.Loading, width-2))
	}

	theme := ThemeFor(m.prefs.DarkMode)

	var content strings.Builder

	// Heading reads right to left: title on the right, rule to its left
	heading := labels.PanelTitle
	remainingWidth := width - 4 - lipgloss.Width(heading) - 5
	if remainingWidth < 0 {
		remainingWidth = 0
	}
	colonStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Border))
	content.WriteString(ContentPaddingStyle.Render(
		colonStyle.Render(strings.Repeat(":", remainingWidth)) + " " + HeaderStyle.Render(heading),
	))
	content.WriteString("\n\n")

	m.updateViewportContent(theme)
	content.WriteString(ContentPaddingStyle.Render(m.viewport.View()))

	var s strings.Builder
	pane := theme.BorderStyle().
		Width(width - 4).
		Height(height - 5).
		Render(content.String())
	s.WriteString(ContentPaddingStyle.Render(pane))

	helpContent := alignRight(m.help.ShortHelpView(m.keys.ShortHelp()), width-8)
	s.WriteString("\n")
	s.WriteString(ContentPaddingStyle.Render(HelpBorderStyle.Width(width - 4).Padding(0, 1).Render(helpContent)))

	return s.String()
}

func (m *SettingsFormModel) updateViewportContent(theme Theme) {
	width := m.viewport.Width
	var b strings.Builder
	rows := make([]int, totalFields)
	line := func() int { return strings.Count(b.String(), "\n") }

	for i, f := range models.ToggleFields {
		rows[i] = line()
		text := labels.ForToggle(f)
		b.WriteString(ToggleWidget{
			Enabled:     m.prefs.Bool(f),
			Label:       text.Label,
			Description: text.Description,
			Focused:     m.focusIndex == i,
		}.View(width, theme))
		b.WriteString("\n\n")
	}

	rows[fieldLanguage] = line()
	langOpts := make([]SelectOption, 0, len(models.Languages))
	for _, l := range models.Languages {
		langOpts = append(langOpts, SelectOption{Value: l.String(), Label: labels.LanguageName(l)})
	}
	b.WriteString(SelectWidget{
		Label:    labels.LanguageLabel,
		Options:  langOpts,
		Selected: m.prefs.Language.String(),
		Focused:  m.focusIndex == fieldLanguage,
	}.View(width, theme))
	b.WriteString("\n\n")

	rows[fieldChartType] = line()
	chartOpts := make([]SelectOption, 0, len(models.ChartTypes))
	for _, c := range models.ChartTypes {
		chartOpts = append(chartOpts, SelectOption{Value: c.String(), Label: labels.ChartTypeName(c)})
	}
	b.WriteString(SelectWidget{
		Label:    labels.ChartTypeLabel,
		Options:  chartOpts,
		Selected: m.prefs.ChartType.String(),
		Focused:  m.focusIndex == fieldChartType,
	}.View(width, theme))
	b.WriteString("\n\n")

	previewWidth := width - 4
	if previewWidth > 48 {
		previewWidth = 48
	}
	b.WriteString(alignRight(DescriptionStyle.Render(labels.PreviewLabel)+"  ", width))
	b.WriteString("\n")
	b.WriteString(alignRight(renderChartPreview(m.prefs.ChartType, previewWidth, 8, theme), width))
	b.WriteString("\n\n")

	rows[fieldSave] = line()
	button := ButtonWidget{
		Variant: ButtonPrimary,
		Icon:    "💾",
		Label:   labels.SaveButton,
		Focused: m.focusIndex == fieldSave,
	}
	if m.saving {
		button.Label = labels.Saving
		button.Busy = m.spinner.View()
	}
	footer := button.View(theme)
	if m.Dirty() {
		footer = WarningStyle.Render(labels.Unsaved) + "   " + footer
	}
	b.WriteString(alignRight(footer, width))
	b.WriteString("\n")

	m.rowLines = rows
	m.viewport.SetContent(b.String())
	m.ensureFocusVisible(line())
}

// ensureFocusVisible scrolls the viewport so the focused row is on screen
func (m *SettingsFormModel) ensureFocusVisible(totalLines int) {
	if len(m.rowLines) != totalFields || m.viewport.Height <= 0 {
		return
	}
	start := m.rowLines[m.focusIndex]
	end := totalLines
	if m.focusIndex+1 < totalFields {
		end = m.rowLines[m.focusIndex+1]
	}

	if start < m.viewport.YOffset || end-start > m.viewport.Height {
		m.viewport.SetYOffset(start)
	} else if end > m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(end - m.viewport.Height)
	}
}

func (m *SettingsFormModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	if width == 0 || height == 0 {
		return
	}

	m.viewport.Width = max(width-10, 20)
	m.viewport.Height = max(height-10, 5)
	m.help.Width = max(width-8, 0)
}
