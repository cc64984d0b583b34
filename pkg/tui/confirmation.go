package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// ConfirmationConfig holds the configuration for a confirmation prompt
type ConfirmationConfig struct {
	Title       string   // Title for the dialog (optional)
	Message     string   // Main confirmation message
	Warning     string   // Optional warning text (shown in orange)
	Details     []string // Optional detail lines
	Destructive bool     // If true, Yes is red, No is green
	YesLabel    string   // Custom label for Yes (default: "نعم")
	NoLabel     string   // Custom label for No (default: "لا")
	Width       int
	Height      int
}

// ConfirmationModel handles confirmation prompts
type ConfirmationModel struct {
	active    bool
	config    ConfirmationConfig
	onConfirm func() tea.Cmd
	onCancel  func() tea.Cmd
}

// NewConfirmation creates a new confirmation model
func NewConfirmation() *ConfirmationModel {
	return &ConfirmationModel{}
}

// Show activates the confirmation with the given configuration
func (m *ConfirmationModel) Show(config ConfirmationConfig, onConfirm, onCancel func() tea.Cmd) {
	m.active = true
	m.config = config
	m.onConfirm = onConfirm
	m.onCancel = onCancel

	if m.config.YesLabel == "" {
		m.config.YesLabel = "نعم"
	}
	if m.config.NoLabel == "" {
		m.config.NoLabel = "لا"
	}
}

// ShowDialog is a shorthand for Show
func (m *ConfirmationModel) ShowDialog(title, message, warning string, destructive bool, width, height int, onConfirm, onCancel func() tea.Cmd) {
	m.Show(ConfirmationConfig{
		Title:       title,
		Message:     message,
		Warning:     warning,
		Destructive: destructive,
		Width:       width,
		Height:      height,
	}, onConfirm, onCancel)
}

// Hide deactivates the confirmation
func (m *ConfirmationModel) Hide() {
	m.active = false
}

// Active returns whether the confirmation is currently shown
func (m *ConfirmationModel) Active() bool {
	return m.active
}

// Update handles key events for the confirmation
func (m *ConfirmationModel) Update(msg tea.KeyMsg) tea.Cmd {
	if !m.active {
		return nil
	}

	switch msg.String() {
	case "y", "Y":
		m.active = false
		if m.onConfirm != nil {
			return m.onConfirm()
		}
		return nil

	case "n", "N", "esc":
		m.active = false
		if m.onCancel != nil {
			return m.onCancel()
		}
		return nil
	}

	return nil
}

// View renders the dialog, right aligned for Arabic text
func (m *ConfirmationModel) View() string {
	if !m.active {
		return ""
	}

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorActive)).
		Padding(0, 1)

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorWarning))

	detailStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorNormal))

	width := m.config.Width
	if width <= 0 {
		width = 60
	}
	height := m.config.Height
	if height <= 0 {
		height = 10
	}
	contentWidth := width - 4
	if contentWidth < 10 {
		contentWidth = 10
	}

	var b strings.Builder

	if m.config.Title != "" {
		b.WriteString(alignRight(headerStyle.Render(m.config.Title), contentWidth))
		b.WriteString("\n\n")
	}

	if m.config.Message != "" {
		b.WriteString(alignRight(wordwrap.String(m.config.Message, contentWidth), contentWidth))
		b.WriteString("\n")
	}

	if m.config.Warning != "" {
		b.WriteString("\n")
		b.WriteString(alignRight(WarningStyle.Render(wordwrap.String(m.config.Warning, contentWidth)), contentWidth))
		b.WriteString("\n")
	}

	if len(m.config.Details) > 0 {
		b.WriteString("\n")
		for _, detail := range m.config.Details {
			b.WriteString(alignRight(detailStyle.Render(detail+" •"), contentWidth))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	options := formatHelpText([]string{
		"y " + m.config.YesLabel,
		"n " + m.config.NoLabel,
	})
	b.WriteString(lipgloss.NewStyle().
		Width(contentWidth).
		Align(lipgloss.Center).
		Render(formatConfirmOptions(m.config.Destructive) + "   " + options))

	return borderStyle.
		Width(width).
		Height(height).
		Render(b.String())
}
