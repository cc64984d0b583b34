package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/marketdesk/marketdesk-cli/pkg/labels"
)

// DefaultStatusDuration is how long a transient status stays on screen
const DefaultStatusDuration = 3 * time.Second

// AppOptions configures the application shell
type AppOptions struct {
	Form           SettingsFormOptions
	Version        string
	StatusDuration time.Duration
}

// App hosts the settings form with a header and a status bar
type App struct {
	form    *SettingsFormModel
	version string
	width   int
	height  int

	statusMsg      string
	statusIsError  bool
	statusSeq      int
	statusDuration time.Duration
}

func NewApp(opts AppOptions) *App {
	d := opts.StatusDuration
	if d <= 0 {
		d = DefaultStatusDuration
	}
	return &App{
		form:           NewSettingsFormModel(opts.Form),
		version:        opts.Version,
		statusDuration: d,
	}
}

// Form returns the hosted settings form
func (a *App) Form() *SettingsFormModel {
	return a.form
}

func (a *App) Init() tea.Cmd {
	return a.form.Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.form.SetSize(msg.Width, a.formHeight())
		return a, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}

	case StatusMsg:
		return a, a.setStatus(string(msg), false)

	case ErrorStatusMsg:
		return a, a.setStatus(string(msg), true)

	case clearStatusMsg:
		if msg.seq == a.statusSeq {
			a.statusMsg = ""
			a.statusIsError = false
		}
		return a, nil

	case FormExitMsg:
		return a, tea.Quit
	}

	_, cmd := a.form.Update(msg)
	return a, cmd
}

// setStatus shows a message and schedules its removal. A newer message
// keeps an older timer from clearing it.
func (a *App) setStatus(text string, isError bool) tea.Cmd {
	a.statusSeq++
	a.statusMsg = text
	a.statusIsError = isError

	seq := a.statusSeq
	return tea.Tick(a.statusDuration, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

func (a *App) formHeight() int {
	h := a.height - headerHeight - 1
	if h < 0 {
		return 0
	}
	return h
}

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return labels.Loading
	}

	header := renderHeader(a.width, labels.PanelTitle, a.version)
	content := lipgloss.JoinVertical(lipgloss.Top, header, a.form.View())

	statusStyle := lipgloss.NewStyle().
		Background(lipgloss.Color("62")).
		Foreground(lipgloss.Color("230")).
		Padding(0, 1)
	if a.statusIsError {
		statusStyle = statusStyle.Background(lipgloss.Color(ColorError))
	}

	statusBar := ""
	if a.statusMsg != "" {
		statusBar = alignRight(statusStyle.Render(a.statusMsg), a.width-1)
	}
	return lipgloss.JoinVertical(lipgloss.Top, content, statusBar)
}

// StatusMsg is a transient message for the status bar
type StatusMsg string

// ErrorStatusMsg is a transient error for the status bar
type ErrorStatusMsg string

type clearStatusMsg struct {
	seq int
}

// FormExitMsg asks the application to leave
type FormExitMsg struct{}

func exitCmd() tea.Msg {
	return FormExitMsg{}
}

func statusCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return StatusMsg(text)
	}
}

func errorStatusCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return ErrorStatusMsg(text)
	}
}
