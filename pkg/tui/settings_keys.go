package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

type settingsKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Next   key.Binding
	Prev   key.Binding
	Toggle key.Binding
	Left   key.Binding
	Right  key.Binding
	Save   key.Binding
	Reset  key.Binding
	Exit   key.Binding
	Quit   key.Binding
	Scroll key.Binding
}

func newSettingsKeyMap() settingsKeyMap {
	return settingsKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "down")),
		Next:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous")),
		Toggle: key.NewBinding(key.WithKeys(" ", "space", "enter"), key.WithHelp("space", "toggle")),
		Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/→", "choose")),
		Right:  key.NewBinding(key.WithKeys("right", "l")),
		Save:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("^s", "save")),
		Reset:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "defaults")),
		Exit:   key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("esc", "exit")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("^c", "quit")),
		Scroll: key.NewBinding(key.WithKeys("pgup", "pgdown")),
	}
}

func (k settingsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Left, k.Save, k.Reset, k.Exit, k.Quit}
}

func (k settingsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Next, k.Prev},
		{k.Toggle, k.Left, k.Right},
		{k.Save, k.Reset, k.Exit, k.Quit},
	}
}
