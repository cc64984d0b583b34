package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// runCmd executes cmd and any batched commands, returning every message produced
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func findMsg[T any](msgs []tea.Msg) (T, bool) {
	for _, msg := range msgs {
		if m, ok := msg.(T); ok {
			return m, true
		}
	}
	var zero T
	return zero, false
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keySpace    = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	keyDown     = tea.KeyMsg{Type: tea.KeyDown}
	keyUp       = tea.KeyMsg{Type: tea.KeyUp}
	keyTab      = tea.KeyMsg{Type: tea.KeyTab}
	keyShiftTab = tea.KeyMsg{Type: tea.KeyShiftTab}
	keyEnter    = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc      = tea.KeyMsg{Type: tea.KeyEsc}
	keyLeft     = tea.KeyMsg{Type: tea.KeyLeft}
	keyRight    = tea.KeyMsg{Type: tea.KeyRight}
	keyCtrlS    = tea.KeyMsg{Type: tea.KeyCtrlS}
	keyCtrlC    = tea.KeyMsg{Type: tea.KeyCtrlC}
)

// press sends keys to the form and returns the messages produced by the last one
func press(m *SettingsFormModel, keys ...tea.KeyMsg) []tea.Msg {
	var msgs []tea.Msg
	for _, k := range keys {
		_, cmd := m.Update(k)
		msgs = runCmd(cmd)
	}
	return msgs
}

// saveAndSettle runs a save to completion and feeds the outcome back to the form
func saveAndSettle(m *SettingsFormModel, save tea.Cmd) []tea.Msg {
	var out []tea.Msg
	for _, msg := range runCmd(save) {
		if saved, ok := msg.(preferencesSavedMsg); ok {
			_, cmd := m.Update(saved)
			out = append(out, runCmd(cmd)...)
		}
	}
	return out
}
