package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// Rows are laid out right to left: the focus marker sits on the right edge,
// followed by the label, with the control on the far left.
const (
	focusMarker   = "◂"
	noFocusMarker = " "
)

func marker(focused bool) string {
	if focused {
		return CursorStyle.Render(focusMarker)
	}
	return noFocusMarker
}

// alignRight right-aligns every line of s inside width
func alignRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Right).Render(s)
}

// ToggleWidget is a labelled on/off switch with a description underneath
type ToggleWidget struct {
	Enabled     bool
	Label       string
	Description string
	Focused     bool
}

func (w ToggleWidget) View(width int, theme Theme) string {
	var sw string
	if w.Enabled {
		sw = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent)).Bold(true).Render("[ ━━● ]")
	} else {
		sw = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDim)).Render("[ ●━━ ]")
	}

	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Text))
	if w.Focused {
		labelStyle = labelStyle.Foreground(lipgloss.Color(ColorActive)).Bold(true)
	}

	var b strings.Builder
	b.WriteString(alignRight(sw+"  "+labelStyle.Render(w.Label)+" "+marker(w.Focused), width))
	if w.Description != "" {
		b.WriteString("\n")
		descWidth := width - 4
		if descWidth < 10 {
			descWidth = 10
		}
		desc := wordwrap.String(w.Description, descWidth)
		b.WriteString(alignRight(DescriptionStyle.Render(desc)+"  ", width))
	}
	return b.String()
}

// SelectOption is one choice of a SelectWidget
type SelectOption struct {
	Value string
	Label string
}

// SelectWidget is a labelled single choice. The first option is drawn rightmost.
type SelectWidget struct {
	Label    string
	Options  []SelectOption
	Selected string
	Focused  bool
}

func (w SelectWidget) View(width int, theme Theme) string {
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Text))
	if w.Focused {
		labelStyle = labelStyle.Foreground(lipgloss.Color(ColorActive)).Bold(true)
	}

	chosen := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent)).Bold(true)
	other := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDim))

	opts := make([]string, 0, len(w.Options))
	for i := len(w.Options) - 1; i >= 0; i-- {
		o := w.Options[i]
		if o.Value == w.Selected {
			opts = append(opts, chosen.Render(o.Label+" (●)"))
		} else {
			opts = append(opts, other.Render(o.Label+" ( )"))
		}
	}

	var b strings.Builder
	b.WriteString(alignRight(labelStyle.Render(w.Label)+" "+marker(w.Focused), width))
	b.WriteString("\n")
	b.WriteString(alignRight(strings.Join(opts, "   ")+"  ", width))
	return b.String()
}

// ButtonVariant selects how a button is drawn
type ButtonVariant int

const (
	ButtonPrimary ButtonVariant = iota
	ButtonSecondary
)

// ButtonWidget is a single action. Busy replaces the icon, e.g. with a spinner frame.
type ButtonWidget struct {
	Variant ButtonVariant
	Icon    string
	Label   string
	Busy    string
	Focused bool
}

func (w ButtonWidget) View(theme Theme) string {
	style := lipgloss.NewStyle().Padding(0, 2)
	switch w.Variant {
	case ButtonPrimary:
		style = style.
			Foreground(lipgloss.Color(ColorWhite)).
			Background(lipgloss.Color(theme.Accent)).
			Bold(true)
	default:
		style = style.
			Foreground(lipgloss.Color(theme.Text)).
			Background(lipgloss.Color(ColorSelected))
	}
	if w.Focused {
		style = style.Underline(true)
	}

	icon := w.Icon
	if w.Busy != "" {
		icon = w.Busy
	}
	content := w.Label
	if icon != "" {
		content = w.Label + " " + icon
	}
	return style.Render(content) + " " + marker(w.Focused)
}
