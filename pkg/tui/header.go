package tui

import (
	"github.com/charmbracelet/lipgloss"
)

const headerHeight = 2

// renderHeader draws the brand on the left and the title on the right
func renderHeader(width int, title, version string) string {
	logoStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true)

	versionStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDim))

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true)

	logo := logoStyle.Render("▲ marketdesk")
	if version != "" {
		logo += " " + versionStyle.Render(version)
	}

	contentWidth := width - 2
	gap := contentWidth - lipgloss.Width(logo) - lipgloss.Width(title)
	if gap < 1 {
		gap = 1
	}

	line := lipgloss.JoinHorizontal(
		lipgloss.Top,
		logo,
		lipgloss.NewStyle().Width(gap).Render(""),
		titleStyle.Render(title),
	)

	return lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1).
		Width(width).
		Render(line) + "\n"
}
