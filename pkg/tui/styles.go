package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color constants
const (
	ColorActive   = "170" // Purple/magenta for active elements
	ColorInactive = "240" // Gray for inactive elements
	ColorSelected = "236" // Dark gray for background selection
	ColorNormal   = "245" // Light gray for normal text
	ColorDim      = "241" // Dimmer gray
	ColorVeryDim  = "242" // Even dimmer gray
	ColorWarning  = "214" // Orange/yellow for warnings
	ColorDanger   = "196" // Red for dangerous actions
	ColorSuccess  = "28"  // Green for success
	ColorWhite    = "255" // White
	ColorDark     = "235" // Dark for contrast
	ColorBorder   = "243" // Border gray
	ColorPrimary  = "33"  // Blue for primary actions
	ColorError    = "196" // Red for errors (same as danger)
	ColorRise     = "42"  // Green candle
	ColorFall     = "203" // Red candle
)

// Common styles
var (
	ActiveBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(ColorActive))

	InactiveBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(ColorInactive))

	SelectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorActive)).
			Background(lipgloss.Color(ColorSelected)).
			Bold(true)

	NormalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorNormal))

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorActive))

	ContentPaddingStyle = lipgloss.NewStyle().
				PaddingLeft(1).
				PaddingRight(1)

	DescriptionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorDim))

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorError))

	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorWarning))

	CursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorActive)).
			Bold(true)

	HelpBorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorInactive))

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorNormal)).
			Bold(true)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDim))

	helpSepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorVeryDim))
)

// Theme is the palette the panel is drawn with. It follows the dark mode preference.
type Theme struct {
	Accent     string
	Border     string
	Text       string
	Background string
}

// ThemeFor picks the panel palette
func ThemeFor(darkMode bool) Theme {
	if darkMode {
		return Theme{
			Accent:     ColorActive,
			Border:     ColorActive,
			Text:       ColorWhite,
			Background: ColorDark,
		}
	}
	return Theme{
		Accent: ColorPrimary,
		Border: ColorBorder,
		Text:   ColorNormal,
	}
}

// BorderStyle is the panel border in this theme
func (t Theme) BorderStyle() lipgloss.Style {
	s := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(t.Border))
	if t.Background != "" {
		s = s.BorderBackground(lipgloss.Color(t.Background))
	}
	return s
}

// formatHelpText joins "key description" items into one help line
func formatHelpText(items []string) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		k, desc, found := strings.Cut(item, " ")
		if !found {
			parts = append(parts, helpKeyStyle.Render(item))
			continue
		}
		parts = append(parts, helpKeyStyle.Render(k)+" "+helpDescStyle.Render(desc))
	}
	return strings.Join(parts, helpSepStyle.Render(" • "))
}

// formatConfirmOptions renders the yes/no key hints. A destructive
// confirmation shows yes in red and no in green.
func formatConfirmOptions(destructive bool) string {
	yesColor, noColor := ColorSuccess, ColorDim
	if destructive {
		yesColor, noColor = ColorDanger, ColorSuccess
	}
	yes := lipgloss.NewStyle().Foreground(lipgloss.Color(yesColor)).Bold(true).Render("[y]")
	no := lipgloss.NewStyle().Foreground(lipgloss.Color(noColor)).Bold(true).Render("[n]")
	return yes + " " + no
}
