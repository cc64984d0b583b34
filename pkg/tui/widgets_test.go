package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestToggleWidget(t *testing.T) {
	theme := ThemeFor(false)

	on := ToggleWidget{Enabled: true, Label: "الأصوات", Description: "تفعيل التنبيهات الصوتية"}.View(50, theme)
	assert.Contains(t, on, "━━●")
	assert.Contains(t, on, "الأصوات")
	assert.Contains(t, on, "تفعيل التنبيهات الصوتية")
	assert.NotContains(t, on, focusMarker)

	off := ToggleWidget{Label: "الأصوات", Focused: true}.View(50, theme)
	assert.Contains(t, off, "●━━")
	assert.Contains(t, off, focusMarker)
	assert.NotContains(t, off, "\n", "no description means a single line")

	for _, line := range strings.Split(on, "\n") {
		assert.Equal(t, 50, lipgloss.Width(line))
	}
}

func TestSelectWidget(t *testing.T) {
	w := SelectWidget{
		Label: "اللغة",
		Options: []SelectOption{
			{Value: "ar", Label: "العربية"},
			{Value: "en", Label: "English"},
		},
		Selected: "en",
	}
	view := w.View(60, ThemeFor(true))

	assert.Contains(t, view, "English (●)")
	assert.Contains(t, view, "العربية ( )")

	// The first option sits on the right
	options := strings.Split(view, "\n")[1]
	assert.Less(t, strings.Index(options, "English"), strings.Index(options, "العربية"))
}

func TestButtonWidget(t *testing.T) {
	theme := ThemeFor(false)

	b := ButtonWidget{Variant: ButtonPrimary, Icon: "💾", Label: "حفظ"}
	assert.Contains(t, b.View(theme), "حفظ 💾")

	b.Busy = "⣾"
	assert.Contains(t, b.View(theme), "حفظ ⣾")
	assert.NotContains(t, b.View(theme), "💾")

	b.Focused = true
	assert.Contains(t, b.View(theme), focusMarker)

	secondary := ButtonWidget{Variant: ButtonSecondary, Label: "إلغاء"}
	assert.Contains(t, secondary.View(theme), "إلغاء")
}

func TestAlignRight(t *testing.T) {
	assert.Equal(t, "   ab", alignRight("ab", 5))
	assert.Equal(t, "ab", alignRight("ab", 0))
}
