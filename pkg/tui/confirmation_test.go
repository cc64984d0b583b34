package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirmation_ConfirmAndCancel(t *testing.T) {
	tests := []struct {
		name      string
		key       tea.KeyMsg
		confirmed bool
		cancelled bool
	}{
		{"y confirms", keyRunes("y"), true, false},
		{"Y confirms", keyRunes("Y"), true, false},
		{"n cancels", keyRunes("n"), false, true},
		{"esc cancels", keyEsc, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var confirmed, cancelled bool
			c := NewConfirmation()
			c.ShowDialog("عنوان", "رسالة", "", false, 50, 8,
				func() tea.Cmd { confirmed = true; return nil },
				func() tea.Cmd { cancelled = true; return nil },
			)
			require.True(t, c.Active())

			c.Update(tt.key)
			assert.Equal(t, tt.confirmed, confirmed)
			assert.Equal(t, tt.cancelled, cancelled)
			assert.False(t, c.Active())
		})
	}
}

func TestConfirmation_OtherKeysKeepDialogOpen(t *testing.T) {
	c := NewConfirmation()
	c.ShowDialog("عنوان", "رسالة", "", true, 50, 8, nil, nil)

	assert.Nil(t, c.Update(keyRunes("x")))
	assert.True(t, c.Active())

	c.Hide()
	assert.False(t, c.Active())
	assert.Nil(t, c.Update(keyRunes("y")), "inactive dialogs ignore keys")
}

func TestConfirmation_View(t *testing.T) {
	c := NewConfirmation()
	assert.Empty(t, c.View())

	c.Show(ConfirmationConfig{
		Title:   "تأكيد الخروج",
		Message: "لديك تغييرات غير محفوظة.",
		Warning: "هل تريد الخروج دون حفظ؟",
		Details: []string{"الوضع الليلي"},
		Width:   60,
	}, nil, nil)

	view := c.View()
	assert.Contains(t, view, "تأكيد الخروج")
	assert.Contains(t, view, "هل تريد الخروج دون حفظ؟")
	assert.Contains(t, view, "الوضع الليلي")
	assert.Contains(t, view, "نعم")
	assert.Contains(t, view, "لا")
}
