package testhelpers

import (
	"github.com/marketdesk/marketdesk-cli/pkg/models"
)

// PreferenceBuilder builds records for tests, starting from the defaults
type PreferenceBuilder struct {
	prefs models.PreferenceSet
}

// NewPreferenceBuilder creates a builder holding the default record
func NewPreferenceBuilder() *PreferenceBuilder {
	return &PreferenceBuilder{prefs: models.DefaultPreferences()}
}

func (b *PreferenceBuilder) WithDarkMode(v bool) *PreferenceBuilder {
	b.prefs = models.WithBool(b.prefs, models.FieldDarkMode, v)
	return b
}

func (b *PreferenceBuilder) WithNotifications(v bool) *PreferenceBuilder {
	b.prefs = models.WithBool(b.prefs, models.FieldNotifications, v)
	return b
}

func (b *PreferenceBuilder) WithSound(v bool) *PreferenceBuilder {
	b.prefs = models.WithBool(b.prefs, models.FieldSound, v)
	return b
}

func (b *PreferenceBuilder) WithAutoRefresh(v bool) *PreferenceBuilder {
	b.prefs = models.WithBool(b.prefs, models.FieldAutoRefresh, v)
	return b
}

func (b *PreferenceBuilder) WithLanguage(l models.Language) *PreferenceBuilder {
	b.prefs = models.WithLanguage(b.prefs, l)
	return b
}

func (b *PreferenceBuilder) WithChartType(c models.ChartType) *PreferenceBuilder {
	b.prefs = models.WithChartType(b.prefs, c)
	return b
}

// Build returns the record
func (b *PreferenceBuilder) Build() models.PreferenceSet {
	return b.prefs
}
