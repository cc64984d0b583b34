package testhelpers

import (
	"errors"

	"github.com/marketdesk/marketdesk-cli/pkg/models"
)

// ErrSinkUnavailable is what FailingSink returns by default
var ErrSinkUnavailable = errors.New("sink unavailable")

// DarkEnglishLine is a record with every field moved off its default
func DarkEnglishLine() models.PreferenceSet {
	return NewPreferenceBuilder().
		WithDarkMode(true).
		WithNotifications(false).
		WithSound(false).
		WithAutoRefresh(false).
		WithLanguage(models.LanguageEnglish).
		WithChartType(models.ChartLine).
		Build()
}

// AllRecords returns every combination of the six fields
func AllRecords() []models.PreferenceSet {
	var out []models.PreferenceSet
	for mask := 0; mask < 16; mask++ {
		for _, l := range models.Languages {
			for _, c := range models.ChartTypes {
				out = append(out, NewPreferenceBuilder().
					WithDarkMode(mask&1 != 0).
					WithNotifications(mask&2 != 0).
					WithSound(mask&4 != 0).
					WithAutoRefresh(mask&8 != 0).
					WithLanguage(l).
					WithChartType(c).
					Build())
			}
		}
	}
	return out
}
