package models

import (
	"fmt"
	"strconv"

	"github.com/cespare/xxhash"
)

// PreferenceSet is the record of user-configurable panel preferences.
// It is a plain value: edits return a new record and never touch the receiver.
type PreferenceSet struct {
	DarkMode      bool      `yaml:"darkMode" json:"darkMode"`
	Notifications bool      `yaml:"notifications" json:"notifications"`
	Sound         bool      `yaml:"sound" json:"sound"`
	AutoRefresh   bool      `yaml:"autoRefresh" json:"autoRefresh"`
	Language      Language  `yaml:"language" json:"language"`
	ChartType     ChartType `yaml:"chartType" json:"chartType"`
}

// DefaultPreferences returns the record a fresh panel starts from.
func DefaultPreferences() PreferenceSet {
	return PreferenceSet{
		DarkMode:      false,
		Notifications: true,
		Sound:         true,
		AutoRefresh:   true,
		Language:      LanguageArabic,
		ChartType:     ChartCandlestick,
	}
}

// Bool reports the value of a boolean field.
func (p PreferenceSet) Bool(f ToggleField) bool {
	switch f {
	case FieldDarkMode:
		return p.DarkMode
	case FieldNotifications:
		return p.Notifications
	case FieldSound:
		return p.Sound
	case FieldAutoRefresh:
		return p.AutoRefresh
	}
	return false
}

// Toggle returns p with field f flipped.
func Toggle(p PreferenceSet, f ToggleField) PreferenceSet {
	switch f {
	case FieldDarkMode:
		p.DarkMode = !p.DarkMode
	case FieldNotifications:
		p.Notifications = !p.Notifications
	case FieldSound:
		p.Sound = !p.Sound
	case FieldAutoRefresh:
		p.AutoRefresh = !p.AutoRefresh
	}
	return p
}

// WithLanguage returns p with its language replaced. Values outside the set are ignored.
func WithLanguage(p PreferenceSet, l Language) PreferenceSet {
	if !l.Valid() {
		return p
	}
	p.Language = l
	return p
}

// WithChartType returns p with its chart type replaced. Values outside the set are ignored.
func WithChartType(p PreferenceSet, c ChartType) PreferenceSet {
	if !c.Valid() {
		return p
	}
	p.ChartType = c
	return p
}

// WithBool returns p with field f set to v.
func WithBool(p PreferenceSet, f ToggleField, v bool) PreferenceSet {
	if p.Bool(f) == v {
		return p
	}
	return Toggle(p, f)
}

// Apply sets a field from its string key and value, as typed on the command line.
// On error the original record is returned.
func Apply(p PreferenceSet, key, value string) (PreferenceSet, error) {
	switch normalizeKey(key) {
	case "language", "lang":
		l, err := ParseLanguage(value)
		if err != nil {
			return p, err
		}
		return WithLanguage(p, l), nil
	case "charttype", "chart":
		c, err := ParseChartType(value)
		if err != nil {
			return p, err
		}
		return WithChartType(p, c), nil
	}

	f, err := ParseToggleField(key)
	if err != nil {
		return p, err
	}
	v, err := strconv.ParseBool(value)
	if err != nil {
		return p, fmt.Errorf("invalid value %q for %s: expected true or false", value, f.Key())
	}
	return WithBool(p, f, v), nil
}

// Get returns the string form of a field, keyed the same way as Apply.
func (p PreferenceSet) Get(key string) (string, error) {
	switch normalizeKey(key) {
	case "language", "lang":
		return p.Language.String(), nil
	case "charttype", "chart":
		return p.ChartType.String(), nil
	}
	f, err := ParseToggleField(key)
	if err != nil {
		return "", err
	}
	return strconv.FormatBool(p.Bool(f)), nil
}

// Valid reports whether both enum fields hold values from their sets.
func (p PreferenceSet) Valid() bool {
	return p.Language.Valid() && p.ChartType.Valid()
}

// Fingerprint is a stable hash of the record, used to detect changes.
func (p PreferenceSet) Fingerprint() string {
	canonical := fmt.Sprintf("%t|%t|%t|%t|%s|%s",
		p.DarkMode, p.Notifications, p.Sound, p.AutoRefresh, p.Language, p.ChartType)
	return fmt.Sprintf("%016x", xxhash.Sum64([]byte(canonical)))
}
