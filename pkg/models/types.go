package models

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidLanguage  = errors.New("invalid language")
	ErrInvalidChartType = errors.New("invalid chart type")
	ErrUnknownField     = errors.New("unknown preference field")
)

// Language is the interface language preference code.
type Language string

const (
	LanguageArabic  Language = "ar"
	LanguageEnglish Language = "en"
)

// Languages lists the selectable languages in display order.
var Languages = []Language{LanguageArabic, LanguageEnglish}

// ParseLanguage converts a code into a Language, rejecting anything outside the set.
func ParseLanguage(s string) (Language, error) {
	l := Language(strings.ToLower(strings.TrimSpace(s)))
	if !l.Valid() {
		return "", fmt.Errorf("%w: %q (must be: ar or en)", ErrInvalidLanguage, s)
	}
	return l, nil
}

func (l Language) Valid() bool {
	switch l {
	case LanguageArabic, LanguageEnglish:
		return true
	}
	return false
}

func (l Language) String() string {
	return string(l)
}

func (l Language) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLanguage, string(l))
	}
	return []byte(l), nil
}

func (l *Language) UnmarshalText(text []byte) error {
	parsed, err := ParseLanguage(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// ChartType is the preferred chart rendering mode.
type ChartType string

const (
	ChartCandlestick ChartType = "candlestick"
	ChartLine        ChartType = "line"
	ChartArea        ChartType = "area"
)

// ChartTypes lists the selectable chart types in display order.
var ChartTypes = []ChartType{ChartCandlestick, ChartLine, ChartArea}

// ParseChartType converts a name into a ChartType, rejecting anything outside the set.
func ParseChartType(s string) (ChartType, error) {
	c := ChartType(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q (must be: candlestick, line, or area)", ErrInvalidChartType, s)
	}
	return c, nil
}

func (c ChartType) Valid() bool {
	switch c {
	case ChartCandlestick, ChartLine, ChartArea:
		return true
	}
	return false
}

func (c ChartType) String() string {
	return string(c)
}

func (c ChartType) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidChartType, string(c))
	}
	return []byte(c), nil
}

func (c *ChartType) UnmarshalText(text []byte) error {
	parsed, err := ParseChartType(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ToggleField names one of the boolean preferences.
type ToggleField int

const (
	FieldDarkMode ToggleField = iota
	FieldNotifications
	FieldSound
	FieldAutoRefresh
)

// ToggleFields lists the boolean preferences in panel order.
var ToggleFields = []ToggleField{FieldDarkMode, FieldNotifications, FieldSound, FieldAutoRefresh}

// Field keys as they appear in files and on the command line.
const (
	KeyDarkMode      = "darkMode"
	KeyNotifications = "notifications"
	KeySound         = "sound"
	KeyAutoRefresh   = "autoRefresh"
	KeyLanguage      = "language"
	KeyChartType     = "chartType"
)

// FieldKeys lists every preference key in panel order.
var FieldKeys = []string{KeyDarkMode, KeyNotifications, KeySound, KeyAutoRefresh, KeyLanguage, KeyChartType}

func (f ToggleField) Key() string {
	switch f {
	case FieldDarkMode:
		return KeyDarkMode
	case FieldNotifications:
		return KeyNotifications
	case FieldSound:
		return KeySound
	case FieldAutoRefresh:
		return KeyAutoRefresh
	}
	return ""
}

func (f ToggleField) String() string {
	if k := f.Key(); k != "" {
		return k
	}
	return fmt.Sprintf("ToggleField(%d)", int(f))
}

// ParseToggleField resolves a key (case-insensitive, dashes and underscores ignored).
func ParseToggleField(s string) (ToggleField, error) {
	switch normalizeKey(s) {
	case "darkmode":
		return FieldDarkMode, nil
	case "notifications":
		return FieldNotifications, nil
	case "sound":
		return FieldSound, nil
	case "autorefresh":
		return FieldAutoRefresh, nil
	}
	return 0, fmt.Errorf("%w: %q (must be: darkMode, notifications, sound, or autoRefresh)", ErrUnknownField, s)
}

func normalizeKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "-", "")
	return strings.ReplaceAll(s, "_", "")
}

// CanonicalKey resolves any accepted spelling of a field to its file key.
func CanonicalKey(s string) (string, error) {
	switch normalizeKey(s) {
	case "language", "lang":
		return KeyLanguage, nil
	case "charttype", "chart":
		return KeyChartType, nil
	}
	f, err := ParseToggleField(s)
	if err != nil {
		return "", err
	}
	return f.Key(), nil
}
