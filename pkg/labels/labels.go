// Package labels holds the panel copy. The panel is always rendered in Arabic;
// the language preference only records a code and does not retranslate anything.
package labels

import (
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/marketdesk/marketdesk-cli/pkg/models"
)

// Panel-level copy.
const (
	PanelTitle     = "تخصيص الواجهة"
	LanguageLabel  = "اللغة"
	ChartTypeLabel = "نوع الرسم البياني"
	SaveButton     = "حفظ الإعدادات"
	Saving         = "جارٍ الحفظ..."
	Saved          = "تم حفظ الإعدادات"
	SaveFailed     = "تعذر حفظ الإعدادات"
	LoadFailed     = "تعذر تحميل الإعدادات"
	Unsaved        = "تغييرات غير محفوظة"
	Loading        = "جارٍ تحميل الإعدادات..."
	ResetTitle     = "استعادة الافتراضي"
	ResetMessage   = "سيتم استبدال الإعدادات الحالية بالقيم الافتراضية."
	ExitTitle      = "تأكيد الخروج"
	ExitMessage    = "لديك تغييرات غير محفوظة."
	ExitWarning    = "هل تريد الخروج دون حفظ؟"
	Reset          = "تمت استعادة القيم الافتراضية"
	PreviewLabel   = "معاينة"
)

// Toggle is the label and description shown for a boolean preference.
type Toggle struct {
	Label       string
	Description string
}

var toggles = map[models.ToggleField]Toggle{
	models.FieldDarkMode: {
		Label:       "الوضع الليلي",
		Description: "تفعيل المظهر الداكن للواجهة",
	},
	models.FieldNotifications: {
		Label:       "الإشعارات",
		Description: "تلقي إشعارات عن تحديثات الأسعار والصفقات",
	},
	models.FieldSound: {
		Label:       "الأصوات",
		Description: "تفعيل التنبيهات الصوتية",
	},
	models.FieldAutoRefresh: {
		Label:       "تحديث تلقائي",
		Description: "تحديث البيانات تلقائياً كل 5 ثواني",
	},
}

// ForToggle returns the copy for a boolean preference.
func ForToggle(f models.ToggleField) Toggle {
	if t, ok := toggles[f]; ok {
		return t
	}
	return Toggle{Label: f.String()}
}

var chartNames = map[models.ChartType]string{
	models.ChartCandlestick: "شموع يابانية",
	models.ChartLine:        "خط بياني",
	models.ChartArea:        "مساحة",
}

// ChartTypeName returns the option label for a chart type.
func ChartTypeName(c models.ChartType) string {
	if name, ok := chartNames[c]; ok {
		return name
	}
	return c.String()
}

// LanguageName returns the language's name written in that language,
// e.g. "العربية" for ar and "English" for en.
func LanguageName(l models.Language) string {
	tag, err := language.Parse(l.String())
	if err != nil {
		return l.String()
	}
	if name := display.Self.Name(tag); name != "" {
		return name
	}
	return l.String()
}

// FieldLabel returns the label for any preference key.
func FieldLabel(key string) string {
	switch key {
	case models.KeyLanguage:
		return LanguageLabel
	case models.KeyChartType:
		return ChartTypeLabel
	}
	f, err := models.ParseToggleField(key)
	if err != nil {
		return key
	}
	return ForToggle(f).Label
}

// ValueLabel returns the display form of a field value.
func ValueLabel(p models.PreferenceSet, key string) string {
	switch key {
	case models.KeyLanguage:
		return LanguageName(p.Language)
	case models.KeyChartType:
		return ChartTypeName(p.ChartType)
	}
	f, err := models.ParseToggleField(key)
	if err != nil {
		return ""
	}
	if p.Bool(f) {
		return "مفعّل"
	}
	return "معطّل"
}
