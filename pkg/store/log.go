package store

import (
	"context"

	"go.uber.org/zap"

	"github.com/marketdesk/marketdesk-cli/pkg/models"
)

// LogSink writes saved records to the diagnostic log and keeps nothing.
// Load always reports that no record is stored.
type LogSink struct {
	logger *zap.Logger
}

func NewLogSink(logger *zap.Logger) *LogSink {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogSink{logger: logger}
}

func (s *LogSink) Name() string { return BackendLog }

func (s *LogSink) Close() error { return nil }

func (s *LogSink) Load(ctx context.Context) (models.PreferenceSet, error) {
	return models.DefaultPreferences(), ErrNotFound
}

func (s *LogSink) Persist(ctx context.Context, prefs models.PreferenceSet) error {
	s.logger.Info("saving preferences",
		zap.Bool(models.KeyDarkMode, prefs.DarkMode),
		zap.Bool(models.KeyNotifications, prefs.Notifications),
		zap.Bool(models.KeySound, prefs.Sound),
		zap.Bool(models.KeyAutoRefresh, prefs.AutoRefresh),
		zap.Stringer(models.KeyLanguage, prefs.Language),
		zap.Stringer(models.KeyChartType, prefs.ChartType),
	)
	return nil
}
