package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options controls where and how much the application logs.
type Options struct {
	Dir   string
	Level string
	// Now is used to pick the daily log file; defaults to time.Now.
	Now func() time.Time
}

// New builds the application logger. The terminal belongs to the TUI, so logs
// only ever go to <Dir>/marketdesk-YYYY-MM-DD.log. An empty Dir disables logging.
// The returned cleanup flushes the logger and closes the log file.
func New(opts Options) (*zap.Logger, func(), error) {
	if opts.Dir == "" {
		return zap.NewNop(), func() {}, nil
	}

	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, nil, err
	}

	if err := os.MkdirAll(opts.Dir, 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	logPath := FilePath(opts.Dir, now())
	sink, closeFile, err := zap.Open(logPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:          "time",
		LevelKey:         "level",
		NameKey:          "logger",
		MessageKey:       "msg",
		LineEnding:       zapcore.DefaultLineEnding,
		EncodeLevel:      bracketLevelEncoder,
		EncodeTime:       bracketTimeEncoder,
		EncodeDuration:   zapcore.StringDurationEncoder,
		EncodeName:       zapcore.FullNameEncoder,
		ConsoleSeparator: " ",
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		sink,
		level,
	)

	logger := zap.New(core)
	cleanup := func() {
		_ = logger.Sync()
		closeFile()
	}
	return logger, cleanup, nil
}

// FilePath returns the log file used for the given day.
func FilePath(dir string, day time.Time) string {
	return filepath.Join(dir, fmt.Sprintf("marketdesk-%s.log", day.Format("2006-01-02")))
}

// ParseLevel maps a config value to a zap level. Empty means info.
func ParseLevel(s string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "", "info":
		return zapcore.InfoLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("invalid log level: %s (must be: debug, info, warn, or error)", s)
	}
}

// [2006-01-02 15:04:05]
func bracketTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString("[" + t.Format("2006-01-02 15:04:05") + "]")
}

// [DEBUG]
func bracketLevelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString("[" + l.CapitalString() + "]")
}
