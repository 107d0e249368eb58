package observability

import (
	"io"
	"log/slog"
	"strings"

	"github.com/couchcryptid/state-trends-dashboard/internal/config"
	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"gopkg.in/natefinch/lumberjack.v2"
)

// NewLogger builds the service logger from LOG_LEVEL, LOG_FORMAT, and LOG_FILE
// and installs it as the slog default. When LOG_FILE is set, output goes to a
// size-rotated file instead of stdout.
func NewLogger(cfg *config.Config) *slog.Logger {
	if cfg.LogFile == "" {
		return sharedobs.NewLogger(cfg.LogLevel, cfg.LogFormat)
	}
	logger := slog.New(newHandler(&lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    64, // megabytes
		MaxBackups: 5,
		MaxAge:     14, // days
		Compress:   true,
	}, cfg.LogLevel, cfg.LogFormat))
	slog.SetDefault(logger)
	return logger
}

// newHandler mirrors the shared stdout handler for an arbitrary writer.
func newHandler(w io.Writer, level, format string) slog.Handler {
	opts := &slog.HandlerOptions{Level: levelFromString(level)}
	if strings.EqualFold(format, "text") {
		return slog.NewTextHandler(w, opts)
	}
	return slog.NewJSONHandler(w, opts)
}

// levelFromString accepts the same names as LOG_LEVEL on stdout. Unknown
// values fall back to info.
func levelFromString(s string) slog.Level {
	if strings.EqualFold(s, "warning") {
		s = "warn"
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
