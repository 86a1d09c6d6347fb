package config

import (
	"fmt"
	"log/slog"

	"git.home.luguber.info/inful/assemble/internal/foundation/normalization"
)

// LogLevel enumerates supported logging levels.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

var logLevelNormalizer = normalization.NewNormalizer(map[string]LogLevel{
	"debug": LogLevelDebug,
	"info":  LogLevelInfo,
	"warn":  LogLevelWarn,
	"error": LogLevelError,
}, LogLevelInfo)

// LogFormat enumerates supported log output formats.
type LogFormat string

const (
	LogFormatJSON LogFormat = "json"
	LogFormatText LogFormat = "text"
)

var logFormatNormalizer = normalization.NewNormalizer(map[string]LogFormat{
	"json": LogFormatJSON,
	"text": LogFormatText,
}, LogFormatText)

// LoggingConfig selects log level and output format.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// NormalizedFormat returns the configured format with the text default.
func (l LoggingConfig) NormalizedFormat() LogFormat {
	return logFormatNormalizer.Normalize(l.Format)
}

// SlogLevel maps the configured level onto slog's.
func (l LoggingConfig) SlogLevel() (slog.Level, error) {
	if l.Level == "" {
		return slog.LevelInfo, nil
	}
	lvl, err := logLevelNormalizer.NormalizeWithError(l.Level)
	if err != nil {
		return slog.LevelInfo, fmt.Errorf("logging.level: %w", err)
	}
	switch lvl {
	case LogLevelDebug:
		return slog.LevelDebug, nil
	case LogLevelWarn:
		return slog.LevelWarn, nil
	case LogLevelError:
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, nil
	}
}
