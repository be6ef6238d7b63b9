package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Levels accepted by logger.log_level. Critical has no slog counterpart
// and is logged at error level.
const (
	LogLevelDebug    = "debug"
	LogLevelInfo     = "info"
	LogLevelWarning  = "warning"
	LogLevelError    = "error"
	LogLevelCritical = "critical"
)

// Destinations accepted by logger.log_type
const (
	LogTypeConsole = "console"
	LogTypeFile    = "file"
)

// LoggerSettings selects where the server and the CLI write their logs.
// The rotation fields only apply to the file destination.
type LoggerSettings struct {
	LogLevel   string `mapstructure:"log_level" validate:"required,oneof=debug info warning error critical"`
	LogType    string `mapstructure:"log_type" validate:"required,oneof=console file"`
	FilePath   string `mapstructure:"file_path"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
}

type rotationBound struct {
	name     string
	value    int
	min, max int
	unit     string
}

// Normalize lower-cases level and type, so HABIT_LOGGER_LOG_LEVEL=DEBUG
// is accepted like the lowercase form used in the yaml files.
func (s *LoggerSettings) Normalize() {
	s.LogLevel = strings.ToLower(strings.TrimSpace(s.LogLevel))
	s.LogType = strings.ToLower(strings.TrimSpace(s.LogType))
}

// WritesToFile reports whether logs go to a rotated file
func (s *LoggerSettings) WritesToFile() bool {
	return s.LogType == LogTypeFile
}

// Validate checks level and type, and the rotation limits of a file logger
func (s *LoggerSettings) Validate() error {
	if err := validator.New().Struct(s); err != nil {
		return fmt.Errorf("validation failed for LoggerSettings: %w", err)
	}
	if !s.WritesToFile() {
		return nil
	}

	if s.FilePath == "" {
		return fmt.Errorf("validation failed for LoggerSettings: file_path is required for the file logger")
	}
	for _, b := range []rotationBound{
		{"max_size", s.MaxSize, 1, 100, "MB"},
		{"max_backups", s.MaxBackups, 1, 10, "files"},
		{"max_age", s.MaxAge, 1, 365, "days"},
	} {
		if b.value < b.min || b.value > b.max {
			return fmt.Errorf("validation failed for LoggerSettings: %s must be between %d and %d %s, got %d",
				b.name, b.min, b.max, b.unit, b.value)
		}
	}
	return nil
}
