package config

import (
	"fmt"
	"strings"

	"github.com/atlanticdynamic/greeter/internal/config/errz"
)

// LogFormat represents the logging output format
type LogFormat string

// LogLevel represents the logging verbosity level
type LogLevel string

// Constants for LogFormat
const (
	LogFormatText LogFormat = "txt"
	LogFormatJSON LogFormat = "json"
)

// Constants for LogLevel
const (
	LogLevelTrace LogLevel = "trace"
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// String returns the string representation of LogFormat
func (f LogFormat) String() string {
	return string(f)
}

// String returns the string representation of LogLevel
func (l LogLevel) String() string {
	return string(l)
}

// IsValid checks if the LogFormat is valid
func (f LogFormat) IsValid() bool {
	switch f {
	case LogFormatText, LogFormatJSON:
		return true
	default:
		return false
	}
}

// IsValid checks if the LogLevel is valid
func (l LogLevel) IsValid() bool {
	switch l {
	case LogLevelTrace, LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		return true
	default:
		return false
	}
}

// UnmarshalText accepts "text" as an alias for "txt", and is case-insensitive.
func (f *LogFormat) UnmarshalText(b []byte) error {
	format, err := LogFormatFromString(string(b))
	if err != nil {
		return err
	}
	*f = format
	return nil
}

// UnmarshalText accepts "warning" as an alias for "warn", and is case-insensitive.
func (l *LogLevel) UnmarshalText(b []byte) error {
	level, err := LogLevelFromString(string(b))
	if err != nil {
		return err
	}
	*l = level
	return nil
}

// LogFormatFromString converts a string to a LogFormat
func LogFormatFromString(format string) (LogFormat, error) {
	switch strings.ToLower(format) {
	case "json":
		return LogFormatJSON, nil
	case "text", "txt":
		return LogFormatText, nil
	default:
		return "", fmt.Errorf("%w: unknown log format: %s", errz.ErrInvalidValue, format)
	}
}

// LogLevelFromString converts a string to a LogLevel
func LogLevelFromString(level string) (LogLevel, error) {
	switch strings.ToLower(level) {
	case "trace":
		return LogLevelTrace, nil
	case "debug":
		return LogLevelDebug, nil
	case "info":
		return LogLevelInfo, nil
	case "warn", "warning":
		return LogLevelWarn, nil
	case "error":
		return LogLevelError, nil
	default:
		return "", fmt.Errorf("%w: unknown log level: %s", errz.ErrInvalidValue, level)
	}
}
