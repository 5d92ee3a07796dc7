// Package logging builds the slog handlers used across the greeter.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// Format names accepted by SetupHandler.
const (
	FormatText = "txt"
	FormatJSON = "json"
)

// levelTrace is accepted as a level name and logs at debug with the caller.
const levelTrace = "trace"

// SetupHandler picks the text or JSON handler based on format. Anything other
// than "json" gets the text handler. A nil writer means stderr.
func SetupHandler(logLevel, format string, writer io.Writer) slog.Handler {
	if strings.EqualFold(format, FormatJSON) {
		return SetupHandlerJSON(logLevel, writer)
	}
	return SetupHandlerText(logLevel, writer)
}

// SetupHandlerText returns a charmbracelet/log handler. Debug and trace add
// timestamps; trace also reports the caller.
func SetupHandlerText(logLevel string, writer io.Writer) slog.Handler {
	level, trace := parseLevel(logLevel)
	return log.NewWithOptions(orStderr(writer), log.Options{
		Level:           log.Level(level),
		ReportTimestamp: level <= slog.LevelDebug,
		ReportCaller:    trace,
	})
}

// SetupHandlerJSON returns a slog JSON handler. Trace adds the source location.
func SetupHandlerJSON(logLevel string, writer io.Writer) slog.Handler {
	level, trace := parseLevel(logLevel)
	return slog.NewJSONHandler(orStderr(writer), &slog.HandlerOptions{
		Level:     level,
		AddSource: trace,
	})
}

// parseLevel maps a level name to a slog level. Unknown names mean info.
func parseLevel(logLevel string) (slog.Level, bool) {
	switch strings.ToLower(logLevel) {
	case levelTrace:
		return slog.LevelDebug, true
	case "debug":
		return slog.LevelDebug, false
	case "warn", "warning":
		return slog.LevelWarn, false
	case "error":
		return slog.LevelError, false
	default:
		return slog.LevelInfo, false
	}
}

func orStderr(w io.Writer) io.Writer {
	if w == nil {
		return os.Stderr
	}
	return w
}
