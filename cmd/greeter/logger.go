package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/atlanticdynamic/greeter/internal/config"
	"github.com/atlanticdynamic/greeter/internal/logging"
	"github.com/atlanticdynamic/greeter/internal/logging/writers"
)

// newLogHandler builds the final log handler from cfg. A non-empty
// levelOverride wins over the configured level. The caller closes the
// returned io.Closer once nothing logs through the handler anymore.
func newLogHandler(cfg *config.Config, levelOverride string) (slog.Handler, io.Closer, error) {
	level := cfg.Logging.Level.String()
	if levelOverride != "" {
		level = levelOverride
	}

	writer, err := writers.CreateWriter(cfg.Logging.Output)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log output: %w", err)
	}

	return logging.SetupHandler(level, cfg.Logging.Format.String(), writer), writer, nil
}
