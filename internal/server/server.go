// Package server assembles the greeter service from its parts and runs it
// under a supervisor.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/atlanticdynamic/greeter/internal/config"
	"github.com/atlanticdynamic/greeter/internal/server/apps/greeter"
	"github.com/atlanticdynamic/greeter/internal/server/listener"
	"github.com/atlanticdynamic/greeter/internal/server/routing"
	"github.com/atlanticdynamic/greeter/internal/server/routing/middleware/logger"
	"github.com/robbyt/go-supervisor/supervisor"
)

const (
	// AppID names the greeting app in the route table.
	AppID = "greeter"

	// GreetingPath is the only path that answers with the greeting.
	GreetingPath = "/"

	startupMessageFormat = "Node.js Server 正在運作中：http://localhost:%d"
)

// StartupMessage is the line printed to stdout once the port is bound.
func StartupMessage(port int) string {
	return fmt.Sprintf(startupMessageFormat, port)
}

// NewRouteTable builds the route table for cfg: GET / answered by the greeting
// app, everything else left to the not-found fallback.
func NewRouteTable(cfg *config.Config) (*routing.Table, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	app, err := greeter.New(AppID, cfg.Greeting)
	if err != nil {
		return nil, fmt.Errorf("failed to create greeter app: %w", err)
	}

	return routing.NewTable(routing.NewAppRoute(http.MethodGet, GreetingPath, app))
}

// ListenerConfig extracts the listener settings from cfg.
func ListenerConfig(cfg *config.Config) listener.Config {
	return listener.Config{
		Port:         cfg.Port,
		ReadTimeout:  cfg.HTTP.ReadTimeout.AsDuration(),
		WriteTimeout: cfg.HTTP.WriteTimeout.AsDuration(),
		IdleTimeout:  cfg.HTTP.IdleTimeout.AsDuration(),
	}
}

// Run binds the configured port, prints the startup line to stdout, and
// serves until ctx is cancelled or the process receives a shutdown signal.
// A bind failure is returned before anything is printed or supervised.
func Run(ctx context.Context, log *slog.Logger, cfg *config.Config, stdout io.Writer) error {
	if log == nil {
		log = slog.Default()
	}
	if cfg == nil {
		return errors.New("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	table, err := NewRouteTable(cfg)
	if err != nil {
		return err
	}
	handler := logger.New(log.Handler()).Wrap(table.WithLogger(log))

	announce := func(port int) {
		if _, err := fmt.Fprintln(stdout, StartupMessage(port)); err != nil {
			log.Warn("Failed to write startup message", "error", err)
		}
	}

	ln, err := listener.Start(
		ListenerConfig(cfg),
		handler,
		listener.WithLogHandler(log.Handler()),
		listener.WithOnBound(announce),
	)
	if err != nil {
		return err
	}
	log.Debug("Listener bound", "port", ln.Port(), "routes", table.Len())

	super, err := supervisor.New(
		supervisor.WithContext(ctx),
		supervisor.WithLogHandler(log.Handler()),
		supervisor.WithRunnables(ln),
	)
	if err != nil {
		ln.Stop()
		return fmt.Errorf("failed to create supervisor: %w", err)
	}

	if err := super.Run(); err != nil {
		return fmt.Errorf("supervisor failed: %w", err)
	}
	return nil
}
