package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/atlanticdynamic/greeter/internal/config"
	"github.com/atlanticdynamic/greeter/internal/logging"
	"github.com/atlanticdynamic/greeter/internal/server"
	"github.com/robbyt/go-loglater"
	"github.com/urfave/cli/v3"
)

const (
	flagConfig   = "config"
	flagPort     = "port"
	flagLogLevel = "log-level"
)

// serveFlags is shared by the root command and the serve subcommand, so
// running the binary with no arguments serves with defaults.
func serveFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    flagConfig,
			Usage:   "Path to TOML configuration file",
			Aliases: []string{"c"},
		},
		&cli.IntFlag{
			Name:    flagPort,
			Usage:   "TCP port to listen on, overrides the config file",
			Aliases: []string{"p"},
			Value:   config.DefaultPort,
		},
		&cli.StringFlag{
			Name:  flagLogLevel,
			Usage: "Log level (trace, debug, info, warn, error), overrides the config file",
		},
	}
}

func newServeCmd() *cli.Command {
	return &cli.Command{
		Name:   "serve",
		Usage:  "Start the greeter server (default)",
		Flags:  serveFlags(),
		Action: serveAction,
	}
}

type serveOptions struct {
	configPath string
	port       int
	portSet    bool
	logLevel   string
}

func serveAction(ctx context.Context, cmd *cli.Command) error {
	opts := serveOptions{
		configPath: cmd.String(flagConfig),
		port:       cmd.Int(flagPort),
		portSet:    cmd.IsSet(flagPort),
		logLevel:   cmd.String(flagLogLevel),
	}

	if err := runServe(ctx, opts, cmd.Root().Writer); err != nil {
		return cli.Exit(fmt.Errorf("server failed: %w", err), 1)
	}
	return nil
}

// runServe loads the config, sets up logging, and runs the server. Records
// logged before the final handler exists are held and replayed into it.
func runServe(ctx context.Context, opts serveOptions, stdout io.Writer) (retErr error) {
	if opts.logLevel != "" {
		if _, err := config.LogLevelFromString(opts.logLevel); err != nil {
			return fmt.Errorf("invalid --%s: %w", flagLogLevel, err)
		}
	}

	bootLogs := loglater.NewLogCollector(nil)
	bootLogger := slog.New(bootLogs)

	cfg, err := loadServeConfig(opts, bootLogger)
	if err != nil {
		// no config means no configured output; send what we have to stderr
		if playErr := bootLogs.PlayLogs(logging.SetupHandlerText(opts.logLevel, nil)); playErr != nil {
			return fmt.Errorf("%w (replaying boot logs: %w)", err, playErr)
		}
		return err
	}

	handler, logOutput, err := newLogHandler(cfg, opts.logLevel)
	if err != nil {
		return err
	}
	defer func() {
		if err := logOutput.Close(); err != nil && retErr == nil {
			retErr = fmt.Errorf("failed to close log output: %w", err)
		}
	}()
	if err := bootLogs.PlayLogs(handler); err != nil {
		return fmt.Errorf("failed to replay boot logs: %w", err)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	if err := server.Run(ctx, logger, cfg, stdout); err != nil {
		return err
	}

	logger.Info("Server shutdown complete")
	return nil
}

func loadServeConfig(opts serveOptions, logger *slog.Logger) (*config.Config, error) {
	cfg := config.NewDefault()

	if opts.configPath != "" {
		logger.Info("Loading config file", "path", opts.configPath)
		loaded, err := config.NewConfig(opts.configPath)
		if err != nil {
			logger.Error("Config file rejected", "path", opts.configPath, "error", err)
			return nil, err
		}
		cfg = loaded
	}

	if opts.portSet {
		logger.Debug("Port set on command line", "port", opts.port, "previous", cfg.Port)
		cfg = cfg.WithPort(opts.port)
	}

	if err := cfg.Validate(); err != nil {
		logger.Error("Config is invalid", "error", err)
		return nil, fmt.Errorf("%w: %w", config.ErrFailedToValidateConfig, err)
	}

	logger.Debug("Config loaded", "port", cfg.Port, "log_level", cfg.Logging.Level.String())
	return cfg, nil
}
