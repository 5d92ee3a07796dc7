package main

import (
	"context"
	"fmt"
	"io"

	"github.com/atlanticdynamic/greeter/internal/config"
	"github.com/atlanticdynamic/greeter/internal/server"
	"github.com/urfave/cli/v3"
)

var routesCmd = &cli.Command{
	Name:  "routes",
	Usage: "Print the route table",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    flagConfig,
			Aliases: []string{"c"},
			Usage:   "Path to TOML configuration file",
		},
	},
	Action: func(_ context.Context, cmd *cli.Command) error {
		if err := printRoutes(cmd.Root().Writer, cmd.String(flagConfig)); err != nil {
			return cli.Exit(err, 1)
		}
		return nil
	},
}

func printRoutes(w io.Writer, configPath string) error {
	cfg := config.NewDefault()
	if configPath != "" {
		loaded, err := config.NewConfig(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	table, err := server.NewRouteTable(cfg)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, table)
	return err
}
