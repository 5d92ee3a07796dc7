package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/atlanticdynamic/greeter/internal/config"
	"github.com/atlanticdynamic/greeter/internal/fancy"
	"github.com/urfave/cli/v3"
)

var validateCmd = &cli.Command{
	Name:      "validate",
	Aliases:   []string{"lint"},
	Usage:     "Validate a configuration file",
	ArgsUsage: "<file.toml>",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:    "tree",
			Aliases: []string{"t"},
			Usage:   "Show detailed tree view of the validated configuration",
		},
		&cli.StringFlag{
			Name:    flagConfig,
			Aliases: []string{"c"},
			Usage:   "Path to the configuration file",
		},
	},
	Suggest: true,
	Action:  validateAction,
}

func validateAction(_ context.Context, cmd *cli.Command) error {
	configPath := cmd.String(flagConfig)
	if configPath == "" {
		if cmd.Args().Len() < 1 {
			return cli.Exit(
				"config file path required (use the --config flag, or provide the config file as positional argument)",
				1,
			)
		}
		configPath = cmd.Args().Get(0)
	}

	if err := validateFile(cmd.Root().Writer, configPath, cmd.Bool("tree")); err != nil {
		return cli.Exit(err, 1)
	}
	return nil
}

func validateFile(w io.Writer, configPath string, treeView bool) error {
	cfg, err := config.NewConfig(configPath)
	if err != nil {
		return fmt.Errorf("%s %s: %w", fancy.ErrorStyle.Render("invalid"), configPath, err)
	}

	fmt.Fprintf(w, "Configuration file %s is %s\n", configPath, fancy.SuccessStyle.Render("valid"))
	if treeView {
		fmt.Fprintln(w, cfg)
		return nil
	}

	fmt.Fprintln(w, renderConfigSummary(configPath, cfg))
	return nil
}

// renderConfigSummary creates a formatted summary string for the configuration
func renderConfigSummary(path string, cfg *config.Config) string {
	var summary strings.Builder

	summary.WriteString("\nConfig Summary:\n")
	fmt.Fprintf(&summary, "- Path: %s\n", path)
	fmt.Fprintf(&summary, "- Version: %s\n", cfg.Version)
	fmt.Fprintf(&summary, "- Port: %d\n", cfg.Port)
	fmt.Fprintf(&summary, "- Greeting: %s\n", fancy.TruncateString(cfg.Greeting, 40))
	fmt.Fprintf(&summary, "- Logging: %s/%s to %s\n",
		cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.Output)
	summary.WriteString("\nUse --tree for a more detailed view of the config.")

	return summary.String()
}
