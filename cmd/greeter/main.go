package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

func newApp() *cli.Command {
	return &cli.Command{
		Name:    "greeter",
		Version: Version,
		Usage:   "Serve a fixed greeting over HTTP",
		Flags:   serveFlags(),
		Action:  serveAction,
		Commands: []*cli.Command{
			newServeCmd(),
			validateCmd,
			routesCmd,
			versionCmd,
		},
	}
}

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
