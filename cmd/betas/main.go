package main

import (
	"fmt"
	"os"

	"github.com/deepnoodle-ai/wonton/cli"
)

const version = "0.1.0"

func main() {
	app := newApp()
	if err := app.Execute(); err != nil {
		if cli.IsHelpRequested(err) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}

func newApp() *cli.App {
	app := cli.New("betas").
		Description("Negotiate anthropic-beta headers for Messages API requests").
		Version(version).
		GlobalFlags(
			cli.String("config", "c").
				Env("BETAS_CONFIG").
				Help("Configuration file or directory"),
			cli.String("log-level", "").
				Help("Log level to use (debug, info, warn, error)"),
		)

	registerResolveCommand(app)
	registerHeadersCommand(app)
	registerSendCommand(app)
	registerWatchCommand(app)
	registerMCPCommand(app)
	return app
}
