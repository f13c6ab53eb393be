package main

import (
	"github.com/deepnoodle-ai/betaheaders/mcp"
	"github.com/deepnoodle-ai/wonton/cli"
)

func registerMCPCommand(app *cli.App) {
	app.Command("mcp").
		Description("Serve the negotiation tools over MCP on stdio").
		NoArgs().
		Run(func(ctx *cli.Context) error {
			env, err := loadEnvironment(ctx, nil)
			if err != nil {
				return cli.Errorf("%v", err)
			}
			server := mcp.NewServer(mcp.Options{
				Defaults: env.config.HeaderOptions(),
				Logger:   env.logger,
			})
			env.logger.Info("serving mcp over stdio", "server", mcp.ServerName)
			return server.ServeStdio()
		})
}
