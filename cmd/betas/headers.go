package main

import (
	"os"

	"github.com/deepnoodle-ai/betaheaders/providers/anthropic"
	"github.com/deepnoodle-ai/wonton/cli"
)

func registerHeadersCommand(app *cli.App) {
	app.Command("headers").
		Description("Print the headers negotiated for tool definitions and features").
		Long("Loads tool definitions like resolve does, combines them with the configured and "+
			"flagged features, and prints the assembled header set. The API key is redacted "+
			"unless --show-key is set.").
		Flags(
			cli.Bool("prompt-caching", "").Help("The request uses cache_control"),
			cli.Bool("pdfs", "").Help("The request attaches PDF documents"),
			cli.Strings("beta", "b").Help("Extra beta token to append. Can be specified multiple times"),
			cli.Bool("vertex", "").Help("Assemble headers for a Vertex AI endpoint"),
			cli.Bool("show-key", "").Help("Print the API key unredacted"),
			cli.Bool("json", "").Help("Print the headers as JSON"),
		).
		Run(func(ctx *cli.Context) error {
			env, err := loadEnvironment(ctx, ctx.Args())
			if err != nil {
				return cli.Errorf("%v", err)
			}
			opts := env.config.HeaderOptions().Union(anthropic.HeaderOptions{
				PromptCaching: ctx.Bool("prompt-caching"),
				PDFs:          ctx.Bool("pdfs"),
				Extra:         ctx.Strings("beta"),
				Vertex:        ctx.Bool("vertex"),
			})
			headers := anthropic.AssembleHeaders(env.config.Anthropic.APIKey, opts)
			env.logger.Debug("assembled headers", "computer_use", opts.ComputerUse.String(), "count", len(headers))
			if !ctx.Bool("show-key") {
				headers = redactHeaders(headers)
			}
			return writeHeaders(os.Stdout, headers, ctx.Bool("json"))
		})
}
