package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/deepnoodle-ai/betaheaders/providers/anthropic"
	"github.com/deepnoodle-ai/wonton/cli"
)

func registerSendCommand(app *cli.App) {
	app.Command("send").
		Description("Send a Messages request with negotiated beta headers").
		NoArgs().
		Flags(
			cli.String("request", "r").Required().Help("Path to a JSON Messages request body"),
			cli.Bool("dry-run", "").Help("Print the negotiated headers without sending"),
			cli.Bool("json", "").Help("Print the full response as JSON"),
		).
		Run(func(ctx *cli.Context) error {
			env, err := loadEnvironment(ctx, nil)
			if err != nil {
				return cli.Errorf("%v", err)
			}
			req, err := readRequest(ctx.String("request"))
			if err != nil {
				return cli.Errorf("%v", err)
			}

			opts := append(env.config.ProviderOptions(), anthropic.WithLogger(env.logger))
			provider := anthropic.New(opts...)
			if ctx.Bool("dry-run") {
				return writeHeaders(os.Stdout, redactHeaders(provider.Headers(req)), ctx.Bool("json"))
			}

			goCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			resp, err := provider.Send(goCtx, req)
			if err != nil {
				return cli.Errorf("%v", err)
			}
			return writeResponse(os.Stdout, resp, ctx.Bool("json"))
		})
}

func readRequest(path string) (*anthropic.Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read request: %w", err)
	}
	var req anthropic.Request
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to parse request %s: %w", path, err)
	}
	return &req, nil
}

func writeResponse(w io.Writer, resp *anthropic.Response, asJSON bool) error {
	if asJSON {
		return writeJSON(w, resp)
	}
	fmt.Fprintln(w, resp.Text())
	fmt.Fprintln(w, mutedStyle.Sprintf("(%s, stop: %s, tokens in: %d, out: %d)",
		resp.Model, resp.StopReason, resp.Usage.InputTokens, resp.Usage.OutputTokens))
	return nil
}
