package main

import (
	"fmt"
	"io"
	"os"

	"github.com/deepnoodle-ai/betaheaders/llm"
	"github.com/deepnoodle-ai/betaheaders/providers/anthropic"
	"github.com/deepnoodle-ai/wonton/cli"
)

func registerResolveCommand(app *cli.App) {
	app.Command("resolve").
		Description("Print the computer use beta required by tool definitions").
		Long("Loads tool definitions from JSON or YAML files, which may be given as doublestar globs, " +
			"adds any tools from the configuration, and prints the computer use beta token they require. " +
			"Prints \"none\" when no computer use beta applies.").
		Flags(
			cli.Bool("json", "").Help("Print the result as JSON"),
		).
		Run(func(ctx *cli.Context) error {
			env, err := loadEnvironment(ctx, ctx.Args())
			if err != nil {
				return cli.Errorf("%v", err)
			}
			return writeResolve(os.Stdout, env.config.Tools, ctx.Bool("json"))
		})
}

type resolveOutput struct {
	ComputerUse string   `json:"computer_use"`
	ToolTypes   []string `json:"tool_types"`
}

func writeResolve(w io.Writer, tools []llm.ToolDescriptor, asJSON bool) error {
	version := anthropic.ResolveComputerUse(tools)
	if asJSON {
		types := llm.ToolTypes(tools)
		if types == nil {
			types = []string{}
		}
		return writeJSON(w, resolveOutput{ComputerUse: version.Token(), ToolTypes: types})
	}
	_, err := fmt.Fprintln(w, version.String())
	return err
}
