package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/deepnoodle-ai/betaheaders/internal/tablewriter"
	"github.com/deepnoodle-ai/betaheaders/providers/anthropic"
	"github.com/fatih/color"
)

var (
	boldStyle    = color.New(color.Bold)
	headerStyle  = color.New(color.FgCyan, color.Bold)
	successStyle = color.New(color.FgGreen)
	errorStyle   = color.New(color.FgRed)
	mutedStyle   = color.New(color.FgHiBlack)
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeHeaders prints the header set as a table, or as a JSON object.
func writeHeaders(w io.Writer, headers anthropic.HeaderSet, asJSON bool) error {
	if asJSON {
		return writeJSON(w, headers)
	}
	table := tablewriter.NewWriter(w)
	table.Header(headerStyle.Sprint("Header"), headerStyle.Sprint("Value"))
	for _, name := range headers.Names() {
		value := headers[name]
		if name == anthropic.HeaderBeta {
			value = successStyle.Sprint(value)
		}
		table.Append(name, value)
	}
	return table.Render()
}

func redactHeaders(headers anthropic.HeaderSet) anthropic.HeaderSet {
	redacted := make(anthropic.HeaderSet, len(headers))
	for name, value := range headers {
		if name == anthropic.HeaderAPIKey {
			value = redactKey(value)
		}
		redacted[name] = value
	}
	return redacted
}

func printError(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, errorStyle.Sprintf(format, args...))
}
