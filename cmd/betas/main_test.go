package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/deepnoodle-ai/betaheaders/config"
	"github.com/deepnoodle-ai/betaheaders/llm"
	"github.com/deepnoodle-ai/betaheaders/log"
	"github.com/deepnoodle-ai/betaheaders/providers/anthropic"
	"github.com/deepnoodle-ai/wonton/assert"
	"github.com/fatih/color"
)

func init() {
	color.NoColor = true
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	assert.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestNewApp(t *testing.T) {
	assert.NotNil(t, newApp())
}

func TestNewEnvironment(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant-test-key-123456")
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "betas.yaml"), "features:\n  pdfs: true\ntools:\n  - type: bash_20241022\n")
	writeFile(t, filepath.Join(dir, "tools", "a.json"), `[{"type": "computer_20250124", "name": "computer"}]`)

	t.Setenv(config.EnvLogLevel, "")
	restoreDefaultLevel(t)
	env, err := newEnvironment(filepath.Join(dir, "betas.yaml"), "debug", []string{filepath.Join(dir, "tools", "*.json")})
	assert.NoError(t, err)
	assert.Len(t, env.config.Tools, 2)
	assert.Equal(t, "sk-ant-test-key-123456", env.config.Anthropic.APIKey)
	assert.True(t, env.config.Features.PDFs)
	assert.NotNil(t, env.logger)
	assert.Equal(t, anthropic.ComputerUse20250124, anthropic.ResolveComputerUse(env.config.Tools))
}

func restoreDefaultLevel(t *testing.T) {
	t.Helper()
	previous := log.GetDefaultLevel()
	t.Cleanup(func() { log.SetDefaultLevel(previous) })
}

func TestNewEnvironmentLogLevel(t *testing.T) {
	t.Setenv(config.EnvLogLevel, "")
	restoreDefaultLevel(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "betas.yaml"), "logging:\n  level: info\n")

	_, err := newEnvironment(filepath.Join(dir, "betas.yaml"), "", nil)
	assert.NoError(t, err)
	assert.Equal(t, log.LevelInfo, log.GetDefaultLevel())

	// The flag wins over the configured level
	env, err := newEnvironment(filepath.Join(dir, "betas.yaml"), "error", nil)
	assert.NoError(t, err)
	assert.Equal(t, log.LevelError, log.GetDefaultLevel())

	ctx := env.withLogger(context.Background())
	assert.Equal(t, env.logger, log.Ctx(ctx))
}

func TestNewEnvironmentMissingTools(t *testing.T) {
	_, err := newEnvironment("", "", []string{filepath.Join(t.TempDir(), "missing.json")})
	assert.Error(t, err)
}

func TestRedactKey(t *testing.T) {
	assert.Equal(t, "", redactKey(""))
	assert.Equal(t, "****", redactKey("short"))
	assert.Equal(t, "sk-a...3456", redactKey("sk-ant-test-key-123456"))
}

func TestWriteResolve(t *testing.T) {
	tools := []llm.ToolDescriptor{{Type: "text_editor_20241022"}, {Type: "function"}}

	var buf bytes.Buffer
	assert.NoError(t, writeResolve(&buf, tools, false))
	assert.Equal(t, "computer-use-2024-10-22\n", buf.String())

	buf.Reset()
	assert.NoError(t, writeResolve(&buf, nil, false))
	assert.Equal(t, "none\n", buf.String())

	buf.Reset()
	assert.NoError(t, writeResolve(&buf, tools, true))
	assert.JSONEq(t, `{"computer_use": "computer-use-2024-10-22", "tool_types": ["function", "text_editor_20241022"]}`, buf.String())

	buf.Reset()
	assert.NoError(t, writeResolve(&buf, nil, true))
	assert.JSONEq(t, `{"computer_use": "", "tool_types": []}`, buf.String())
}

func TestWriteHeaders(t *testing.T) {
	headers := anthropic.AssembleHeaders("sk-ant-test-key-123456", anthropic.HeaderOptions{PDFs: true})
	redacted := redactHeaders(headers)
	assert.Equal(t, "sk-ant-test-key-123456", headers[anthropic.HeaderAPIKey])
	assert.Equal(t, "sk-a...3456", redacted[anthropic.HeaderAPIKey])

	var buf bytes.Buffer
	assert.NoError(t, writeHeaders(&buf, redacted, false))
	out := buf.String()
	assert.Contains(t, out, "| anthropic-beta    | pdfs-2024-09-25  |")
	assert.Contains(t, out, "| x-api-key         | sk-a...3456      |")
	assert.False(t, strings.Contains(out, "sk-ant-test-key-123456"))

	buf.Reset()
	assert.NoError(t, writeHeaders(&buf, redacted, true))
	assert.Contains(t, buf.String(), `"anthropic-beta": "pdfs-2024-09-25"`)
}

func TestReadRequest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "request.json")
	writeFile(t, path, `{
		"model": "claude-sonnet-4-5",
		"max_tokens": 100,
		"messages": [{"role": "user", "content": "hello"}],
		"tools": [{"type": "computer_20241022", "name": "computer", "display_width_px": 1024}]
	}`)
	req, err := readRequest(path)
	assert.NoError(t, err)
	assert.Len(t, req.Messages, 1)
	assert.Equal(t, anthropic.ComputerUse20241022, anthropic.ResolveComputerUse(req.Tools))

	_, err = readRequest(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestReadRequestSystemStringAndExtraFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "request.json")
	writeFile(t, path, `{
		"model": "claude-sonnet-4-5",
		"system": "You are terse.",
		"messages": [{"role": "user", "content": "hello"}],
		"tool_choice": {"type": "auto"},
		"stream": false
	}`)
	req, err := readRequest(path)
	assert.NoError(t, err)
	assert.Equal(t, []anthropic.ContentBlock{{Type: "text", Text: "You are terse."}}, req.System)
	assert.Equal(t, map[string]any{"type": "auto"}, req.Extra["tool_choice"])
	assert.Equal(t, false, req.Extra["stream"])
}

func TestWriteResponse(t *testing.T) {
	resp := &anthropic.Response{
		Model:      "claude-sonnet-4-5",
		StopReason: "end_turn",
		Content:    []anthropic.ContentBlock{{Type: "text", Text: "Hello"}},
		Usage:      anthropic.Usage{InputTokens: 3, OutputTokens: 1},
	}
	var buf bytes.Buffer
	assert.NoError(t, writeResponse(&buf, resp, false))
	assert.Equal(t, "Hello\n(claude-sonnet-4-5, stop: end_turn, tokens in: 3, out: 1)\n", buf.String())
}
