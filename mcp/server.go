// Package mcp exposes beta feature negotiation to MCP clients.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/deepnoodle-ai/betaheaders/llm"
	"github.com/deepnoodle-ai/betaheaders/log"
	"github.com/deepnoodle-ai/betaheaders/providers/anthropic"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	ServerName    = "betaheaders"
	ServerVersion = "0.1.0"

	ToolResolveComputerUse  = "resolve_computer_use"
	ToolAssembleBetaHeader  = "assemble_beta_header"
	ToolDescribeServerTools = "describe_server_tools"

	defaultDisplayWidthPx  = 1024
	defaultDisplayHeightPx = 768
)

var (
	resolveAnnotations = &llm.ToolAnnotations{
		Title:          "Resolve Computer Use",
		ReadOnlyHint:   true,
		IdempotentHint: true,
	}
	assembleAnnotations = &llm.ToolAnnotations{
		Title:          "Assemble Beta Header",
		ReadOnlyHint:   true,
		IdempotentHint: true,
	}
	describeAnnotations = &llm.ToolAnnotations{
		Title:          "Describe Server Tools",
		ReadOnlyHint:   true,
		IdempotentHint: true,
	}
)

// Options configure a Server.
type Options struct {
	// Defaults are merged into every assemble_beta_header call. Flags set
	// here are always on and extra betas are appended.
	Defaults anthropic.HeaderOptions
	Logger   log.Logger
}

// Server serves the negotiation tools over MCP.
type Server struct {
	mcpServer *server.MCPServer
	defaults  anthropic.HeaderOptions
	logger    log.Logger
}

// NewServer creates a Server with the negotiation tools registered.
func NewServer(opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = log.NewNullLogger()
	}
	s := &Server{
		mcpServer: server.NewMCPServer(
			ServerName,
			ServerVersion,
			server.WithToolCapabilities(true),
			server.WithRecovery(),
		),
		defaults: opts.Defaults,
		logger:   logger,
	}

	s.mcpServer.AddTool(newTool(
		ToolResolveComputerUse,
		resolveAnnotations,
		mcp.WithDescription("Return the computer use beta token required by a list of tool definitions, or an empty string."),
		mcp.WithString("tools", mcp.Required(), mcp.Description("JSON array of tool definitions as sent in the request's tools field.")),
	), s.handleResolve)

	s.mcpServer.AddTool(newTool(
		ToolAssembleBetaHeader,
		assembleAnnotations,
		mcp.WithDescription("Return the anthropic-beta header value for a request's tools and features."),
		mcp.WithString("tools", mcp.Description("JSON array of tool definitions. Optional.")),
		mcp.WithString("computer_use", mcp.Description("Computer use beta token to require, e.g. computer-use-2025-01-24. The newer of this and the tools' version wins.")),
		mcp.WithBoolean("prompt_caching", mcp.Description("The request uses cache_control.")),
		mcp.WithBoolean("pdfs", mcp.Description("The request attaches PDF documents.")),
		mcp.WithString("extra_betas", mcp.Description("Comma separated beta tokens to append.")),
	), s.handleAssemble)

	s.mcpServer.AddTool(newTool(
		ToolDescribeServerTools,
		describeAnnotations,
		mcp.WithDescription("Return the Anthropic-defined tool definitions for a model, with their behavior hints and the beta tokens they require."),
		mcp.WithString("model", mcp.Required(), mcp.Description("Model the tools will be sent to, e.g. claude-sonnet-4-5.")),
		mcp.WithNumber("display_width_px", mcp.Description("Computer tool display width. Defaults to 1024.")),
		mcp.WithNumber("display_height_px", mcp.Description("Computer tool display height. Defaults to 768.")),
	), s.handleDescribe)

	return s
}

// MCPServer returns the underlying server, e.g. to mount it on another
// transport.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio serves the tools on stdin and stdout until the input closes.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ResolveResult is the JSON result of resolve_computer_use.
type ResolveResult struct {
	ComputerUse string   `json:"computer_use"`
	ToolTypes   []string `json:"tool_types,omitempty"`
}

// AssembleResult is the JSON result of assemble_beta_header.
type AssembleResult struct {
	Betas  []string `json:"betas"`
	Header string   `json:"anthropic_beta,omitempty"`
}

func (s *Server) handleResolve(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	tools, err := parseTools(stringArg(req, "tools"))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	version := anthropic.ResolveComputerUse(tools)
	s.logger.Debug("resolved computer use", "tools", len(tools), "version", version.String())
	return jsonResult(ResolveResult{
		ComputerUse: version.Token(),
		ToolTypes:   llm.ToolTypes(tools),
	})
}

func (s *Server) handleAssemble(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	tools, err := parseTools(stringArg(req, "tools"))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	computerUse := anthropic.ResolveComputerUse(tools)
	if token := strings.TrimSpace(stringArg(req, "computer_use")); token != "" {
		version, ok := anthropic.ParseComputerUseVersion(token)
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("invalid computer_use token: %q", token)), nil
		}
		computerUse = max(computerUse, version)
	}
	opts := s.defaults.Union(anthropic.HeaderOptions{
		ComputerUse:   computerUse,
		PromptCaching: boolArg(req, "prompt_caching"),
		PDFs:          boolArg(req, "pdfs"),
		Extra:         anthropic.ParseBetaHeader(stringArg(req, "extra_betas")),
	})

	// Only the beta tokens are returned. The API key never passes through here.
	betas := opts.Betas()
	if betas == nil {
		betas = []string{}
	}
	s.logger.Debug("assembled beta header", "betas", betas)
	return jsonResult(AssembleResult{
		Betas:  betas,
		Header: strings.Join(betas, anthropic.BetaDelimiter),
	})
}

// ServerTool is one Anthropic-defined tool in a describe_server_tools result.
type ServerTool struct {
	Definition  llm.ToolDescriptor   `json:"definition"`
	Annotations *llm.ToolAnnotations `json:"annotations,omitempty"`
}

// DescribeResult is the JSON result of describe_server_tools.
type DescribeResult struct {
	Model       string       `json:"model"`
	ComputerUse string       `json:"computer_use"`
	Tools       []ServerTool `json:"tools"`
	Betas       []string     `json:"betas"`
}

func (s *Server) handleDescribe(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	model := strings.TrimSpace(stringArg(req, "model"))
	if model == "" {
		return mcp.NewToolResultError("model is required"), nil
	}
	width := intArg(req, "display_width_px", defaultDisplayWidthPx)
	height := intArg(req, "display_height_px", defaultDisplayHeightPx)

	tools := anthropic.ServerTools(model, width, height)
	descriptors := anthropic.DescribeTools(tools...)
	result := DescribeResult{
		Model: model,
		Tools: make([]ServerTool, 0, len(tools)),
	}
	for i, tool := range tools {
		entry := ServerTool{Definition: descriptors[i]}
		if annotated, ok := tool.(llm.AnnotatedTool); ok {
			entry.Annotations = annotated.Annotations()
		}
		result.Tools = append(result.Tools, entry)
	}

	opts := anthropic.DetectFeatures(&anthropic.Request{Tools: descriptors}).Union(s.defaults)
	result.ComputerUse = opts.ComputerUse.Token()
	result.Betas = opts.Betas()
	if result.Betas == nil {
		result.Betas = []string{}
	}
	s.logger.Debug("described server tools", "model", model, "betas", result.Betas)
	return jsonResult(result)
}

// newTool creates an MCP tool whose behavior hints come from annotations.
func newTool(name string, annotations *llm.ToolAnnotations, opts ...mcp.ToolOption) mcp.Tool {
	return mcp.NewTool(name, append(opts, toolHints(annotations)...)...)
}

// toolHints converts tool annotations into MCP tool annotation options.
func toolHints(a *llm.ToolAnnotations) []mcp.ToolOption {
	if a == nil {
		return nil
	}
	var opts []mcp.ToolOption
	if a.Title != "" {
		opts = append(opts, mcp.WithTitleAnnotation(a.Title))
	}
	return append(opts,
		mcp.WithReadOnlyHintAnnotation(a.ReadOnlyHint),
		mcp.WithDestructiveHintAnnotation(a.DestructiveHint),
		mcp.WithIdempotentHintAnnotation(a.IdempotentHint),
		mcp.WithOpenWorldHintAnnotation(a.OpenWorldHint),
	)
}

func parseTools(value string) ([]llm.ToolDescriptor, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	tools, err := llm.ParseToolDescriptors([]byte(value))
	if err != nil {
		return nil, fmt.Errorf("invalid tools: %w", err)
	}
	return tools, nil
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("error encoding result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}

func stringArg(req mcp.CallToolRequest, key string) string {
	if args, ok := req.Params.Arguments.(map[string]any); ok {
		if value, ok := args[key].(string); ok {
			return value
		}
	}
	return ""
}

func intArg(req mcp.CallToolRequest, key string, fallback int) int {
	if args, ok := req.Params.Arguments.(map[string]any); ok {
		if value, ok := args[key].(float64); ok && value > 0 {
			return int(value)
		}
	}
	return fallback
}

func boolArg(req mcp.CallToolRequest, key string) bool {
	if args, ok := req.Params.Arguments.(map[string]any); ok {
		if value, ok := args[key].(bool); ok {
			return value
		}
	}
	return false
}
