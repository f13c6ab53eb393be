package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/deepnoodle-ai/betaheaders/llm"
	"github.com/deepnoodle-ai/betaheaders/providers/anthropic"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/require"
)

func callRequest(name string, args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Name = name
	if args != nil {
		req.Params.Arguments = args
	}
	return req
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, result)
	require.Len(t, result.Content, 1)
	switch content := result.Content[0].(type) {
	case mcp.TextContent:
		return content.Text
	case *mcp.TextContent:
		return content.Text
	default:
		t.Fatalf("unexpected content type %T", content)
		return ""
	}
}

func TestResolveComputerUseTool(t *testing.T) {
	s := NewServer(Options{})
	result, err := s.handleResolve(context.Background(), callRequest(ToolResolveComputerUse, map[string]any{
		"tools": `[{"type": "computer_20241022", "name": "computer"}, {"type": "function", "name": "f"}]`,
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var resolved ResolveResult
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &resolved))
	require.Equal(t, "computer-use-2024-10-22", resolved.ComputerUse)
	require.Equal(t, []string{"computer_20241022", "function"}, resolved.ToolTypes)
}

func TestResolveComputerUseToolNoTools(t *testing.T) {
	s := NewServer(Options{})
	result, err := s.handleResolve(context.Background(), callRequest(ToolResolveComputerUse, map[string]any{
		"tools": "[]",
	}))
	require.NoError(t, err)
	require.JSONEq(t, `{"computer_use": ""}`, resultText(t, result))
}

func TestResolveComputerUseToolInvalidJSON(t *testing.T) {
	s := NewServer(Options{})
	result, err := s.handleResolve(context.Background(), callRequest(ToolResolveComputerUse, map[string]any{
		"tools": `{not json`,
	}))
	require.NoError(t, err)
	require.True(t, result.IsError)
}

func TestAssembleBetaHeaderTool(t *testing.T) {
	s := NewServer(Options{})
	result, err := s.handleAssemble(context.Background(), callRequest(ToolAssembleBetaHeader, map[string]any{
		"tools":          `[{"type": "computer_20250124"}]`,
		"prompt_caching": true,
		"pdfs":           true,
		"extra_betas":    "custom-beta",
	}))
	require.NoError(t, err)

	var assembled AssembleResult
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &assembled))
	require.Equal(t, "computer-use-2025-01-24,prompt-caching-2024-07-31,pdfs-2024-09-25,custom-beta", assembled.Header)
	require.Len(t, assembled.Betas, 4)
}

func TestAssembleBetaHeaderToolEmpty(t *testing.T) {
	s := NewServer(Options{})
	result, err := s.handleAssemble(context.Background(), callRequest(ToolAssembleBetaHeader, nil))
	require.NoError(t, err)
	require.JSONEq(t, `{"betas": []}`, resultText(t, result))
}

func TestAssembleBetaHeaderToolDefaults(t *testing.T) {
	s := NewServer(Options{Defaults: anthropic.HeaderOptions{
		PromptCaching: true,
		Extra:         []string{"default-beta"},
	}})
	result, err := s.handleAssemble(context.Background(), callRequest(ToolAssembleBetaHeader, map[string]any{
		"tools": `[{"type": "bash_other"}]`,
	}))
	require.NoError(t, err)

	var assembled AssembleResult
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &assembled))
	require.Equal(t, []string{
		anthropic.FeatureComputerUse20241022,
		anthropic.FeaturePromptCaching,
		"default-beta",
	}, assembled.Betas)
}

func TestAssembleBetaHeaderToolComputerUse(t *testing.T) {
	s := NewServer(Options{})
	result, err := s.handleAssemble(context.Background(), callRequest(ToolAssembleBetaHeader, map[string]any{
		"computer_use": "computer-use-2024-10-22",
	}))
	require.NoError(t, err)
	require.JSONEq(t, `{"betas": ["computer-use-2024-10-22"], "anthropic_beta": "computer-use-2024-10-22"}`, resultText(t, result))

	// The newer of the token and the tools' version wins
	result, err = s.handleAssemble(context.Background(), callRequest(ToolAssembleBetaHeader, map[string]any{
		"tools":        `[{"type": "bash_20250124"}]`,
		"computer_use": "computer-use-2024-10-22",
	}))
	require.NoError(t, err)
	require.JSONEq(t, `{"betas": ["computer-use-2025-01-24"], "anthropic_beta": "computer-use-2025-01-24"}`, resultText(t, result))

	result, err = s.handleAssemble(context.Background(), callRequest(ToolAssembleBetaHeader, map[string]any{
		"computer_use": "prompt-caching-2024-07-31",
	}))
	require.NoError(t, err)
	require.True(t, result.IsError)
}

func TestAssembleBetaHeaderToolVertex(t *testing.T) {
	s := NewServer(Options{Defaults: anthropic.HeaderOptions{Vertex: true, PromptCaching: true}})
	result, err := s.handleAssemble(context.Background(), callRequest(ToolAssembleBetaHeader, map[string]any{
		"tools":       `[{"type": "computer_20250124"}]`,
		"extra_betas": "custom-beta",
	}))
	require.NoError(t, err)
	require.JSONEq(t, `{"betas": []}`, resultText(t, result))

	_, ok := anthropic.AssembleHeaders("k", anthropic.HeaderOptions{Vertex: true, PromptCaching: true}).Beta()
	require.False(t, ok)
}

func TestDescribeServerToolsTool(t *testing.T) {
	s := NewServer(Options{})
	result, err := s.handleDescribe(context.Background(), callRequest(ToolDescribeServerTools, map[string]any{
		"model":            anthropic.ModelClaude35Sonnet20241022,
		"display_width_px": float64(1280),
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var described struct {
		Model       string   `json:"model"`
		ComputerUse string   `json:"computer_use"`
		Betas       []string `json:"betas"`
		Tools       []struct {
			Definition  map[string]any `json:"definition"`
			Annotations map[string]any `json:"annotations"`
		} `json:"tools"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &described))
	require.Equal(t, anthropic.ModelClaude35Sonnet20241022, described.Model)
	require.Equal(t, anthropic.FeatureComputerUse20241022, described.ComputerUse)
	require.Equal(t, []string{anthropic.FeatureComputerUse20241022, anthropic.FeatureCodeExecution}, described.Betas)
	require.Len(t, described.Tools, 4)

	computer := described.Tools[0]
	require.Equal(t, "computer_20241022", computer.Definition["type"])
	require.Equal(t, float64(1280), computer.Definition["display_width_px"])
	require.Equal(t, float64(768), computer.Definition["display_height_px"])
	require.Equal(t, "Computer", computer.Annotations["title"])
	require.Equal(t, true, computer.Annotations["destructiveHint"])
	require.Equal(t, "bash_20241022", described.Tools[1].Definition["type"])
	require.Equal(t, "Code Execution", described.Tools[3].Annotations["title"])
}

func TestDescribeServerToolsToolNewerModel(t *testing.T) {
	s := NewServer(Options{Defaults: anthropic.HeaderOptions{Extra: []string{"default-beta"}}})
	result, err := s.handleDescribe(context.Background(), callRequest(ToolDescribeServerTools, map[string]any{
		"model": anthropic.ModelClaudeSonnet45,
	}))
	require.NoError(t, err)

	var described DescribeResult
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &described))
	require.Equal(t, []string{
		anthropic.FeatureComputerUse20250124,
		anthropic.FeatureCodeExecution,
		"default-beta",
	}, described.Betas)
}

func TestDescribeServerToolsToolRequiresModel(t *testing.T) {
	s := NewServer(Options{})
	result, err := s.handleDescribe(context.Background(), callRequest(ToolDescribeServerTools, nil))
	require.NoError(t, err)
	require.True(t, result.IsError)
}

func TestToolHints(t *testing.T) {
	tool := newTool("edit", &llm.ToolAnnotations{Title: "Edit", DestructiveHint: true, OpenWorldHint: true})
	require.Equal(t, "Edit", tool.Annotations.Title)
	require.NotNil(t, tool.Annotations.DestructiveHint)
	require.True(t, *tool.Annotations.DestructiveHint)
	require.NotNil(t, tool.Annotations.ReadOnlyHint)
	require.False(t, *tool.Annotations.ReadOnlyHint)
	require.True(t, *tool.Annotations.OpenWorldHint)

	require.Nil(t, toolHints(nil))
}

func TestNewServer(t *testing.T) {
	s := NewServer(Options{})
	require.NotNil(t, s.MCPServer())
}
