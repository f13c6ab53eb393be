package anthropic

import (
	"strings"

	"github.com/deepnoodle-ai/betaheaders/llm"
)

var (
	_ llm.Tool              = &CodeExecutionTool{}
	_ llm.ToolConfiguration = &CodeExecutionTool{}
	_ llm.AnnotatedTool     = &CodeExecutionTool{}
)

// Tool type versions for the code execution tool.
const (
	// CodeExecutionToolType is the current version supporting bash and text_editor.
	CodeExecutionToolType = "code_execution_20250825"
	// CodeExecutionToolTypeLegacy is the legacy version supporting Python only.
	CodeExecutionToolTypeLegacy = "code_execution_20250522"

	codeExecutionPrefix = "code_execution_"
)

// CodeExecutionToolOptions are the options used to configure a CodeExecutionTool.
type CodeExecutionToolOptions struct {
	// Type specifies the tool version. Defaults to CodeExecutionToolType (current).
	// Use CodeExecutionToolTypeLegacy for the older Python-only version.
	Type string
}

// NewCodeExecutionTool creates a new CodeExecutionTool with the given options.
func NewCodeExecutionTool(opts ...CodeExecutionToolOptions) *CodeExecutionTool {
	var resolvedOpts CodeExecutionToolOptions
	if len(opts) > 0 {
		resolvedOpts = opts[0]
	}
	if resolvedOpts.Type == "" {
		resolvedOpts.Type = CodeExecutionToolType
	}
	return &CodeExecutionTool{typeString: resolvedOpts.Type}
}

// CodeExecutionTool is Anthropic's server-side sandboxed code execution tool.
// It is not part of the computer use families and never affects the computer
// use version, but it has its own beta token.
//
// Learn more: https://docs.anthropic.com/en/docs/agents-and-tools/tool-use/code-execution-tool
type CodeExecutionTool struct {
	typeString string
}

func (t *CodeExecutionTool) Name() string {
	return "code_execution"
}

func (t *CodeExecutionTool) Description() string {
	return "Runs code in a sandboxed environment hosted by Anthropic."
}

func (t *CodeExecutionTool) ToolConfiguration(providerName string) map[string]any {
	return map[string]any{"type": t.typeString, "name": t.Name()}
}

func (t *CodeExecutionTool) Annotations() *llm.ToolAnnotations {
	return &llm.ToolAnnotations{
		Title:           "Code Execution",
		ReadOnlyHint:    false, // Can create/modify files
		DestructiveHint: false, // Sandboxed, doesn't affect user's system
		IdempotentHint:  false,
		OpenWorldHint:   false, // No internet access in sandbox
	}
}

// Type returns the tool type string (e.g., "code_execution_20250825").
func (t *CodeExecutionTool) Type() string {
	return t.typeString
}

// codeExecutionBeta returns the beta token required by a code execution tool
// type, or an empty string when the type is not a code execution tool.
func codeExecutionBeta(toolType string) string {
	switch {
	case toolType == CodeExecutionToolTypeLegacy:
		return FeatureCodeExecutionLegacy
	case strings.HasPrefix(toolType, codeExecutionPrefix):
		return FeatureCodeExecution
	default:
		return ""
	}
}
