package anthropic

import (
	"github.com/deepnoodle-ai/betaheaders/llm"
)

var (
	_ llm.Tool              = &TextEditorTool{}
	_ llm.ToolConfiguration = &TextEditorTool{}
	_ llm.AnnotatedTool     = &TextEditorTool{}
)

// TextEditorToolOptions are the options used to configure a TextEditorTool.
type TextEditorToolOptions struct {
	// Version selects the tool epoch. When unset it is derived from Model,
	// falling back to ComputerUse20250124.
	Version ComputerUseVersion
	Model   string
}

// NewTextEditorTool creates a new TextEditorTool, sent as
// {"type": "text_editor_20250124", "name": "str_replace_editor"}.
func NewTextEditorTool(opts ...TextEditorToolOptions) *TextEditorTool {
	var resolvedOpts TextEditorToolOptions
	if len(opts) > 0 {
		resolvedOpts = opts[0]
	}
	resolvedOpts.Version = toolVersion(resolvedOpts.Version, resolvedOpts.Model)
	return &TextEditorTool{
		typeString: FamilyTextEditor.Prefix() + resolvedOpts.Version.Suffix(),
		version:    resolvedOpts.Version,
	}
}

// TextEditorTool lets Claude view and edit files with string replacement.
type TextEditorTool struct {
	typeString string
	version    ComputerUseVersion
}

func (t *TextEditorTool) Name() string {
	return "str_replace_editor"
}

func (t *TextEditorTool) Description() string {
	return "Views, creates and edits files using string replacement."
}

func (t *TextEditorTool) ToolConfiguration(providerName string) map[string]any {
	return map[string]any{"type": t.typeString, "name": t.Name()}
}

func (t *TextEditorTool) Annotations() *llm.ToolAnnotations {
	return &llm.ToolAnnotations{
		Title:           "Text Editor",
		DestructiveHint: true,
	}
}

func (t *TextEditorTool) Type() string {
	return t.typeString
}

func (t *TextEditorTool) Version() ComputerUseVersion {
	return t.version
}
