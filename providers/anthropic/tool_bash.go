package anthropic

import (
	"github.com/deepnoodle-ai/betaheaders/llm"
)

var (
	_ llm.Tool              = &BashTool{}
	_ llm.ToolConfiguration = &BashTool{}
	_ llm.AnnotatedTool     = &BashTool{}
)

// BashToolOptions are the options used to configure a BashTool.
type BashToolOptions struct {
	// Version selects the tool epoch. When unset it is derived from Model,
	// falling back to ComputerUse20250124.
	Version ComputerUseVersion
	Model   string
}

// NewBashTool creates a new BashTool. The tool is defined by Anthropic and
// executed by the caller, e.g. {"type": "bash_20250124", "name": "bash"}.
func NewBashTool(opts ...BashToolOptions) *BashTool {
	var resolvedOpts BashToolOptions
	if len(opts) > 0 {
		resolvedOpts = opts[0]
	}
	resolvedOpts.Version = toolVersion(resolvedOpts.Version, resolvedOpts.Model)
	return &BashTool{
		typeString: FamilyBash.Prefix() + resolvedOpts.Version.Suffix(),
		version:    resolvedOpts.Version,
	}
}

// BashTool lets Claude run shell commands in a persistent session.
type BashTool struct {
	typeString string
	version    ComputerUseVersion
}

func (t *BashTool) Name() string {
	return "bash"
}

func (t *BashTool) Description() string {
	return "Runs shell commands in a persistent bash session."
}

func (t *BashTool) ToolConfiguration(providerName string) map[string]any {
	return map[string]any{"type": t.typeString, "name": t.Name()}
}

func (t *BashTool) Annotations() *llm.ToolAnnotations {
	return &llm.ToolAnnotations{
		Title:           "Bash",
		DestructiveHint: true,
		OpenWorldHint:   true,
	}
}

func (t *BashTool) Type() string {
	return t.typeString
}

func (t *BashTool) Version() ComputerUseVersion {
	return t.version
}
