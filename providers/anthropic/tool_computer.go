package anthropic

import (
	"github.com/deepnoodle-ai/betaheaders/llm"
)

var (
	_ llm.Tool              = &ComputerTool{}
	_ llm.ToolConfiguration = &ComputerTool{}
	_ llm.AnnotatedTool     = &ComputerTool{}
)

// ComputerToolOptions are the options used to configure a ComputerTool.
type ComputerToolOptions struct {
	// Version selects the tool epoch. When unset it is derived from Model,
	// falling back to ComputerUse20250124.
	Version ComputerUseVersion
	// Model the tool will be sent to, e.g. ModelClaudeSonnet45.
	Model           string
	DisplayWidthPx  int
	DisplayHeightPx int
	DisplayNumber   int
}

// NewComputerTool creates a new ComputerTool with the given options. The
// rendered definition looks like:
//
//	{"type": "computer_20250124", "name": "computer",
//	 "display_width_px": 1024, "display_height_px": 768, "display_number": 1}
func NewComputerTool(opts ComputerToolOptions) *ComputerTool {
	opts.Version = toolVersion(opts.Version, opts.Model)
	return &ComputerTool{
		typeString:      FamilyComputer.Prefix() + opts.Version.Suffix(),
		version:         opts.Version,
		displayWidthPx:  opts.DisplayWidthPx,
		displayHeightPx: opts.DisplayHeightPx,
		displayNumber:   opts.DisplayNumber,
	}
}

// ComputerTool is a tool that allows Claude to use a computer.
// https://docs.anthropic.com/en/docs/agents-and-tools/computer-use
type ComputerTool struct {
	typeString      string
	version         ComputerUseVersion
	displayWidthPx  int
	displayHeightPx int
	displayNumber   int
}

func (t *ComputerTool) Name() string {
	return "computer"
}

func (t *ComputerTool) Description() string {
	return "Uses Anthropic's computer feature to give Claude the ability to use a computer."
}

func (t *ComputerTool) ToolConfiguration(providerName string) map[string]any {
	config := map[string]any{
		"type":              t.typeString,
		"name":              t.Name(),
		"display_width_px":  t.displayWidthPx,
		"display_height_px": t.displayHeightPx,
	}
	if t.displayNumber > 0 {
		config["display_number"] = t.displayNumber
	}
	return config
}

func (t *ComputerTool) Annotations() *llm.ToolAnnotations {
	return &llm.ToolAnnotations{
		Title:           "Computer",
		ReadOnlyHint:    false,
		DestructiveHint: true,
		IdempotentHint:  false,
		OpenWorldHint:   false,
	}
}

// Type returns the tool type string (e.g., "computer_20250124").
func (t *ComputerTool) Type() string {
	return t.typeString
}

// Version returns the computer use version the tool requires.
func (t *ComputerTool) Version() ComputerUseVersion {
	return t.version
}

// toolVersion picks the epoch for a versioned tool: an explicit version,
// else the model's epoch, else the newest epoch.
func toolVersion(version ComputerUseVersion, model string) ComputerUseVersion {
	if version != ComputerUseNone {
		return version
	}
	if v := ComputerUseVersionForModel(model); v != ComputerUseNone {
		return v
	}
	return ComputerUse20250124
}
