package anthropic

import (
	"strings"

	"github.com/deepnoodle-ai/betaheaders/llm"
)

// ComputerUseVersion identifies a computer use capability epoch. Values are
// ordered so that a newer epoch always compares greater than an older one.
// The zero value means no computer use beta is required.
type ComputerUseVersion int

const (
	ComputerUseNone ComputerUseVersion = iota
	ComputerUse20241022
	ComputerUse20250124
)

// Epoch suffixes carried by versioned tool types, e.g. "computer_20250124".
const (
	EpochSuffix20241022 = "20241022"
	EpochSuffix20250124 = "20250124"
)

// Token returns the anthropic-beta token for the version, or an empty
// string for ComputerUseNone.
func (v ComputerUseVersion) Token() string {
	switch v {
	case ComputerUse20241022:
		return FeatureComputerUse20241022
	case ComputerUse20250124:
		return FeatureComputerUse20250124
	default:
		return ""
	}
}

// Suffix returns the tool type suffix for the version.
func (v ComputerUseVersion) Suffix() string {
	switch v {
	case ComputerUse20241022:
		return EpochSuffix20241022
	case ComputerUse20250124:
		return EpochSuffix20250124
	default:
		return ""
	}
}

func (v ComputerUseVersion) String() string {
	if v == ComputerUseNone {
		return "none"
	}
	return v.Token()
}

// ParseComputerUseVersion converts a beta token back into a version.
func ParseComputerUseVersion(token string) (ComputerUseVersion, bool) {
	switch token {
	case FeatureComputerUse20241022:
		return ComputerUse20241022, true
	case FeatureComputerUse20250124:
		return ComputerUse20250124, true
	default:
		return ComputerUseNone, false
	}
}

// ToolFamily is a family of Anthropic-defined tools that share the computer
// use beta.
type ToolFamily string

const (
	FamilyComputer   ToolFamily = "computer_"
	FamilyBash       ToolFamily = "bash_"
	FamilyTextEditor ToolFamily = "text_editor_"
)

// toolFamilies is the fixed set of recognized families, matched in order.
var toolFamilies = []ToolFamily{FamilyComputer, FamilyBash, FamilyTextEditor}

// Prefix returns the tool type prefix of the family.
func (f ToolFamily) Prefix() string {
	return string(f)
}

// ToolClass is the classification of a single tool type.
type ToolClass struct {
	Family  ToolFamily
	Version ComputerUseVersion
}

// ClassifyToolType classifies a tool type string. The family is matched as
// a case-sensitive prefix. The epoch is found by looking for a known epoch
// suffix anywhere in the remainder; an unrecognized remainder falls back to
// the 2024-10-22 epoch. Types outside every family are not classified.
func ClassifyToolType(toolType string) (ToolClass, bool) {
	for _, family := range toolFamilies {
		rest, ok := strings.CutPrefix(toolType, family.Prefix())
		if !ok {
			continue
		}
		class := ToolClass{Family: family, Version: ComputerUse20241022}
		switch {
		case strings.Contains(rest, EpochSuffix20241022):
			class.Version = ComputerUse20241022
		case strings.Contains(rest, EpochSuffix20250124):
			class.Version = ComputerUse20250124
		}
		return class, true
	}
	return ToolClass{}, false
}

// ResolveComputerUse returns the newest computer use version required by
// the given tools. Tools with an unrecognized or missing type are ignored,
// so an empty list or one without any computer use tools resolves to
// ComputerUseNone.
func ResolveComputerUse(tools []llm.ToolDescriptor) ComputerUseVersion {
	version := ComputerUseNone
	for _, tool := range tools {
		class, ok := ClassifyToolType(tool.Type)
		if !ok {
			continue
		}
		if class.Version > version {
			version = class.Version
		}
	}
	return version
}

// DescribeTools renders tools into the descriptors sent to Anthropic.
func DescribeTools(tools ...llm.Tool) []llm.ToolDescriptor {
	return llm.DescribeTools(ProviderName, tools...)
}

// ServerTools returns the Anthropic-defined tools at the epoch the model was
// trained on: computer, bash, text editor and code execution.
func ServerTools(model string, displayWidthPx, displayHeightPx int) []llm.Tool {
	return []llm.Tool{
		NewComputerTool(ComputerToolOptions{
			Model:           model,
			DisplayWidthPx:  displayWidthPx,
			DisplayHeightPx: displayHeightPx,
		}),
		NewBashTool(BashToolOptions{Model: model}),
		NewTextEditorTool(TextEditorToolOptions{Model: model}),
		NewCodeExecutionTool(),
	}
}

// ResolveComputerUseFromTools describes the tools as they would be sent to
// Anthropic and resolves the computer use version they require.
func ResolveComputerUseFromTools(tools ...llm.Tool) ComputerUseVersion {
	return ResolveComputerUse(DescribeTools(tools...))
}
