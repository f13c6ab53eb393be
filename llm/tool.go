package llm

import (
	"encoding/json"
	"sort"
)

// Tool is the minimal description of a tool offered to an LLM.
type Tool interface {
	// Name of the tool.
	Name() string

	// Description of the tool.
	Description() string
}

// ToolConfiguration is implemented by tools whose request definition is
// fixed by the provider, such as Anthropic's server-side computer use tools.
// A nil map means the tool uses the default definition.
type ToolConfiguration interface {
	ToolConfiguration(providerName string) map[string]any
}

// AnnotatedTool is implemented by tools that describe how they behave.
type AnnotatedTool interface {
	Tool
	Annotations() *ToolAnnotations
}

// ToolAnnotations are hints describing how a tool behaves.
type ToolAnnotations struct {
	Title           string         `json:"title,omitempty"`
	ReadOnlyHint    bool           `json:"readOnlyHint,omitempty"`
	DestructiveHint bool           `json:"destructiveHint,omitempty"`
	IdempotentHint  bool           `json:"idempotentHint,omitempty"`
	OpenWorldHint   bool           `json:"openWorldHint,omitempty"`
	Extra           map[string]any `json:"extra,omitempty"`
}

func (a *ToolAnnotations) MarshalJSON() ([]byte, error) {
	data := map[string]any{
		"title":           a.Title,
		"readOnlyHint":    a.ReadOnlyHint,
		"destructiveHint": a.DestructiveHint,
		"idempotentHint":  a.IdempotentHint,
		"openWorldHint":   a.OpenWorldHint,
	}
	for k, v := range a.Extra {
		data[k] = v
	}
	return json.Marshal(data)
}

// DescribeTools renders tools into the descriptors sent to a provider.
// Tools implementing ToolConfiguration contribute their own definition;
// other tools are described by name and description only.
func DescribeTools(providerName string, tools ...Tool) []ToolDescriptor {
	if len(tools) == 0 {
		return nil
	}
	descriptors := make([]ToolDescriptor, 0, len(tools))
	for _, tool := range tools {
		if tool == nil {
			continue
		}
		if configurable, ok := tool.(ToolConfiguration); ok {
			if config := configurable.ToolConfiguration(providerName); config != nil {
				descriptors = append(descriptors, DescriptorFromMap(config))
				continue
			}
		}
		d := ToolDescriptor{Name: tool.Name()}
		if desc := tool.Description(); desc != "" {
			d.Extra = map[string]any{"description": desc}
		}
		descriptors = append(descriptors, d)
	}
	return descriptors
}

// ToolTypes returns the sorted, de-duplicated set of non-empty tool types.
func ToolTypes(descriptors []ToolDescriptor) []string {
	seen := map[string]bool{}
	var types []string
	for _, d := range descriptors {
		if d.Type == "" || seen[d.Type] {
			continue
		}
		seen[d.Type] = true
		types = append(types, d.Type)
	}
	sort.Strings(types)
	return types
}
