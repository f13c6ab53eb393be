package llm

import (
	"encoding/json"

	"github.com/goccy/go-yaml"
)

// ToolDescriptor is one entry of the "tools" array of a request. Only the
// type and name are interpreted; every other field is carried in Extra and
// written back out unchanged.
//
// Decoding never fails because of missing or unexpected fields. A type or
// name that is not a string decodes as empty and its raw value is kept in
// Extra.
type ToolDescriptor struct {
	Type  string         `json:"type,omitempty"`
	Name  string         `json:"name,omitempty"`
	Extra map[string]any `json:"-"`
}

// DescriptorFromMap builds a descriptor from a decoded JSON or YAML object.
func DescriptorFromMap(m map[string]any) ToolDescriptor {
	var d ToolDescriptor
	for k, v := range m {
		if k == "type" || k == "name" {
			s, ok := v.(string)
			if k == "type" {
				d.Type = s
			} else {
				d.Name = s
			}
			if ok || v == nil {
				continue
			}
		}
		if d.Extra == nil {
			d.Extra = make(map[string]any, len(m))
		}
		d.Extra[k] = v
	}
	return d
}

// Map returns the descriptor as a plain object.
func (d ToolDescriptor) Map() map[string]any {
	m := make(map[string]any, len(d.Extra)+2)
	for k, v := range d.Extra {
		m[k] = v
	}
	if d.Type != "" {
		m["type"] = d.Type
	}
	if d.Name != "" {
		m["name"] = d.Name
	}
	return m
}

func (d ToolDescriptor) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Map())
}

func (d *ToolDescriptor) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	// Anything other than an object is a descriptor with no type.
	m, _ := raw.(map[string]any)
	*d = DescriptorFromMap(m)
	return nil
}

func (d *ToolDescriptor) UnmarshalYAML(data []byte) error {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return err
	}
	*d = DescriptorFromMap(toStringMap(raw))
	return nil
}

// toStringMap normalizes YAML mappings, which may decode with non-string
// keys, into a map keyed by string.
func toStringMap(v any) map[string]any {
	switch m := v.(type) {
	case map[string]any:
		return m
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			if key, ok := k.(string); ok {
				out[key] = val
			}
		}
		return out
	default:
		return nil
	}
}

// ParseToolDescriptors decodes a JSON array of tool descriptors. A null or
// empty document yields a nil slice.
func ParseToolDescriptors(data []byte) ([]ToolDescriptor, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var tools []ToolDescriptor
	if err := json.Unmarshal(data, &tools); err != nil {
		return nil, err
	}
	return tools, nil
}
