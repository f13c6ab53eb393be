package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

type plainTool struct {
	name        string
	description string
}

func (t *plainTool) Name() string        { return t.name }
func (t *plainTool) Description() string { return t.description }

type configuredTool struct {
	plainTool
	config map[string]any
}

func (t *configuredTool) ToolConfiguration(providerName string) map[string]any {
	if providerName != "anthropic" {
		return nil
	}
	return t.config
}

func TestDescribeTools(t *testing.T) {
	computer := &configuredTool{
		plainTool: plainTool{name: "computer"},
		config:    map[string]any{"type": "computer_20250124", "name": "computer", "display_width_px": 1024},
	}
	lookup := &plainTool{name: "lookup", description: "Looks things up"}

	descriptors := DescribeTools("anthropic", computer, nil, lookup)
	require.Len(t, descriptors, 2)
	require.Equal(t, "computer_20250124", descriptors[0].Type)
	require.Equal(t, 1024, descriptors[0].Extra["display_width_px"])
	require.Equal(t, ToolDescriptor{
		Name:  "lookup",
		Extra: map[string]any{"description": "Looks things up"},
	}, descriptors[1])

	// Tools without a configuration for the provider fall back to name and
	// description.
	other := DescribeTools("other", computer)
	require.Equal(t, []ToolDescriptor{{Name: "computer"}}, other)

	require.Nil(t, DescribeTools("anthropic"))
}

func TestToolTypes(t *testing.T) {
	types := ToolTypes([]ToolDescriptor{
		{Type: "text_editor_20241022"},
		{Type: "bash_20241022"},
		{Name: "no type"},
		{Type: "bash_20241022"},
	})
	require.Equal(t, []string{"bash_20241022", "text_editor_20241022"}, types)
	require.Nil(t, ToolTypes(nil))
}

func TestToolAnnotationsMarshalJSON(t *testing.T) {
	annotations := &ToolAnnotations{
		Title:        "Computer",
		ReadOnlyHint: true,
		Extra:        map[string]any{"experimental": true},
	}
	data, err := json.Marshal(annotations)
	require.NoError(t, err)
	require.JSONEq(t, `{
		"title": "Computer",
		"readOnlyHint": true,
		"destructiveHint": false,
		"idempotentHint": false,
		"openWorldHint": false,
		"experimental": true
	}`, string(data))
}
