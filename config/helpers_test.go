package config

import (
	"testing"

	"github.com/deepnoodle-ai/betaheaders/llm"
	"github.com/stretchr/testify/require"
)

func mustTools(t *testing.T, data string) []llm.ToolDescriptor {
	t.Helper()
	tools, err := llm.ParseToolDescriptors([]byte(data))
	require.NoError(t, err)
	return tools
}
