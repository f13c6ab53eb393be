package config

import "slices"

// Merge merges two configs, with the second one taking precedence. Features
// are combined, and tools and extra betas are concatenated.
func Merge(base, override *Config) *Config {
	result := *base

	if override.Anthropic.APIKey != "" {
		result.Anthropic.APIKey = override.Anthropic.APIKey
	}
	if override.Anthropic.Endpoint != "" {
		result.Anthropic.Endpoint = override.Anthropic.Endpoint
	}
	if override.Anthropic.Version != "" {
		result.Anthropic.Version = override.Anthropic.Version
	}
	if override.Anthropic.MaxRetries != nil {
		result.Anthropic.MaxRetries = override.Anthropic.MaxRetries
	}
	result.Anthropic.Vertex = base.Anthropic.Vertex || override.Anthropic.Vertex
	result.Anthropic.ExtraBetas = concat(base.Anthropic.ExtraBetas, override.Anthropic.ExtraBetas)

	result.Features = Features{
		PromptCaching:     base.Features.PromptCaching || override.Features.PromptCaching,
		PDFs:              base.Features.PDFs || override.Features.PDFs,
		Output128k:        base.Features.Output128k || override.Features.Output128k,
		ExtendedCacheTTL:  base.Features.ExtendedCacheTTL || override.Features.ExtendedCacheTTL,
		MCPClient:         base.Features.MCPClient || override.Features.MCPClient,
		CodeExecution:     base.Features.CodeExecution || override.Features.CodeExecution,
		ContextManagement: base.Features.ContextManagement || override.Features.ContextManagement,
	}

	result.Tools = concat(base.Tools, override.Tools)

	if override.Logging.Level != "" {
		result.Logging.Level = override.Logging.Level
	}
	return &result
}

func concat[T any](a, b []T) []T {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	return slices.Concat(a, b)
}
