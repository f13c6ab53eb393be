package config

import (
	"github.com/deepnoodle-ai/betaheaders/llm"
	"github.com/deepnoodle-ai/betaheaders/providers/anthropic"
)

// Config is the serializable configuration of the betas command and the
// MCP server.
type Config struct {
	Anthropic AnthropicConfig      `yaml:"anthropic,omitempty" json:"anthropic,omitempty"`
	Features  Features             `yaml:"features,omitempty" json:"features,omitempty"`
	Tools     []llm.ToolDescriptor `yaml:"tools,omitempty" json:"tools,omitempty"`
	Logging   Logging              `yaml:"logging,omitempty" json:"logging,omitempty"`
}

// AnthropicConfig configures the Anthropic provider.
type AnthropicConfig struct {
	APIKey     string   `yaml:"api_key,omitempty" json:"api_key,omitempty"`
	Endpoint   string   `yaml:"endpoint,omitempty" json:"endpoint,omitempty"`
	Version    string   `yaml:"version,omitempty" json:"version,omitempty"`
	MaxRetries *int     `yaml:"max_retries,omitempty" json:"max_retries,omitempty"`
	Vertex     bool     `yaml:"vertex,omitempty" json:"vertex,omitempty"`
	ExtraBetas []string `yaml:"extra_betas,omitempty" json:"extra_betas,omitempty"`
}

// Features force beta features on regardless of what a request contains.
type Features struct {
	PromptCaching     bool `yaml:"prompt_caching,omitempty" json:"prompt_caching,omitempty"`
	PDFs              bool `yaml:"pdfs,omitempty" json:"pdfs,omitempty"`
	Output128k        bool `yaml:"output_128k,omitempty" json:"output_128k,omitempty"`
	ExtendedCacheTTL  bool `yaml:"extended_cache_ttl,omitempty" json:"extended_cache_ttl,omitempty"`
	MCPClient         bool `yaml:"mcp_client,omitempty" json:"mcp_client,omitempty"`
	CodeExecution     bool `yaml:"code_execution,omitempty" json:"code_execution,omitempty"`
	ContextManagement bool `yaml:"context_management,omitempty" json:"context_management,omitempty"`
}

type Logging struct {
	Level string `yaml:"level,omitempty" json:"level,omitempty"`
}

// HeaderOptions returns the forced features as header options.
func (f Features) HeaderOptions() anthropic.HeaderOptions {
	return anthropic.HeaderOptions{
		PromptCaching:     f.PromptCaching,
		PDFs:              f.PDFs,
		Output128k:        f.Output128k,
		ExtendedCacheTTL:  f.ExtendedCacheTTL,
		MCPClient:         f.MCPClient,
		CodeExecution:     f.CodeExecution,
		ContextManagement: f.ContextManagement,
	}
}

// HeaderOptions returns the header options described by the configuration:
// the computer use version of the configured tools plus the forced features.
func (c *Config) HeaderOptions() anthropic.HeaderOptions {
	opts := c.Features.HeaderOptions()
	opts.Version = c.Anthropic.Version
	opts.ComputerUse = anthropic.ResolveComputerUse(c.Tools)
	opts.Extra = c.Anthropic.ExtraBetas
	opts.Vertex = c.Anthropic.Vertex
	return opts
}

// ProviderOptions returns the options used to construct an Anthropic
// provider from the configuration. Unset values keep provider defaults.
func (c *Config) ProviderOptions() []anthropic.Option {
	var opts []anthropic.Option
	if c.Anthropic.APIKey != "" {
		opts = append(opts, anthropic.WithAPIKey(c.Anthropic.APIKey))
	}
	if c.Anthropic.Endpoint != "" {
		opts = append(opts, anthropic.WithEndpoint(c.Anthropic.Endpoint))
	}
	if c.Anthropic.Version != "" {
		opts = append(opts, anthropic.WithVersion(c.Anthropic.Version))
	}
	if c.Anthropic.MaxRetries != nil {
		opts = append(opts, anthropic.WithMaxRetries(*c.Anthropic.MaxRetries))
	}
	if c.Anthropic.Vertex {
		opts = append(opts, anthropic.WithVertex(true))
	}
	if len(c.Anthropic.ExtraBetas) > 0 {
		opts = append(opts, anthropic.WithExtraBetas(c.Anthropic.ExtraBetas...))
	}
	if c.Features != (Features{}) {
		opts = append(opts, anthropic.WithFeatures(c.Features.HeaderOptions()))
	}
	return opts
}
