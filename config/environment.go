package config

import "os"

// Environment variables consulted by ApplyEnvironment.
const (
	EnvAPIKey   = "ANTHROPIC_API_KEY"
	EnvEndpoint = "ANTHROPIC_ENDPOINT"
	EnvLogLevel = "BETAS_LOG_LEVEL"
)

// ApplyEnvironment fills values left blank by the configuration files from
// the environment. Values set in files win.
func (c *Config) ApplyEnvironment() {
	if c.Anthropic.APIKey == "" {
		c.Anthropic.APIKey = os.Getenv(EnvAPIKey)
	}
	if c.Anthropic.Endpoint == "" {
		c.Anthropic.Endpoint = os.Getenv(EnvEndpoint)
	}
	if c.Logging.Level == "" {
		c.Logging.Level = os.Getenv(EnvLogLevel)
	}
}
