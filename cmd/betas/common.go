package main

import (
	"context"
	"fmt"

	"github.com/deepnoodle-ai/betaheaders/config"
	"github.com/deepnoodle-ai/betaheaders/log"
	"github.com/deepnoodle-ai/wonton/cli"
)

// environment is the configuration and logger shared by every command.
type environment struct {
	config *config.Config
	logger log.Logger
}

func loadEnvironment(ctx *cli.Context, toolPatterns []string) (*environment, error) {
	return newEnvironment(ctx.String("config"), ctx.String("log-level"), toolPatterns)
}

// newEnvironment loads the configuration, fills blanks from the
// environment and appends the tools matched by toolPatterns. The log level
// flag wins over the configured level, and the result becomes the default
// level for loggers created without one.
func newEnvironment(configPath, logLevel string, toolPatterns []string) (*environment, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.ApplyEnvironment()

	if len(toolPatterns) > 0 {
		tools, err := config.LoadTools(toolPatterns...)
		if err != nil {
			return nil, fmt.Errorf("failed to load tools: %w", err)
		}
		cfg.Tools = append(cfg.Tools, tools...)
	}

	if logLevel == "" {
		logLevel = cfg.Logging.Level
	}
	level := log.GetDefaultLevel()
	if logLevel != "" {
		level = log.LevelFromString(logLevel)
	}
	log.SetDefaultLevel(level)
	return &environment{
		config: cfg,
		logger: log.New(level),
	}, nil
}

// withLogger returns a context carrying the environment's logger.
func (e *environment) withLogger(ctx context.Context) context.Context {
	return log.WithLogger(ctx, e.logger)
}

// redactKey hides all but the edges of an API key.
func redactKey(key string) string {
	if key == "" {
		return ""
	}
	if len(key) <= 12 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
