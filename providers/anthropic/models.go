package anthropic

import "strings"

const (
	// Claude 3.5 models
	ModelClaude35Haiku20241022  = "claude-3-5-haiku-20241022"
	ModelClaude35Sonnet20241022 = "claude-3-5-sonnet-20241022"
	ModelClaude37Sonnet20250219 = "claude-3-7-sonnet-20250219"

	// Claude 4 models
	ModelClaudeSonnet420250514 = "claude-sonnet-4-20250514"
	ModelClaudeOpus420250514   = "claude-opus-4-20250514"
	ModelClaudeOpus4120250805  = "claude-opus-4-1-20250805"

	// Claude 4.5 models (dated)
	ModelClaudeHaiku4520251001  = "claude-haiku-4-5-20251001"
	ModelClaudeSonnet4520250929 = "claude-sonnet-4-5-20250929"
	ModelClaudeOpus4520251101   = "claude-opus-4-5-20251101"

	// Claude 4.5 models (latest, without date suffix)
	ModelClaudeHaiku45  = "claude-haiku-4-5"
	ModelClaudeSonnet45 = "claude-sonnet-4-5"
	ModelClaudeOpus45   = "claude-opus-4-5"

	// Claude 4.6 models
	ModelClaudeOpus46 = "claude-opus-4-6"
)

// ComputerUseVersionForModel returns the computer use tool epoch a model
// was trained on, or ComputerUseNone for models without computer use
// support or that are not recognized.
func ComputerUseVersionForModel(model string) ComputerUseVersion {
	switch {
	case strings.HasPrefix(model, "claude-3-5-sonnet"):
		return ComputerUse20241022
	case strings.HasPrefix(model, "claude-3-7-sonnet"),
		strings.HasPrefix(model, "claude-sonnet-4"),
		strings.HasPrefix(model, "claude-opus-4"),
		strings.HasPrefix(model, "claude-haiku-4"):
		return ComputerUse20250124
	default:
		return ComputerUseNone
	}
}
