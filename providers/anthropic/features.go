package anthropic

// Beta feature tokens sent in the anthropic-beta header.
const (
	// Computer use tool beta headers
	// https://docs.anthropic.com/en/docs/agents-and-tools/computer-use
	FeatureComputerUse20241022 = "computer-use-2024-10-22" // computer_20241022, bash_20241022, text_editor_20241022
	FeatureComputerUse20250124 = "computer-use-2025-01-24" // computer_20250124, bash_20250124, text_editor_20250124

	FeaturePromptCaching = "prompt-caching-2024-07-31"
	FeaturePDFs          = "pdfs-2024-09-25"

	// https://docs.anthropic.com/en/docs/build-with-claude/extended-thinking?q=extended+output#extended-output-capabilities-beta
	FeatureOutput128k        = "output-128k-2025-02-19"
	FeatureExtendedCache     = "extended-cache-ttl-2025-04-11"
	FeatureMCPClient         = "mcp-client-2025-04-04"
	FeatureContextManagement = "context-management-2025-06-27"

	// Code execution tool beta headers
	// https://docs.anthropic.com/en/docs/agents-and-tools/tool-use/code-execution-tool
	FeatureCodeExecution       = "code-execution-2025-08-25" // code_execution_20250825
	FeatureCodeExecutionLegacy = "code-execution-2025-05-22" // code_execution_20250522, sent as an extra token
)

// Header names.
const (
	HeaderBeta        = "anthropic-beta"
	HeaderVersion     = "anthropic-version"
	HeaderAPIKey      = "x-api-key"
	HeaderContentType = "content-type"
	HeaderAccept      = "accept"
)

// BetaDelimiter separates tokens in the anthropic-beta header value.
const BetaDelimiter = ","
