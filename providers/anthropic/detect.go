package anthropic

const (
	mediaTypePDF     = "application/pdf"
	extendedCacheTTL = "1h"
)

// DetectFeatures inspects a request and returns the header options implied
// by its content. It resolves the computer use version of the tools, then
// looks for cache_control markers, PDF documents, remote MCP servers and the
// code execution tool. A cache_control marker with a one hour ttl also
// enables the extended cache TTL feature.
func DetectFeatures(req *Request) HeaderOptions {
	var opts HeaderOptions
	if req == nil {
		return opts
	}
	opts.ComputerUse = ResolveComputerUse(req.Tools)
	opts.PromptCaching = isCacheControlSet(req)
	opts.ExtendedCacheTTL = isExtendedCacheTTLSet(req)
	opts.PDFs = isPDFUsed(req)
	opts.MCPClient = len(req.MCPServers) > 0
	for _, tool := range req.Tools {
		switch codeExecutionBeta(tool.Type) {
		case FeatureCodeExecution:
			opts.CodeExecution = true
		case FeatureCodeExecutionLegacy:
			opts.Extra = append(opts.Extra, FeatureCodeExecutionLegacy)
		}
	}
	return opts
}

func isCacheControlSet(req *Request) bool {
	for _, block := range req.System {
		if block.CacheControl != nil {
			return true
		}
	}
	for _, msg := range req.Messages {
		for _, block := range msg.Content {
			if block.CacheControl != nil {
				return true
			}
		}
	}
	for _, tool := range req.Tools {
		if _, ok := tool.Extra["cache_control"]; ok {
			return true
		}
	}
	return false
}

func isExtendedCacheTTLSet(req *Request) bool {
	for _, block := range req.System {
		if block.CacheControl != nil && block.CacheControl.TTL == extendedCacheTTL {
			return true
		}
	}
	for _, msg := range req.Messages {
		for _, block := range msg.Content {
			if block.CacheControl != nil && block.CacheControl.TTL == extendedCacheTTL {
				return true
			}
		}
	}
	for _, tool := range req.Tools {
		if cc, ok := tool.Extra["cache_control"].(map[string]any); ok && cc["ttl"] == extendedCacheTTL {
			return true
		}
	}
	return false
}

func isPDFUsed(req *Request) bool {
	for _, msg := range req.Messages {
		for _, block := range msg.Content {
			if block.Type == "document" && block.Source != nil && block.Source.MediaType == mediaTypePDF {
				return true
			}
		}
	}
	return false
}
