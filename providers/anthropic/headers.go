package anthropic

import (
	"net/http"
	"slices"
	"sort"
	"strings"
)

// HeaderOptions lists the request characteristics that decide which beta
// features are negotiated. Every combination is valid.
type HeaderOptions struct {
	// Version is the anthropic-version header value. Defaults to
	// DefaultVersion.
	Version string

	// ComputerUse is the computer use version required by the request's
	// tools, usually the result of ResolveComputerUse.
	ComputerUse ComputerUseVersion

	PromptCaching     bool
	PDFs              bool
	Output128k        bool
	ExtendedCacheTTL  bool
	MCPClient         bool
	CodeExecution     bool
	ContextManagement bool

	// Extra tokens are appended after all recognized features. Empty and
	// repeated tokens are dropped.
	Extra []string

	// Vertex indicates the request is routed through Vertex AI, which
	// authenticates differently and rejects the anthropic-beta header.
	Vertex bool
}

// Union returns options with every feature enabled in either o or other.
// The newer computer use version wins, extra tokens are concatenated, and a
// non-empty Version in other overrides the one in o.
func (o HeaderOptions) Union(other HeaderOptions) HeaderOptions {
	u := o
	if other.Version != "" {
		u.Version = other.Version
	}
	u.ComputerUse = max(o.ComputerUse, other.ComputerUse)
	u.PromptCaching = o.PromptCaching || other.PromptCaching
	u.PDFs = o.PDFs || other.PDFs
	u.Output128k = o.Output128k || other.Output128k
	u.ExtendedCacheTTL = o.ExtendedCacheTTL || other.ExtendedCacheTTL
	u.MCPClient = o.MCPClient || other.MCPClient
	u.CodeExecution = o.CodeExecution || other.CodeExecution
	u.ContextManagement = o.ContextManagement || other.ContextManagement
	u.Extra = append(slices.Clone(o.Extra), other.Extra...)
	u.Vertex = o.Vertex || other.Vertex
	return u
}

// HeaderSet maps header names to values.
type HeaderSet map[string]string

// Beta returns the anthropic-beta value and whether it is present.
func (h HeaderSet) Beta() (string, bool) {
	v, ok := h[HeaderBeta]
	return v, ok
}

// Apply sets every header on the request, replacing existing values.
func (h HeaderSet) Apply(req *http.Request) {
	if req == nil {
		return
	}
	if req.Header == nil {
		req.Header = http.Header{}
	}
	for name, value := range h {
		req.Header.Set(name, value)
	}
}

// Names returns the header names in sorted order.
func (h HeaderSet) Names() []string {
	names := make([]string, 0, len(h))
	for name := range h {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// BetaFeatures returns the beta tokens that apply to the options, in the
// order they are sent: computer use, prompt caching, PDFs, then the
// remaining recognized features, then any extra tokens.
func BetaFeatures(opts HeaderOptions) []string {
	var betas []string
	if token := opts.ComputerUse.Token(); token != "" {
		betas = append(betas, token)
	}
	flags := []struct {
		set   bool
		token string
	}{
		{opts.PromptCaching, FeaturePromptCaching},
		{opts.PDFs, FeaturePDFs},
		{opts.Output128k, FeatureOutput128k},
		{opts.ExtendedCacheTTL, FeatureExtendedCache},
		{opts.MCPClient, FeatureMCPClient},
		{opts.CodeExecution, FeatureCodeExecution},
		{opts.ContextManagement, FeatureContextManagement},
	}
	for _, flag := range flags {
		if flag.set {
			betas = append(betas, flag.token)
		}
	}
	for _, token := range opts.Extra {
		token = strings.TrimSpace(token)
		if token == "" || slices.Contains(betas, token) {
			continue
		}
		betas = append(betas, token)
	}
	return betas
}

// AssembleHeaders builds the headers for an Anthropic Messages request. The
// API key is passed through unvalidated. The anthropic-beta header is only
// present when at least one beta feature applies.
func AssembleHeaders(apiKey string, opts HeaderOptions) HeaderSet {
	version := opts.Version
	if version == "" {
		version = DefaultVersion
	}
	headers := HeaderSet{
		HeaderVersion:     version,
		HeaderContentType: "application/json",
		HeaderAccept:      "application/json",
	}
	if opts.Vertex {
		return headers
	}
	headers[HeaderAPIKey] = apiKey
	if beta := opts.BetaHeader(); beta != "" {
		headers[HeaderBeta] = beta
	}
	return headers
}

// Betas returns the beta tokens sent for the options. Requests routed
// through Vertex send none.
func (o HeaderOptions) Betas() []string {
	if o.Vertex {
		return nil
	}
	return BetaFeatures(o)
}

// BetaHeader returns the anthropic-beta value sent for the options, or an
// empty string when the header is omitted.
func (o HeaderOptions) BetaHeader() string {
	return strings.Join(o.Betas(), BetaDelimiter)
}

// ParseBetaHeader splits an anthropic-beta value into its tokens.
func ParseBetaHeader(value string) []string {
	var tokens []string
	for _, part := range strings.Split(value, BetaDelimiter) {
		if p := strings.TrimSpace(part); p != "" {
			tokens = append(tokens, p)
		}
	}
	return tokens
}
