package anthropic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/deepnoodle-ai/betaheaders/log"
	"github.com/deepnoodle-ai/betaheaders/providers"
	"github.com/deepnoodle-ai/wonton/retry"
)

// ProviderName identifies Anthropic when tools render provider-specific
// configuration.
const ProviderName = "anthropic"

var (
	DefaultModel         = ModelClaudeSonnet45
	DefaultEndpoint      = "https://api.anthropic.com/v1/messages"
	DefaultMaxTokens     = 4096
	DefaultClient        = &http.Client{Timeout: 300 * time.Second}
	DefaultMaxRetries    = 6
	DefaultRetryBaseWait = 2 * time.Second
	DefaultRetryMaxWait  = 5 * time.Minute
	DefaultVersion       = "2023-06-01"
)

// Provider sends Messages requests with negotiated beta headers. It is safe
// for concurrent use once constructed.
type Provider struct {
	client        *http.Client
	apiKey        string
	endpoint      string
	version       string
	maxRetries    int
	retryBaseWait time.Duration
	extraBetas    []string
	features      HeaderOptions
	vertex        bool
	logger        log.Logger
}

func New(opts ...Option) *Provider {
	p := &Provider{
		apiKey:        os.Getenv("ANTHROPIC_API_KEY"),
		endpoint:      DefaultEndpoint,
		client:        DefaultClient,
		version:       DefaultVersion,
		maxRetries:    DefaultMaxRetries,
		retryBaseWait: DefaultRetryBaseWait,
		logger:        log.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Provider) Name() string {
	return ProviderName
}

// Options returns the header options negotiated for the request, including
// the provider's configured version, extra betas and routing.
func (p *Provider) Options(req *Request) HeaderOptions {
	opts := DetectFeatures(req).Union(p.features)
	opts.Version = p.version
	opts.Vertex = p.vertex
	opts.Extra = append(opts.Extra, p.extraBetas...)
	return opts
}

// Headers returns the headers that Send attaches to the request.
func (p *Provider) Headers(req *Request) HeaderSet {
	return AssembleHeaders(p.apiKey, p.Options(req))
}

// Send posts the request and decodes the response. Retryable upstream
// failures are retried with exponential backoff.
func (p *Provider) Send(ctx context.Context, r *Request) (*Response, error) {
	if r == nil {
		return nil, fmt.Errorf("no request provided")
	}
	if len(r.Messages) == 0 {
		return nil, fmt.Errorf("no messages provided")
	}
	request := *r
	if request.Model == "" {
		request.Model = DefaultModel
	}
	if request.MaxTokens == 0 {
		request.MaxTokens = DefaultMaxTokens
	}

	body, err := json.Marshal(&request)
	if err != nil {
		return nil, fmt.Errorf("error marshaling request: %w", err)
	}

	headers := p.Headers(&request)
	if betas, ok := headers.Beta(); ok {
		p.logger.Debug("negotiated beta features", "model", request.Model, "betas", betas)
	}

	var result Response
	err = retry.DoSimple(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("error creating request: %w", err)
		}
		headers.Apply(req)
		resp, err := p.client.Do(req)
		if err != nil {
			return fmt.Errorf("error making request: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(resp.Body)
			if resp.StatusCode == http.StatusTooManyRequests {
				p.logger.Warn("rate limit exceeded",
					"status", resp.StatusCode, "body", string(body))
			}
			return providers.NewError(resp.StatusCode, string(body))
		}
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			return fmt.Errorf("error decoding response: %w", err)
		}
		return nil
	}, retry.WithMaxAttempts(p.maxRetries+1), retry.WithBackoff(p.retryBaseWait, DefaultRetryMaxWait))

	if err != nil {
		return nil, err
	}
	if len(result.Content) == 0 {
		return nil, fmt.Errorf("empty response from anthropic api")
	}
	return &result, nil
}
