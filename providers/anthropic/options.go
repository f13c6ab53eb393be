package anthropic

import (
	"net/http"
	"time"

	"github.com/deepnoodle-ai/betaheaders/log"
)

type Option func(*Provider)

func WithAPIKey(apiKey string) Option {
	return func(p *Provider) {
		p.apiKey = apiKey
	}
}

func WithEndpoint(endpoint string) Option {
	return func(p *Provider) {
		p.endpoint = endpoint
	}
}

func WithClient(client *http.Client) Option {
	return func(p *Provider) {
		p.client = client
	}
}

func WithVersion(version string) Option {
	return func(p *Provider) {
		p.version = version
	}
}

func WithMaxRetries(maxRetries int) Option {
	return func(p *Provider) {
		p.maxRetries = maxRetries
	}
}

func WithBaseWait(baseWait time.Duration) Option {
	return func(p *Provider) {
		p.retryBaseWait = baseWait
	}
}

// WithExtraBetas adds beta tokens to every request, after the detected ones.
func WithExtraBetas(betas ...string) Option {
	return func(p *Provider) {
		p.extraBetas = append(p.extraBetas, betas...)
	}
}

// WithFeatures enables beta features on every request in addition to the
// detected ones. Only the feature flags, ComputerUse and Extra are used.
func WithFeatures(features HeaderOptions) Option {
	return func(p *Provider) {
		features.Version = ""
		features.Vertex = false
		p.features = p.features.Union(features)
	}
}

// WithVertex routes requests through a Vertex AI style endpoint, which does
// not accept the x-api-key or anthropic-beta headers.
func WithVertex(vertex bool) Option {
	return func(p *Provider) {
		p.vertex = vertex
	}
}

func WithLogger(logger log.Logger) Option {
	return func(p *Provider) {
		if logger != nil {
			p.logger = logger
		}
	}
}
