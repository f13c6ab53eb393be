// Package providers contains types shared by provider clients.
//
// Individual providers are in subpackages:
//
//   - [github.com/deepnoodle-ai/betaheaders/providers/anthropic] - Anthropic
//     Messages API and its beta feature negotiation
package providers
