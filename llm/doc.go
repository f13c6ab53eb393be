// Package llm defines the provider-neutral tool types shared by the rest of
// the module.
//
//   - [ToolDescriptor] is one entry of a request's tools array, decoded
//     defensively from JSON or YAML.
//   - [Tool] and [ToolConfiguration] let typed tools render their own
//     descriptor for a given provider.
//
// Most users interact with this package through
// [github.com/deepnoodle-ai/betaheaders/providers/anthropic].
package llm
