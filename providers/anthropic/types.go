package anthropic

import (
	"encoding/json"

	"github.com/deepnoodle-ai/betaheaders/llm"
)

type CacheControl struct {
	Type string `json:"type"`
	TTL  string `json:"ttl,omitempty"`
}

type ContentSource struct {
	Type      string `json:"type"`
	MediaType string `json:"media_type,omitempty"`
	Data      string `json:"data,omitempty"`
	URL       string `json:"url,omitempty"`
	FileID    string `json:"file_id,omitempty"`
}

type ContentBlock struct {
	Type         string          `json:"type"`
	Text         string          `json:"text,omitempty"`
	Source       *ContentSource  `json:"source,omitempty"`
	Title        string          `json:"title,omitempty"`
	ID           string          `json:"id,omitempty"`
	Name         string          `json:"name,omitempty"`
	Input        json.RawMessage `json:"input,omitempty"`
	ToolUseID    string          `json:"tool_use_id,omitempty"`
	Content      json.RawMessage `json:"content,omitempty"`
	CacheControl *CacheControl   `json:"cache_control,omitempty"`
}

type Message struct {
	Role    string         `json:"role"`
	Content []ContentBlock `json:"content"`
}

// UnmarshalJSON accepts content given either as a string or as an array of
// content blocks.
func (m *Message) UnmarshalJSON(data []byte) error {
	var raw struct {
		Role    string          `json:"role"`
		Content json.RawMessage `json:"content"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	m.Role = raw.Role
	m.Content = nil
	if len(raw.Content) == 0 || string(raw.Content) == "null" {
		return nil
	}
	var text string
	if err := json.Unmarshal(raw.Content, &text); err == nil {
		m.Content = []ContentBlock{{Type: "text", Text: text}}
		return nil
	}
	return json.Unmarshal(raw.Content, &m.Content)
}

// Request is a Messages API request body. Top-level fields without a
// dedicated field, such as tool_choice or thinking, are kept in Extra and
// written back out unchanged.
type Request struct {
	Model       string               `json:"model"`
	Messages    []Message            `json:"messages"`
	MaxTokens   int                  `json:"max_tokens"`
	System      []ContentBlock       `json:"system,omitempty"`
	Temperature *float64             `json:"temperature,omitempty"`
	Tools       []llm.ToolDescriptor `json:"tools,omitempty"`
	MCPServers  []map[string]any     `json:"mcp_servers,omitempty"`
	Extra       map[string]any       `json:"-"`
}

type requestFields Request

// UnmarshalJSON accepts a system prompt given either as a string or as an
// array of content blocks.
func (r *Request) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	system, hasSystem := raw["system"]
	delete(raw, "system")
	known, err := json.Marshal(raw)
	if err != nil {
		return err
	}
	var fields requestFields
	if err := json.Unmarshal(known, &fields); err != nil {
		return err
	}
	*r = Request(fields)
	if hasSystem {
		if r.System, err = decodeSystem(system); err != nil {
			return err
		}
	}
	for key, value := range raw {
		if requestKeys[key] {
			continue
		}
		var v any
		if err := json.Unmarshal(value, &v); err != nil {
			return err
		}
		if r.Extra == nil {
			r.Extra = make(map[string]any)
		}
		r.Extra[key] = v
	}
	return nil
}

// MarshalJSON writes the declared fields followed by Extra. Declared fields
// win over Extra entries with the same key.
func (r Request) MarshalJSON() ([]byte, error) {
	known, err := json.Marshal(requestFields(r))
	if err != nil {
		return nil, err
	}
	if len(r.Extra) == 0 {
		return known, nil
	}
	out := make(map[string]any, len(r.Extra)+len(requestKeys))
	for key, value := range r.Extra {
		out[key] = value
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(known, &fields); err != nil {
		return nil, err
	}
	for key, value := range fields {
		out[key] = value
	}
	return json.Marshal(out)
}

var requestKeys = map[string]bool{
	"model":       true,
	"messages":    true,
	"max_tokens":  true,
	"system":      true,
	"temperature": true,
	"tools":       true,
	"mcp_servers": true,
}

func decodeSystem(data json.RawMessage) ([]ContentBlock, error) {
	if len(data) == 0 || string(data) == "null" {
		return nil, nil
	}
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		if text == "" {
			return nil, nil
		}
		return []ContentBlock{{Type: "text", Text: text}}, nil
	}
	var blocks []ContentBlock
	if err := json.Unmarshal(data, &blocks); err != nil {
		return nil, err
	}
	return blocks, nil
}

type Usage struct {
	InputTokens              int `json:"input_tokens"`
	OutputTokens             int `json:"output_tokens"`
	CacheCreationInputTokens int `json:"cache_creation_input_tokens,omitempty"`
	CacheReadInputTokens     int `json:"cache_read_input_tokens,omitempty"`
}

type Response struct {
	ID           string         `json:"id"`
	Type         string         `json:"type"`
	Role         string         `json:"role"`
	Model        string         `json:"model"`
	Content      []ContentBlock `json:"content"`
	StopReason   string         `json:"stop_reason"`
	StopSequence *string        `json:"stop_sequence"`
	Usage        Usage          `json:"usage"`
}

// Text returns the concatenated text content of the response.
func (r *Response) Text() string {
	var text string
	for _, block := range r.Content {
		if block.Type == "text" {
			text += block.Text
		}
	}
	return text
}
