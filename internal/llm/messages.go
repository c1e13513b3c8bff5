// Package llm provides a chat-completions client with tool calling and
// vision input.
package llm

import "encoding/json"

// Message roles follow the OpenAI chat-completions wire format.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

// ContentPart is one element of a multimodal user message.
type ContentPart struct {
	Type     string    `json:"type"` // "text" or "image_url"
	Text     string    `json:"text,omitempty"`
	ImageURL *ImageRef `json:"image_url,omitempty"`
}

// ImageRef points at an image, either a remote URL or a data URL.
type ImageRef struct {
	URL    string `json:"url"`
	Detail string `json:"detail,omitempty"`
}

// ToolCall is a tool invocation requested by the model.
type ToolCall struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Function struct {
		Name      string `json:"name"`
		Arguments string `json:"arguments"` // JSON-encoded argument object
	} `json:"function"`
}

// Message is one turn in a conversation. Content is a plain string for text
// messages and a []ContentPart for multimodal messages; custom marshalling
// keeps both shapes on the wire.
type Message struct {
	Role       string
	Content    string
	Parts      []ContentPart
	ToolCalls  []ToolCall
	ToolCallID string
}

// MarshalJSON emits the wire shape the chat-completions API expects for the
// message's role and content kind.
func (m Message) MarshalJSON() ([]byte, error) {
	wire := struct {
		Role       string     `json:"role"`
		Content    any        `json:"content"`
		ToolCalls  []ToolCall `json:"tool_calls,omitempty"`
		ToolCallID string     `json:"tool_call_id,omitempty"`
	}{
		Role:       m.Role,
		ToolCalls:  m.ToolCalls,
		ToolCallID: m.ToolCallID,
	}
	if len(m.Parts) > 0 {
		wire.Content = m.Parts
	} else {
		wire.Content = m.Content
	}
	return json.Marshal(wire)
}

// System creates a system message.
func System(content string) Message {
	return Message{Role: RoleSystem, Content: content}
}

// User creates a plain text user message.
func User(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// UserWithImage creates a multimodal user message carrying text and one
// image. High detail is requested so small ingredient text stays legible.
func UserWithImage(text, imageURL string) Message {
	return Message{
		Role: RoleUser,
		Parts: []ContentPart{
			{Type: "text", Text: text},
			{Type: "image_url", ImageURL: &ImageRef{URL: imageURL, Detail: "high"}},
		},
	}
}

// ToolResult creates a tool message answering the tool call with the given ID.
func ToolResult(toolCallID, content string) Message {
	return Message{Role: RoleTool, ToolCallID: toolCallID, Content: content}
}

// Tool describes a function the model may call.
type Tool struct {
	Type     string `json:"type"`
	Function struct {
		Name        string         `json:"name"`
		Description string         `json:"description"`
		Parameters  map[string]any `json:"parameters"`
	} `json:"function"`
}

// FetchURLToolName is the function name for the page retrieval tool.
const FetchURLToolName = "fetch_url"

// FetchURLTool describes the page retrieval tool offered during analysis.
func FetchURLTool() Tool {
	var t Tool
	t.Type = "function"
	t.Function.Name = FetchURLToolName
	t.Function.Description = "Fetches the text content of a web page. Use this to read the product page, or to look up an ingredient list on another page of the same site."
	t.Function.Parameters = map[string]any{
		"type": "object",
		"properties": map[string]any{
			"url": map[string]any{
				"type":        "string",
				"description": "The URL to fetch",
			},
		},
		"required": []string{"url"},
	}
	return t
}
