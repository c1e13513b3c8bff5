package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// Finish reasons reported by the chat-completions API.
const (
	FinishStop      = "stop"
	FinishLength    = "length"
	FinishToolCalls = "tool_calls"
)

// Request describes one chat-completions call.
type Request struct {
	Model       string
	Messages    []Message
	Tools       []Tool
	Temperature float64
	MaxTokens   int

	// JSONOnly requests response_format json_object so the model emits a
	// bare JSON document.
	JSONOnly bool
}

// TurnResult is the model's reply for one call.
type TurnResult struct {
	// Message is the assistant message, carrying either content or tool
	// calls.
	Message *Message

	// FinishReason is "stop", "length", or "tool_calls".
	FinishReason string
}

// Client calls an OpenAI-compatible chat-completions endpoint.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

// Config holds settings for creating a Client.
type Config struct {
	APIKey  string
	BaseURL string // e.g. "https://api.openai.com/v1"
	Timeout time.Duration
	Logger  *slog.Logger
}

// NewClient creates a chat-completions client, filling zero config values
// with defaults.
func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// Complete performs one chat-completions call and returns the assistant's
// reply. Tool call requests come back in the message's ToolCalls with
// FinishReason set to "tool_calls"; the caller runs the tools and calls
// Complete again with the results appended.
func (c *Client) Complete(ctx context.Context, req Request) (*TurnResult, error) {
	body := map[string]any{
		"model":    req.Model,
		"messages": req.Messages,
	}
	if len(req.Tools) > 0 {
		body["tools"] = req.Tools
	}
	if req.Temperature > 0 {
		body["temperature"] = req.Temperature
	}
	if req.MaxTokens > 0 {
		body["max_tokens"] = req.MaxTokens
	}
	if req.JSONOnly {
		body["response_format"] = map[string]string{"type": "json_object"}
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	c.logger.Debug("making chat completion request",
		"model", req.Model,
		"messages", len(req.Messages),
		"tools", len(req.Tools),
		"json_only", req.JSONOnly,
	)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("chat completion API error",
			"status_code", resp.StatusCode,
			"response", string(respBody),
		)
		return nil, fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	return parseResponse(respBody)
}

// parseResponse extracts the assistant message from a chat-completions
// response body.
func parseResponse(body []byte) (*TurnResult, error) {
	var resp struct {
		Choices []struct {
			Message struct {
				Content   string     `json:"content"`
				ToolCalls []ToolCall `json:"tool_calls"`
			} `json:"message"`
			FinishReason string `json:"finish_reason"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("empty response from model")
	}

	choice := resp.Choices[0]
	return &TurnResult{
		Message: &Message{
			Role:      RoleAssistant,
			Content:   choice.Message.Content,
			ToolCalls: choice.Message.ToolCalls,
		},
		FinishReason: choice.FinishReason,
	}, nil
}
