// Package service contains the business logic layer.
package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/vanshika68-byb/before-you-buy-mvp/internal/fetch"
	"github.com/vanshika68-byb/before-you-buy-mvp/internal/llm"
	"github.com/vanshika68-byb/before-you-buy-mvp/internal/models"
	"github.com/vanshika68-byb/before-you-buy-mvp/internal/normalize"
	"github.com/vanshika68-byb/before-you-buy-mvp/internal/prompt"
)

// User-facing error strings carried inside degraded results. The HTTP status
// stays 200; these are the only signal that the analysis fell short.
const (
	ErrMsgNoAPIKey           = "API key not configured."
	ErrMsgProcessFailed      = "Unable to process request."
	ErrMsgAnalysisIncomplete = "Unable to complete analysis."
	ErrMsgInvalidResponse    = "Invalid model response."
)

// toolFailureMessage is handed to the model when a page fetch fails, so the
// analysis can continue on training knowledge at reduced certainty.
const toolFailureMessage = "Error: Unable to retrieve page content. Analyze based on your training knowledge, and set certainty_level to 'low'."

// maxToolRounds caps the tool-calling loop. Each round may carry several
// tool calls.
const maxToolRounds = 3

// ChatCompleter is the slice of the LLM client the analysis needs.
type ChatCompleter interface {
	Complete(ctx context.Context, req llm.Request) (*llm.TurnResult, error)
}

// PageFetcher is the slice of the content fetcher the analysis needs.
type PageFetcher interface {
	Fetch(ctx context.Context, url string) (*fetch.Page, error)
}

// AnalysisService runs the URL analysis pipeline: fetch the page, drive the
// tool-calling conversation, and normalize the model's answer onto the
// response contract.
type AnalysisService struct {
	model   ChatCompleter
	fetcher PageFetcher
	logger  *slog.Logger

	modelName string
	hasKey    bool
}

// AnalysisServiceConfig holds dependencies for creating an AnalysisService.
type AnalysisServiceConfig struct {
	Model     ChatCompleter
	Fetcher   PageFetcher
	ModelName string
	HasAPIKey bool
	Logger    *slog.Logger
}

// NewAnalysisService creates the URL analysis service.
func NewAnalysisService(cfg AnalysisServiceConfig) *AnalysisService {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &AnalysisService{
		model:     cfg.Model,
		fetcher:   cfg.Fetcher,
		logger:    logger,
		modelName: cfg.ModelName,
		hasKey:    cfg.HasAPIKey,
	}
}

// Analyze runs the full pipeline for one product URL. It always returns a
// fully-shaped result; degraded runs carry an Error string instead of
// failing.
func (s *AnalysisService) Analyze(ctx context.Context, url string, profile *models.SkinProfile) models.AnalysisResult {
	if strings.TrimSpace(url) == "" {
		return normalize.Fallback(normalize.FallbackContext{})
	}

	fc := normalize.FallbackContext{ProductName: normalize.ProductNameFromURL(url)}

	if !s.hasKey {
		out := normalize.Fallback(fc)
		out.Error = ErrMsgNoAPIKey
		return out
	}

	messages := []llm.Message{
		llm.System(prompt.System(profile)),
		llm.User(prompt.AnalyzeUser(url)),
	}

	result, err := s.complete(ctx, messages)
	if err != nil {
		s.logger.Error("analysis request failed", "url", url, "error", err)
		out := normalize.Fallback(fc)
		out.Error = ErrMsgProcessFailed
		return out
	}

	for round := 0; result.FinishReason == llm.FinishToolCalls && round < maxToolRounds; round++ {
		calls := result.Message.ToolCalls
		if len(calls) == 0 {
			break
		}
		messages = append(messages, *result.Message)

		for _, call := range calls {
			messages = append(messages, s.runTool(ctx, call, url, &fc))
		}

		result, err = s.complete(ctx, messages)
		if err != nil {
			s.logger.Error("analysis continuation failed", "url", url, "error", err)
			out := normalize.Fallback(fc)
			out.Error = ErrMsgAnalysisIncomplete
			return out
		}
	}

	content := result.Message.Content
	if content == "" {
		out := normalize.Fallback(fc)
		out.Error = ErrMsgInvalidResponse
		return out
	}

	doc, ok := extractObject(content)
	if !ok {
		s.logger.Warn("model output was not a JSON object", "url", url, "preview", preview(content))
		out := normalize.Fallback(fc)
		out.Error = ErrMsgInvalidResponse
		return out
	}
	if errMsg := modelError(doc); errMsg != "" {
		out := normalize.Fallback(fc)
		out.Error = errMsg
		return out
	}

	mapped := normalize.Analysis(doc, fc)
	if mapped.Verdict != nil {
		s.logger.Info("analysis complete", "url", url, "signal", mapped.Verdict.Signal)
	} else {
		s.logger.Info("analysis complete without verdict", "url", url)
	}
	return mapped
}

func (s *AnalysisService) complete(ctx context.Context, messages []llm.Message) (*llm.TurnResult, error) {
	return s.model.Complete(ctx, llm.Request{
		Model:       s.modelName,
		Messages:    messages,
		Tools:       []llm.Tool{llm.FetchURLTool()},
		Temperature: 0.1,
	})
}

// runTool executes one tool call and returns its tool message. Only
// fetch_url is known; the requested URL defaults to the product URL when the
// arguments do not parse. The first discovered page image is kept for the
// final result.
func (s *AnalysisService) runTool(ctx context.Context, call llm.ToolCall, productURL string, fc *normalize.FallbackContext) llm.Message {
	if call.Function.Name != llm.FetchURLToolName {
		return llm.ToolResult(call.ID, "Error: Unknown tool.")
	}

	target := productURL
	var args struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal([]byte(call.Function.Arguments), &args); err == nil && args.URL != "" {
		target = args.URL
	}

	s.logger.Debug("running fetch_url tool", "target", target)
	page, err := s.fetcher.Fetch(ctx, target)
	if err != nil {
		s.logger.Warn("fetch_url tool failed", "target", target, "error", err)
		return llm.ToolResult(call.ID, toolFailureMessage)
	}

	if fc.ImageURL == "" && page.ImageURL != "" {
		fc.ImageURL = page.ImageURL
	}
	return llm.ToolResult(call.ID, page.FocusedExcerpt)
}

func preview(s string) string {
	if len(s) > 200 {
		return s[:200]
	}
	return s
}
