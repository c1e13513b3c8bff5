package handlers

import (
	"context"

	"github.com/vanshika68-byb/before-you-buy-mvp/internal/models"
)

// ProductAnalyzer runs the URL analysis pipeline.
type ProductAnalyzer interface {
	Analyze(ctx context.Context, url string, profile *models.SkinProfile) models.AnalysisResult
}

// AnalyzeHandler handles product URL analysis requests.
type AnalyzeHandler struct {
	svc ProductAnalyzer
}

// NewAnalyzeHandler creates a new analyze handler.
func NewAnalyzeHandler(svc ProductAnalyzer) *AnalyzeHandler {
	return &AnalyzeHandler{svc: svc}
}

// AnalyzeInput represents an analyze request.
type AnalyzeInput struct {
	Body struct {
		URL         string              `json:"url" doc:"Product page URL to analyze"`
		SkinProfile *models.SkinProfile `json:"skin_profile,omitempty" doc:"Optional skin profile for a personalized verdict"`
	}
}

// AnalyzeOutput represents an analyze response.
type AnalyzeOutput struct {
	Body models.AnalysisResult
}

// Analyze runs the product analysis pipeline. Degraded runs still answer
// 200 with a fully-shaped body carrying an error string, so clients render
// one shape everywhere.
func (h *AnalyzeHandler) Analyze(ctx context.Context, input *AnalyzeInput) (*AnalyzeOutput, error) {
	result := h.svc.Analyze(ctx, input.Body.URL, input.Body.SkinProfile)
	return &AnalyzeOutput{Body: result}, nil
}
