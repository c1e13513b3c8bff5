package handlers

import (
	"context"

	"github.com/vanshika68-byb/before-you-buy-mvp/internal/models"
)

// Recommender runs the selfie-to-products pipeline.
type Recommender interface {
	Recommend(ctx context.Context, imageBase64 string, profile *models.SkinProfile) models.RecommendationResult
}

// RecommendHandler handles image-based recommendation requests.
type RecommendHandler struct {
	svc Recommender
}

// NewRecommendHandler creates a new recommend handler.
func NewRecommendHandler(svc Recommender) *RecommendHandler {
	return &RecommendHandler{svc: svc}
}

// RecommendInput represents a recommendation request.
type RecommendInput struct {
	Body struct {
		ImageBase64 string              `json:"image_base64" doc:"Selfie as a base64 payload or data URL"`
		SkinProfile *models.SkinProfile `json:"skin_profile" doc:"Shopping profile: category, concern, budget, constraints"`
	}
}

// RecommendOutput represents a recommendation response.
type RecommendOutput struct {
	Body models.RecommendationResult
}

// Recommend analyzes the submitted selfie and recommends products. Like
// Analyze, failures degrade into a shaped body rather than an error status.
func (h *RecommendHandler) Recommend(ctx context.Context, input *RecommendInput) (*RecommendOutput, error) {
	result := h.svc.Recommend(ctx, input.Body.ImageBase64, input.Body.SkinProfile)
	return &RecommendOutput{Body: result}, nil
}
