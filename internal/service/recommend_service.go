package service

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	"github.com/vanshika68-byb/before-you-buy-mvp/internal/llm"
	"github.com/vanshika68-byb/before-you-buy-mvp/internal/models"
	"github.com/vanshika68-byb/before-you-buy-mvp/internal/normalize"
	"github.com/vanshika68-byb/before-you-buy-mvp/internal/prompt"
)

// User-facing error strings for the recommendation flow.
const (
	ErrMsgMissingInput    = "Missing image or skin profile."
	ErrMsgImageAnalysis   = "Image analysis failed."
	ErrMsgSkinParse       = "Could not parse skin analysis."
	ErrMsgRecommendFailed = "Recommendation generation failed."
	ErrMsgRecommendParse  = "Could not parse recommendations."
)

// Token budgets for the two model calls. The skin read is a short document;
// six detailed recommendations need room.
const (
	skinAnalysisMaxTokens   = 600
	recommendationMaxTokens = 4000
)

var dataURLMimeRe = regexp.MustCompile(`^data:(image/[a-zA-Z+]+);base64,`)

// RecommendService turns a selfie plus a shopping profile into a skin
// analysis and product recommendations, via two vision-model calls.
type RecommendService struct {
	model  ChatCompleter
	logger *slog.Logger

	modelName string
	hasKey    bool
}

// RecommendServiceConfig holds dependencies for creating a RecommendService.
type RecommendServiceConfig struct {
	Model     ChatCompleter
	ModelName string
	HasAPIKey bool
	Logger    *slog.Logger
}

// NewRecommendService creates the image recommendation service.
func NewRecommendService(cfg RecommendServiceConfig) *RecommendService {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &RecommendService{
		model:     cfg.Model,
		logger:    logger,
		modelName: cfg.ModelName,
		hasKey:    cfg.HasAPIKey,
	}
}

// Recommend runs the two-step flow: read the skin from the image, then
// generate recommendations for the profile's product category. Like the URL
// pipeline it always returns a fully-shaped result.
func (s *RecommendService) Recommend(ctx context.Context, imageBase64 string, profile *models.SkinProfile) models.RecommendationResult {
	if !s.hasKey {
		return normalize.RecommendFallback(ErrMsgNoAPIKey)
	}
	if imageBase64 == "" || profile == nil || profile.IsZero() {
		return normalize.RecommendFallback(ErrMsgMissingInput)
	}

	imageURL := normalizeImageDataURL(imageBase64)

	s.logger.Info("analysing skin from image")
	analysisTurn, err := s.model.Complete(ctx, llm.Request{
		Model: s.modelName,
		Messages: []llm.Message{
			llm.System(prompt.SkinAnalysisSystem()),
			llm.UserWithImage(prompt.SkinAnalysisUser(), imageURL),
		},
		Temperature: 0.15,
		MaxTokens:   skinAnalysisMaxTokens,
		JSONOnly:    true,
	})
	if err != nil {
		s.logger.Error("image analysis failed", "error", err)
		return normalize.RecommendFallback(ErrMsgImageAnalysis)
	}

	skinDoc, ok := extractObject(analysisTurn.Message.Content)
	if !ok {
		s.logger.Error("skin analysis parse failed", "preview", preview(analysisTurn.Message.Content))
		return normalize.RecommendFallback(ErrMsgSkinParse)
	}
	skinAnalysis := normalize.SkinAnalysisFrom(skinDoc)

	s.logger.Info("generating product recommendations",
		"skin_type", skinAnalysis.SkinType,
		"category", profile.ProductCategory,
	)
	recTurn, err := s.model.Complete(ctx, llm.Request{
		Model: s.modelName,
		Messages: []llm.Message{
			llm.System(prompt.Recommendation(&skinAnalysis, profile)),
			llm.User(prompt.RecommendationUser()),
		},
		Temperature: 0.15,
		MaxTokens:   recommendationMaxTokens,
		JSONOnly:    true,
	})
	if err != nil {
		s.logger.Error("recommendation generation failed", "error", err)
		return normalize.RecommendFallback(ErrMsgRecommendFailed)
	}

	recDoc, ok := extractObject(recTurn.Message.Content)
	if !ok {
		s.logger.Error("recommendation parse failed", "preview", preview(recTurn.Message.Content))
		return normalize.RecommendFallback(ErrMsgRecommendParse)
	}
	recs, ok := normalize.RecommendationsFrom(recDoc)
	if !ok {
		s.logger.Error("recommendations array missing", "preview", preview(recDoc))
		return normalize.RecommendFallback(ErrMsgRecommendParse)
	}

	s.logger.Info("recommendations complete", "products", len(recs))
	return models.RecommendationResult{
		SkinAnalysis:    skinAnalysis,
		Recommendations: recs,
	}
}

// normalizeImageDataURL accepts either a bare base64 payload or a full data
// URL and returns a well-formed data URL. Unknown payloads are assumed to be
// JPEG.
func normalizeImageDataURL(imageBase64 string) string {
	if m := dataURLMimeRe.FindStringSubmatch(imageBase64); m != nil {
		return imageBase64
	}
	payload := imageBase64
	if i := strings.Index(payload, ","); i != -1 {
		payload = payload[i+1:]
	}
	return "data:image/jpeg;base64," + payload
}
