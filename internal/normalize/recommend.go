package normalize

import (
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/vanshika68-byb/before-you-buy-mvp/internal/models"
)

// SkinAnalysisFrom maps a parsed skin-analysis document onto the contract,
// snapping every scale onto its closed set.
func SkinAnalysisFrom(doc string) models.SkinAnalysis {
	root := gjson.Parse(doc)

	tone := root.Get("tone").String()
	if tone == "" {
		tone = "Unknown"
	}

	return models.SkinAnalysis{
		SkinType:          models.SnapSkinType(root.Get("skin_type").String()),
		Concerns:          stringsAt(root, "concerns"),
		Tone:              tone,
		AcneSeverity:      models.SnapSeverity(root.Get("acne_severity").String()),
		Oiliness:          models.SnapLevel(root.Get("oiliness").String(), "moderate"),
		Sensitivity:       models.SnapLevel(root.Get("sensitivity").String(), "low"),
		Hyperpigmentation: models.SnapGrade(root.Get("hyperpigmentation").String()),
		VisibleAging:      models.SnapGrade(root.Get("visible_aging").String()),
		Summary:           root.Get("summary").String(),
	}
}

// RecommendationsFrom reads the recommendations array out of a parsed model
// document. Returns false when the document carries no recommendations
// array at all.
func RecommendationsFrom(doc string) ([]models.ProductRecommendation, bool) {
	node := gjson.Parse(doc).Get("recommendations")
	if !node.IsArray() {
		return nil, false
	}

	out := []models.ProductRecommendation{}
	node.ForEach(func(_, entry gjson.Result) bool {
		rec := models.ProductRecommendation{
			ID:             entry.Get("id").String(),
			Name:           entry.Get("name").String(),
			Brand:          entry.Get("brand").String(),
			Category:       entry.Get("category").String(),
			PriceINR:       int(entry.Get("price_inr").Int()),
			PriceUSD:       int(entry.Get("price_usd").Int()),
			MatchScore:     clampScore(int(entry.Get("match_score").Int())),
			MatchReasons:   stringsAt(entry, "match_reasons"),
			KeyIngredients: stringsAt(entry, "key_ingredients"),
			AvoidIf:        stringsAt(entry, "avoid_if"),
			Texture:        entry.Get("texture").String(),
			FragranceFree:  entry.Get("fragrance_free").Bool(),
			CrueltyFree:    entry.Get("cruelty_free").Bool(),
			Vegan:          entry.Get("vegan").Bool(),
			Links: models.PurchaseLinks{
				Nykaa:   entry.Get("links.nykaa").String(),
				Sephora: entry.Get("links.sephora").String(),
				Amazon:  entry.Get("links.amazon").String(),
				Brand:   entry.Get("links.brand").String(),
			},
			ImagePlaceholderColor: entry.Get("image_placeholder_color").String(),
			Explanation:           entry.Get("explanation").String(),
		}
		if rec.ID == "" {
			rec.ID = fmt.Sprintf("rec_%d", len(out)+1)
		}
		out = append(out, rec)
		return true
	})
	return out, true
}

// RecommendFallback is the fully-shaped result for a failed recommendation
// run.
func RecommendFallback(msg string) models.RecommendationResult {
	return models.RecommendationResult{
		SkinAnalysis: models.SkinAnalysis{
			SkinType:          "normal",
			Concerns:          []string{},
			Tone:              "Unknown",
			AcneSeverity:      "none",
			Oiliness:          "moderate",
			Sensitivity:       "low",
			Hyperpigmentation: "none",
			VisibleAging:      "none",
			Summary:           "Analysis could not be completed.",
		},
		Recommendations: []models.ProductRecommendation{},
		Error:           msg,
	}
}

func clampScore(n int) int {
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}
