package models

// Skin analysis enum sets for the image-based flow. Closed sets; snapping
// picks the value that claims the least.
const (
	AcneNone     = "none"
	AcneMild     = "mild"
	AcneModerate = "moderate"
	AcneSevere   = "severe"
)

// SnapSkinType coerces a skin type onto the closed set, defaulting to
// "normal".
func SnapSkinType(s string) string {
	switch s {
	case "oily", "dry", "combination", "sensitive", "normal":
		return s
	default:
		return "normal"
	}
}

// SnapSeverity coerces a none/mild/moderate/severe scale, defaulting to
// "none".
func SnapSeverity(s string) string {
	switch s {
	case AcneNone, AcneMild, AcneModerate, AcneSevere:
		return s
	default:
		return AcneNone
	}
}

// SnapLevel coerces a low/moderate/high scale onto the set, falling back to
// the given default.
func SnapLevel(s, fallback string) string {
	switch s {
	case "low", "moderate", "high":
		return s
	default:
		return fallback
	}
}

// SnapGrade coerces a none/mild/moderate/significant scale, defaulting to
// "none".
func SnapGrade(s string) string {
	switch s {
	case "none", "mild", "moderate", "significant":
		return s
	default:
		return "none"
	}
}

// SkinAnalysis is the structured read of a facial photograph.
type SkinAnalysis struct {
	SkinType          string   `json:"skin_type" enum:"oily,dry,combination,sensitive,normal"`
	Concerns          []string `json:"concerns"`
	Tone              string   `json:"tone"`
	AcneSeverity      string   `json:"acne_severity" enum:"none,mild,moderate,severe"`
	Oiliness          string   `json:"oiliness" enum:"low,moderate,high"`
	Sensitivity       string   `json:"sensitivity" enum:"low,moderate,high"`
	Hyperpigmentation string   `json:"hyperpigmentation" enum:"none,mild,moderate,significant"`
	VisibleAging      string   `json:"visible_aging" enum:"none,mild,moderate"`
	Summary           string   `json:"summary"`
}

// PurchaseLinks are retailer search URLs for a recommended product.
type PurchaseLinks struct {
	Nykaa   string `json:"nykaa,omitempty"`
	Sephora string `json:"sephora,omitempty"`
	Amazon  string `json:"amazon,omitempty"`
	Brand   string `json:"brand,omitempty"`
}

// ProductRecommendation is one suggested product for the analyzed skin.
type ProductRecommendation struct {
	ID                    string        `json:"id"`
	Name                  string        `json:"name"`
	Brand                 string        `json:"brand"`
	Category              string        `json:"category"`
	PriceINR              int           `json:"price_inr"`
	PriceUSD              int           `json:"price_usd"`
	MatchScore            int           `json:"match_score"`
	MatchReasons          []string      `json:"match_reasons"`
	KeyIngredients        []string      `json:"key_ingredients"`
	AvoidIf               []string      `json:"avoid_if"`
	Texture               string        `json:"texture"`
	FragranceFree         bool          `json:"fragrance_free"`
	CrueltyFree           bool          `json:"cruelty_free"`
	Vegan                 bool          `json:"vegan"`
	Links                 PurchaseLinks `json:"links"`
	ImagePlaceholderColor string        `json:"image_placeholder_color"`
	Explanation           string        `json:"explanation"`
}

// RecommendationResult is the complete image-based recommendation contract.
// Like AnalysisResult, it is always fully shaped.
type RecommendationResult struct {
	SkinAnalysis    SkinAnalysis            `json:"skin_analysis"`
	Recommendations []ProductRecommendation `json:"recommendations"`
	Error           string                  `json:"error,omitempty"`
}
