package normalize

import (
	"testing"

	"github.com/vanshika68-byb/before-you-buy-mvp/internal/models"
)

func TestFallback_Shape(t *testing.T) {
	got := Fallback(FallbackContext{ProductName: "Some Serum"})

	if got.ProductName != "Some Serum" {
		t.Errorf("ProductName = %q", got.ProductName)
	}
	if got.ProductType != "unknown" {
		t.Errorf("ProductType = %q", got.ProductType)
	}
	if got.ProductImageURL != nil {
		t.Error("ProductImageURL should be nil without a discovered image")
	}
	if got.Extraction.Ingredients == nil || got.Extraction.DetectedActives == nil {
		t.Error("extraction slices must be non-nil")
	}
	if got.Extraction.ConcentrationClues != "unknown" || got.Extraction.PHNotes != "unknown" {
		t.Errorf("extraction strings = %+v", got.Extraction)
	}
	if got.WhatThisProductDoes == nil || got.IngredientInteraction == nil ||
		got.FormulationStrengths == nil || got.FormulationWeaknesses == nil {
		t.Error("top-level slices must be non-nil")
	}
	if got.SkinTypeSuitability != nil || got.RiskAssessment != nil || got.Verdict != nil {
		t.Error("conditional sub-objects must be nil in a fallback")
	}
}

func TestFallback_ImageURL(t *testing.T) {
	got := Fallback(FallbackContext{ImageURL: "https://cdn.example.com/a.jpg"})
	if got.ProductImageURL == nil || *got.ProductImageURL != "https://cdn.example.com/a.jpg" {
		t.Errorf("ProductImageURL = %v", got.ProductImageURL)
	}
}

const fullAnalysisDoc = `{
	"product_name": "Glow Serum",
	"product_type": "serum",
	"product_summary": {
		"identified_key_ingredients": [
			{"name": "Niacinamide", "function": "model says brightening", "concentration_estimate": "~10%"},
			{"name": "Aqua"},
			{"name": "Salicylic Acid"}
		],
		"notable_formulation_characteristics": ["lightweight gel", "fragrance-free"],
		"ph_or_vehicle_notes": "likely pH 5-6, water-based"
	},
	"what_this_product_does": ["Brightens skin", "Controls oil"],
	"skin_type_suitability": {
		"oily": "good", "dry": "caution", "combination": "good",
		"sensitive": "neutral", "normal": "good",
		"reasoning": "Oil control suits oilier types."
	},
	"clinical_analysis": {
		"potential_irritation_risks": ["High niacinamide may flush sensitive skin"],
		"compatibility_considerations": ["active rosacea"],
		"layering_conflicts_or_interactions": [
			{"ingredients": ["niacinamide", "vitamin C"], "interaction_type": "conflict", "explanation": "Stability concerns at high concentrations"},
			{"ingredients": ["niacinamide", "zinc"], "interaction_type": "synergy", "explanation": "Complementary oil control"}
		]
	},
	"formulation_strengths": ["Well-preserved"],
	"formulation_weaknesses": ["No occlusives"],
	"missing_or_unclear_information": ["exact niacinamide percentage"],
	"overall_assessment": {
		"risk_level": "low",
		"certainty_level": "moderate",
		"clinical_reasoning_summary": "Solid formulation with disclosed actives.",
		"verdict": {
			"signal": "green",
			"headline": "Well-built oil control serum",
			"summary": "Good pick for oily skin."
		}
	}
}`

func TestAnalysis_FullDocument(t *testing.T) {
	got := Analysis(fullAnalysisDoc, FallbackContext{ProductName: "fallback", ImageURL: "https://cdn.example.com/serum.jpg"})

	if got.ProductName != "Glow Serum" {
		t.Errorf("ProductName = %q", got.ProductName)
	}
	if got.ProductType != "serum" {
		t.Errorf("ProductType = %q", got.ProductType)
	}
	if got.ProductImageURL == nil || *got.ProductImageURL != "https://cdn.example.com/serum.jpg" {
		t.Errorf("ProductImageURL = %v", got.ProductImageURL)
	}

	if len(got.Extraction.Ingredients) != 3 {
		t.Fatalf("Ingredients = %v", got.Extraction.Ingredients)
	}

	// Niacinamide and Salicylic Acid match the registry; Aqua does not.
	if len(got.Extraction.DetectedActives) != 2 {
		t.Fatalf("DetectedActives = %+v", got.Extraction.DetectedActives)
	}
	nia := got.Extraction.DetectedActives[0]
	if nia.Name != "Niacinamide" {
		t.Errorf("first active = %q", nia.Name)
	}
	if nia.Function != "Pore-minimizing, oil control & brightening" {
		t.Errorf("registry function should win over model text, got %q", nia.Function)
	}
	if nia.ConcentrationEstimate != "~10%" {
		t.Errorf("ConcentrationEstimate = %q", nia.ConcentrationEstimate)
	}

	if got.Extraction.ConcentrationClues != "exact niacinamide percentage" {
		t.Errorf("ConcentrationClues = %q", got.Extraction.ConcentrationClues)
	}
	if got.Extraction.UsageInstructions != "lightweight gel; fragrance-free" {
		t.Errorf("UsageInstructions = %q", got.Extraction.UsageInstructions)
	}
	if got.Extraction.PHNotes != "likely pH 5-6, water-based" {
		t.Errorf("PHNotes = %q", got.Extraction.PHNotes)
	}

	if got.SkinTypeSuitability == nil || got.SkinTypeSuitability.Dry != models.RatingCaution {
		t.Errorf("SkinTypeSuitability = %+v", got.SkinTypeSuitability)
	}
	if len(got.IngredientInteraction) != 2 {
		t.Fatalf("IngredientInteraction = %+v", got.IngredientInteraction)
	}

	if got.RiskAssessment == nil {
		t.Fatal("RiskAssessment missing")
	}
	// Risk reasons aggregate irritation risks plus conflict explanations,
	// but not synergy explanations.
	wantReasons := []string{
		"High niacinamide may flush sensitive skin",
		"Stability concerns at high concentrations",
	}
	if len(got.RiskAssessment.RiskReasons) != len(wantReasons) {
		t.Fatalf("RiskReasons = %v", got.RiskAssessment.RiskReasons)
	}
	for i, want := range wantReasons {
		if got.RiskAssessment.RiskReasons[i] != want {
			t.Errorf("RiskReasons[%d] = %q, want %q", i, got.RiskAssessment.RiskReasons[i], want)
		}
	}
	if got.RiskAssessment.ConfidenceLevel != models.ConfidenceMedium {
		t.Errorf(`certainty "moderate" should map to %q, got %q`, models.ConfidenceMedium, got.RiskAssessment.ConfidenceLevel)
	}
	if got.RiskAssessment.ConfidenceReason != "Solid formulation with disclosed actives." {
		t.Errorf("ConfidenceReason = %q", got.RiskAssessment.ConfidenceReason)
	}
	if got.RiskAssessment.Disclaimer != Disclaimer {
		t.Errorf("Disclaimer = %q", got.RiskAssessment.Disclaimer)
	}

	if got.Verdict == nil || got.Verdict.Signal != models.SignalGreen {
		t.Errorf("Verdict = %+v", got.Verdict)
	}
}

func TestAnalysis_GarbageStillCompletelyShaped(t *testing.T) {
	got := Analysis(`{"unexpected": true}`, FallbackContext{ProductName: "Mystery Cream"})

	if got.ProductName != "Mystery Cream" {
		t.Errorf("ProductName = %q", got.ProductName)
	}
	if got.Extraction.Ingredients == nil || got.WhatThisProductDoes == nil {
		t.Error("slices must stay non-nil for unexpected documents")
	}
	if got.SkinTypeSuitability != nil || got.RiskAssessment != nil || got.Verdict != nil {
		t.Error("conditional sub-objects must stay nil without contributing content")
	}
}

func TestAnalysis_EnumSnapping(t *testing.T) {
	doc := `{
		"skin_type_suitability": {"oily": "excellent", "dry": "good", "combination": "", "sensitive": "avoid", "normal": "fine", "reasoning": "r"},
		"clinical_analysis": {
			"layering_conflicts_or_interactions": [
				{"ingredients": ["a", "b"], "interaction_type": "clash", "explanation": "e"}
			]
		},
		"overall_assessment": {
			"certainty_level": "very high",
			"verdict": {"signal": "amber", "headline": "h", "summary": "s"}
		}
	}`
	got := Analysis(doc, FallbackContext{})

	if got.SkinTypeSuitability.Oily != models.RatingCaution {
		t.Errorf("out-of-set rating should snap to caution, got %q", got.SkinTypeSuitability.Oily)
	}
	if got.SkinTypeSuitability.Dry != models.RatingGood {
		t.Errorf("in-set rating should survive, got %q", got.SkinTypeSuitability.Dry)
	}
	if got.IngredientInteraction[0].InteractionType != models.InteractionConflict {
		t.Errorf("out-of-set interaction should snap to conflict, got %q", got.IngredientInteraction[0].InteractionType)
	}
	if got.RiskAssessment.ConfidenceLevel != models.ConfidenceLow {
		t.Errorf("out-of-set certainty should snap to low, got %q", got.RiskAssessment.ConfidenceLevel)
	}
	if got.Verdict.Signal != models.SignalYellow {
		t.Errorf("out-of-set signal should snap to yellow, got %q", got.Verdict.Signal)
	}
}

func TestAnalysis_ContractShapedDocument(t *testing.T) {
	doc := `{
		"product_name": "Direct Toner",
		"extraction": {
			"ingredients": ["Aqua", "Glycolic Acid"],
			"detected_actives": [{"name": "Glycolic Acid", "function": ""}],
			"concentration_clues": "7% on label",
			"usage_instructions": "use at night",
			"ph_notes": "pH 3.8"
		},
		"risk_assessment": {
			"avoid_if": ["compromised barrier"],
			"risk_reasons": ["AHA irritation"],
			"confidence_level": "high",
			"confidence_reason": "full INCI disclosed"
		}
	}`
	got := Analysis(doc, FallbackContext{})

	if len(got.Extraction.Ingredients) != 2 {
		t.Fatalf("Ingredients = %v", got.Extraction.Ingredients)
	}
	if got.Extraction.ConcentrationClues != "7% on label" {
		t.Errorf("ConcentrationClues = %q", got.Extraction.ConcentrationClues)
	}
	if got.Extraction.PHNotes != "pH 3.8" {
		t.Errorf("PHNotes = %q", got.Extraction.PHNotes)
	}
	if len(got.Extraction.DetectedActives) != 1 {
		t.Fatalf("DetectedActives = %+v", got.Extraction.DetectedActives)
	}
	if got.Extraction.DetectedActives[0].Function != "AHA exfoliant — brightening & resurfacing" {
		t.Errorf("empty model function should be filled from the registry, got %q", got.Extraction.DetectedActives[0].Function)
	}
	if got.RiskAssessment == nil || got.RiskAssessment.ConfidenceLevel != models.ConfidenceHigh {
		t.Errorf("RiskAssessment = %+v", got.RiskAssessment)
	}
	if got.RiskAssessment.RiskReasons[0] != "AHA irritation" {
		t.Errorf("RiskReasons = %v", got.RiskAssessment.RiskReasons)
	}
	if got.RiskAssessment.Disclaimer != Disclaimer {
		t.Error("disclaimer must always be set on a risk assessment")
	}
}

func TestAnalysis_ActiveDedup(t *testing.T) {
	doc := `{
		"product_summary": {
			"identified_key_ingredients": [{"name": "Niacinamide"}]
		},
		"extraction": {
			"detected_actives": [{"name": "niacinamide", "function": "oil control"}]
		}
	}`
	got := Analysis(doc, FallbackContext{})
	if len(got.Extraction.DetectedActives) != 1 {
		t.Fatalf("case-insensitive dedupe failed: %+v", got.Extraction.DetectedActives)
	}
}

func TestAnalysis_BareStringActivePromoted(t *testing.T) {
	got := Analysis(`{"detected_actives": ["Niacinamide"]}`, FallbackContext{})

	if len(got.Extraction.DetectedActives) != 1 {
		t.Fatalf("DetectedActives = %+v", got.Extraction.DetectedActives)
	}
	active := got.Extraction.DetectedActives[0]
	if active.Name != "Niacinamide" {
		t.Errorf("Name = %q", active.Name)
	}
	if active.Function != "Pore-minimizing, oil control & brightening" {
		t.Errorf("Function = %q", active.Function)
	}
	if got.RiskAssessment != nil {
		t.Error("no contributing fields, RiskAssessment must stay nil")
	}
}

func TestProductNameFromURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{
			name: "slug path",
			url:  "https://shop.example.com/products/vitamin-c-glow-serum",
			want: "Vitamin C Glow Serum",
		},
		{
			name: "retailer shorthand and ids skipped",
			url:  "https://www.example.in/niacinamide-10-zinc-serum/p/12345",
			want: "Niacinamide 10 Zinc Serum",
		},
		{
			name: "underscores",
			url:  "https://example.com/hydrating_face_cream",
			want: "Hydrating Face Cream",
		},
		{
			name: "no usable segment",
			url:  "https://example.com/p/42",
			want: "",
		},
		{
			name: "root path",
			url:  "https://example.com/",
			want: "",
		},
		{
			name: "unparseable",
			url:  "://bad",
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ProductNameFromURL(tt.url); got != tt.want {
				t.Errorf("ProductNameFromURL(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

func TestActiveFunction(t *testing.T) {
	tests := []struct {
		name   string
		wantFn string
		wantOK bool
	}{
		{"Niacinamide", "Pore-minimizing, oil control & brightening", true},
		{"NIACINAMIDE 10%", "Pore-minimizing, oil control & brightening", true},
		{"Salicylic Acid (BHA)", "BHA exfoliant — unclogs pores, anti-acne", true},
		{"Aqua", "", false},
		{"Parfum", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn, ok := ActiveFunction(tt.name)
			if ok != tt.wantOK || fn != tt.wantFn {
				t.Errorf("ActiveFunction(%q) = %q, %v", tt.name, fn, ok)
			}
		})
	}
}
