// Package models defines the wire-level data contracts for the API.
//
// The analysis contract is total: every field always carries a value of the
// right type, and the enumerated fields are closed sets. Callers rendering a
// result never need to check for missing fields. The only nullable members
// are the conditional sub-objects (risk_assessment, verdict,
// skin_type_suitability) and the product image URL.
package models

// Confidence levels for a risk assessment. Closed set.
const (
	ConfidenceLow    = "low"
	ConfidenceMedium = "medium"
	ConfidenceHigh   = "high"
)

// Verdict signals. Closed set.
const (
	SignalGreen  = "green"
	SignalYellow = "yellow"
	SignalRed    = "red"
)

// Per-skin-type suitability ratings. Closed set.
const (
	RatingGood    = "good"
	RatingNeutral = "neutral"
	RatingCaution = "caution"
	RatingAvoid   = "avoid"
)

// Ingredient interaction types. Closed set.
const (
	InteractionConflict   = "conflict"
	InteractionSynergy    = "synergy"
	InteractionRedundancy = "redundancy"
)

// SnapConfidence coerces a model-reported certainty word onto the confidence
// set. "moderate" is an explicit alias for "medium" (the model's own schema
// uses low/moderate/high); everything else out of set snaps to "low".
func SnapConfidence(s string) string {
	switch s {
	case ConfidenceLow, ConfidenceMedium, ConfidenceHigh:
		return s
	case "moderate":
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// SnapSignal coerces a verdict signal onto the closed set. Out-of-set values
// snap to "yellow", the lowest-trust member (neither endorsement nor alarm).
func SnapSignal(s string) string {
	switch s {
	case SignalGreen, SignalYellow, SignalRed:
		return s
	default:
		return SignalYellow
	}
}

// SnapRating coerces a skin-type rating onto the closed set. Out-of-set
// values snap to "caution".
func SnapRating(s string) string {
	switch s {
	case RatingGood, RatingNeutral, RatingCaution, RatingAvoid:
		return s
	default:
		return RatingCaution
	}
}

// SnapInteraction coerces an interaction type onto the closed set. Out-of-set
// values snap to "conflict".
func SnapInteraction(s string) string {
	switch s {
	case InteractionConflict, InteractionSynergy, InteractionRedundancy:
		return s
	default:
		return InteractionConflict
	}
}

// ActiveIngredient is a functional ingredient with its plain-English role.
type ActiveIngredient struct {
	Name                  string `json:"name" doc:"Ingredient name as disclosed on the page"`
	Function              string `json:"function" doc:"What the ingredient does, in plain English"`
	ConcentrationEstimate string `json:"concentration_estimate,omitempty" doc:"Estimated concentration, when inferable"`
}

// IngredientInteraction describes how two or more ingredients combine.
type IngredientInteraction struct {
	Ingredients     []string `json:"ingredients" doc:"Ingredients involved in the interaction"`
	InteractionType string   `json:"interaction_type" enum:"conflict,synergy,redundancy" doc:"Kind of interaction"`
	Explanation     string   `json:"explanation" doc:"Plain-English explanation"`
}

// SkinTypeSuitability rates the product per skin type.
type SkinTypeSuitability struct {
	Oily        string `json:"oily" enum:"good,neutral,caution,avoid"`
	Dry         string `json:"dry" enum:"good,neutral,caution,avoid"`
	Combination string `json:"combination" enum:"good,neutral,caution,avoid"`
	Sensitive   string `json:"sensitive" enum:"good,neutral,caution,avoid"`
	Normal      string `json:"normal" enum:"good,neutral,caution,avoid"`
	Reasoning   string `json:"reasoning" doc:"Short explanation of the ratings"`
}

// Extraction holds what was recovered from the product page.
type Extraction struct {
	Ingredients        []string           `json:"ingredients" doc:"Disclosed ingredient names"`
	DetectedActives    []ActiveIngredient `json:"detected_actives" doc:"Active ingredients with their functions"`
	ConcentrationClues string             `json:"concentration_clues" doc:"Hints about concentrations, or what is missing"`
	UsageInstructions  string             `json:"usage_instructions" doc:"Notable usage or formulation characteristics"`
	PHNotes            string             `json:"ph_notes" doc:"Inferred pH range or vehicle notes"`
}

// RiskAssessment is the dermatology-flavored safety screen. Present only when
// the model produced at least one contributing field.
type RiskAssessment struct {
	AvoidIf          []string `json:"avoid_if" doc:"Conditions or sensitivities that argue against use"`
	RiskReasons      []string `json:"risk_reasons" doc:"Concrete irritation or conflict risks"`
	ConfidenceLevel  string   `json:"confidence_level" enum:"low,medium,high"`
	ConfidenceReason string   `json:"confidence_reason" doc:"Why the confidence level is what it is"`
	Disclaimer       string   `json:"disclaimer"`
}

// Verdict is the headline judgment. Present only when the model produced one.
type Verdict struct {
	Signal           string `json:"signal" enum:"green,yellow,red"`
	Headline         string `json:"headline" doc:"Short clinical verdict"`
	Summary          string `json:"summary" doc:"Plain-English explanation for a non-expert"`
	PersonalizedNote string `json:"personalized_note,omitempty" doc:"Note tied to the submitted skin profile"`
}

// AnalysisResult is the complete product analysis contract. Every path
// through the pipeline, including total failure, returns this shape fully
// populated.
type AnalysisResult struct {
	ProductName           string                  `json:"product_name"`
	ProductType           string                  `json:"product_type"`
	ProductImageURL       *string                 `json:"product_image_url" doc:"Product image discovered on the page, if any"`
	Extraction            Extraction              `json:"extraction"`
	WhatThisProductDoes   []string                `json:"what_this_product_does"`
	SkinTypeSuitability   *SkinTypeSuitability    `json:"skin_type_suitability"`
	IngredientInteraction []IngredientInteraction `json:"ingredient_interactions"`
	FormulationStrengths  []string                `json:"formulation_strengths"`
	FormulationWeaknesses []string                `json:"formulation_weaknesses"`
	RiskAssessment        *RiskAssessment         `json:"risk_assessment"`
	Verdict               *Verdict                `json:"verdict"`
	Error                 string                  `json:"error,omitempty" doc:"Short user-facing error when the analysis degraded"`
}
