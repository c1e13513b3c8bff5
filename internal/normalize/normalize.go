// Package normalize maps loosely-shaped model output onto the API's total
// contracts. Nothing here trusts the model: every field is read defensively
// and every enum is snapped onto its closed set.
package normalize

import (
	"net/url"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/vanshika68-byb/before-you-buy-mvp/internal/models"
)

// Disclaimer accompanies every risk assessment.
const Disclaimer = "This is a general, dermatology-informed safety screen, not a diagnosis or treatment plan."

// DefaultConfidenceReason is used when the model gave no reasoning for its
// certainty level.
const DefaultConfidenceReason = "Assessment based on available formulation disclosures."

// FallbackContext carries what the pipeline knows about the product even
// when the model produced nothing usable.
type FallbackContext struct {
	ProductName string
	ImageURL    string
}

// Fallback builds a fully-shaped empty result. Every slice is non-nil and
// every string field holds its neutral value.
func Fallback(fc FallbackContext) models.AnalysisResult {
	return models.AnalysisResult{
		ProductName:     fc.ProductName,
		ProductType:     "unknown",
		ProductImageURL: optionalString(fc.ImageURL),
		Extraction: models.Extraction{
			Ingredients:        []string{},
			DetectedActives:    []models.ActiveIngredient{},
			ConcentrationClues: "unknown",
			UsageInstructions:  "unknown",
			PHNotes:            "unknown",
		},
		WhatThisProductDoes:   []string{},
		SkinTypeSuitability:   nil,
		IngredientInteraction: []models.IngredientInteraction{},
		FormulationStrengths:  []string{},
		FormulationWeaknesses: []string{},
		RiskAssessment:        nil,
		Verdict:               nil,
	}
}

// Analysis maps a parsed model document onto the analysis contract. The
// document may follow the prompted schema (product_summary,
// clinical_analysis, overall_assessment) or emit contract-shaped fields
// directly; both are read, with the prompted schema taking precedence.
func Analysis(doc string, fc FallbackContext) models.AnalysisResult {
	root := gjson.Parse(doc)
	out := Fallback(fc)

	if name := strings.TrimSpace(root.Get("product_name").String()); name != "" {
		out.ProductName = name
	}
	if pt := strings.TrimSpace(root.Get("product_type").String()); pt != "" {
		out.ProductType = pt
	}

	out.Extraction = extraction(root)
	out.WhatThisProductDoes = stringsAt(root, "what_this_product_does")
	out.SkinTypeSuitability = suitability(root.Get("skin_type_suitability"))
	out.IngredientInteraction = interactions(root)
	out.FormulationStrengths = stringsAt(root, "formulation_strengths")
	out.FormulationWeaknesses = stringsAt(root, "formulation_weaknesses")
	out.RiskAssessment = riskAssessment(root, out.IngredientInteraction)
	out.Verdict = verdict(root)

	return out
}

func extraction(root gjson.Result) models.Extraction {
	rawEntries := root.Get("product_summary.identified_key_ingredients")
	if !rawEntries.Exists() {
		rawEntries = root.Get("extraction.ingredients")
	}

	ingredients := []string{}
	concByName := map[string]string{}
	modelFnByName := map[string]string{}
	rawEntries.ForEach(func(_, entry gjson.Result) bool {
		name := entry.String()
		if entry.IsObject() {
			name = entry.Get("name").String()
			if c := entry.Get("concentration_estimate").String(); c != "" {
				concByName[strings.ToLower(name)] = c
			}
			if fn := entry.Get("function").String(); fn != "" {
				modelFnByName[strings.ToLower(name)] = fn
			}
		}
		if name = strings.TrimSpace(name); name != "" {
			ingredients = append(ingredients, name)
		}
		return true
	})

	// Actives are the union of what the model declared and what the keyword
	// registry recognizes, deduplicated case-insensitively by name. The
	// registry's function wins because it is curated; model functions only
	// fill gaps.
	actives := []models.ActiveIngredient{}
	seen := map[string]bool{}
	add := func(a models.ActiveIngredient) {
		key := strings.ToLower(a.Name)
		if a.Name == "" || seen[key] {
			return
		}
		seen[key] = true
		actives = append(actives, a)
	}

	for _, name := range ingredients {
		if fn, ok := ActiveFunction(name); ok {
			add(models.ActiveIngredient{
				Name:                  name,
				Function:              fn,
				ConcentrationEstimate: concByName[strings.ToLower(name)],
			})
		}
	}
	declaredActives := root.Get("extraction.detected_actives")
	if !declaredActives.Exists() {
		declaredActives = root.Get("detected_actives")
	}
	declaredActives.ForEach(func(_, entry gjson.Result) bool {
		// Bare-string entries are promoted into the object shape
		name := entry.String()
		var fn, conc string
		if entry.IsObject() {
			name = entry.Get("name").String()
			fn = entry.Get("function").String()
			conc = entry.Get("concentration_estimate").String()
		}
		name = strings.TrimSpace(name)
		if fn == "" {
			if tableFn, ok := ActiveFunction(name); ok {
				fn = tableFn
			} else if mf := modelFnByName[strings.ToLower(name)]; mf != "" {
				fn = mf
			}
		}
		add(models.ActiveIngredient{
			Name:                  name,
			Function:              fn,
			ConcentrationEstimate: conc,
		})
		return true
	})

	return models.Extraction{
		Ingredients:        ingredients,
		DetectedActives:    actives,
		ConcentrationClues: joinedOr(root, "missing_or_unclear_information", "extraction.concentration_clues"),
		UsageInstructions:  joinedOr(root, "product_summary.notable_formulation_characteristics", "extraction.usage_instructions"),
		PHNotes:            firstString(root, "product_summary.ph_or_vehicle_notes", "extraction.ph_notes"),
	}
}

func suitability(node gjson.Result) *models.SkinTypeSuitability {
	if !node.IsObject() {
		return nil
	}
	return &models.SkinTypeSuitability{
		Oily:        models.SnapRating(node.Get("oily").String()),
		Dry:         models.SnapRating(node.Get("dry").String()),
		Combination: models.SnapRating(node.Get("combination").String()),
		Sensitive:   models.SnapRating(node.Get("sensitive").String()),
		Normal:      models.SnapRating(node.Get("normal").String()),
		Reasoning:   node.Get("reasoning").String(),
	}
}

func interactions(root gjson.Result) []models.IngredientInteraction {
	node := root.Get("clinical_analysis.layering_conflicts_or_interactions")
	if !node.Exists() {
		node = root.Get("ingredient_interactions")
	}

	out := []models.IngredientInteraction{}
	node.ForEach(func(_, entry gjson.Result) bool {
		names := []string{}
		entry.Get("ingredients").ForEach(func(_, n gjson.Result) bool {
			names = append(names, n.String())
			return true
		})
		out = append(out, models.IngredientInteraction{
			Ingredients:     names,
			InteractionType: models.SnapInteraction(entry.Get("interaction_type").String()),
			Explanation:     entry.Get("explanation").String(),
		})
		return true
	})
	return out
}

// riskAssessment builds the safety screen. It exists only when the model
// produced clinical or assessment content; risk reasons aggregate irritation
// risks with the explanations of conflict-type interactions.
func riskAssessment(root gjson.Result, inters []models.IngredientInteraction) *models.RiskAssessment {
	clinical := root.Get("clinical_analysis")
	overall := root.Get("overall_assessment")
	direct := root.Get("risk_assessment")
	if !clinical.Exists() && !overall.Exists() && !direct.IsObject() {
		return nil
	}

	avoidIf := stringsAt(root, "clinical_analysis.compatibility_considerations")
	if len(avoidIf) == 0 {
		avoidIf = stringsAt(root, "risk_assessment.avoid_if")
	}

	riskReasons := stringsAt(root, "clinical_analysis.potential_irritation_risks")
	for _, in := range inters {
		if in.InteractionType == models.InteractionConflict && in.Explanation != "" {
			riskReasons = append(riskReasons, in.Explanation)
		}
	}
	if len(riskReasons) == 0 {
		riskReasons = stringsAt(root, "risk_assessment.risk_reasons")
	}

	confidence := models.SnapConfidence(firstString(root,
		"overall_assessment.certainty_level",
		"risk_assessment.confidence_level",
	))

	reason := firstString(root,
		"overall_assessment.clinical_reasoning_summary",
		"professional_consideration",
		"risk_assessment.confidence_reason",
	)
	if reason == "" || reason == "unknown" {
		reason = DefaultConfidenceReason
	}

	return &models.RiskAssessment{
		AvoidIf:          avoidIf,
		RiskReasons:      riskReasons,
		ConfidenceLevel:  confidence,
		ConfidenceReason: reason,
		Disclaimer:       Disclaimer,
	}
}

func verdict(root gjson.Result) *models.Verdict {
	node := root.Get("overall_assessment.verdict")
	if !node.IsObject() {
		node = root.Get("verdict")
	}
	if !node.IsObject() {
		return nil
	}
	return &models.Verdict{
		Signal:           models.SnapSignal(node.Get("signal").String()),
		Headline:         node.Get("headline").String(),
		Summary:          node.Get("summary").String(),
		PersonalizedNote: node.Get("personalized_note").String(),
	}
}

// ProductNameFromURL derives a display name from the URL's longest path
// segment. Short segments, bare numbers, and retailer shorthand segments
// ("p", "dp") are skipped.
func ProductNameFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}

	var slug string
	for _, seg := range strings.Split(u.Path, "/") {
		if seg == "" || seg == "p" || seg == "dp" || len(seg) <= 3 || isAllDigits(seg) {
			continue
		}
		if len(seg) > len(slug) {
			slug = seg
		}
	}
	if slug == "" {
		return ""
	}

	words := strings.FieldsFunc(slug, func(r rune) bool {
		return r == '-' || r == '_'
	})
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func isAllDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

func stringsAt(root gjson.Result, path string) []string {
	out := []string{}
	root.Get(path).ForEach(func(_, v gjson.Result) bool {
		out = append(out, v.String())
		return true
	})
	return out
}

// joinedOr joins the string array at arrayPath with "; ", falling back to
// the plain string at altPath, then "unknown".
func joinedOr(root gjson.Result, arrayPath, altPath string) string {
	if parts := stringsAt(root, arrayPath); len(parts) > 0 {
		return strings.Join(parts, "; ")
	}
	if s := root.Get(altPath).String(); s != "" {
		return s
	}
	return "unknown"
}

// firstString returns the first non-empty string among the given paths.
func firstString(root gjson.Result, paths ...string) string {
	for _, p := range paths {
		if s := strings.TrimSpace(root.Get(p).String()); s != "" {
			return s
		}
	}
	return ""
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
