package normalize

import "strings"

// activeKeyword pairs an ingredient-name substring with the plain-English
// function shown to the user. Matching is case-insensitive substring search,
// so "Niacinamide 10%" still matches "niacinamide". Order matters: more
// specific entries come before their generic substrings.
type activeKeyword struct {
	kw       string
	function string
}

var activeKeywords = []activeKeyword{
	{"retinol", "Cell turnover & anti-aging"},
	{"retinal", "Cell turnover & anti-aging (faster acting than retinol)"},
	{"tretinoin", "Prescription retinoid for acne & anti-aging"},
	{"adapalene", "Retinoid for acne treatment"},
	{"bakuchiol", "Plant-based retinol alternative"},
	{"ascorbic acid", "Vitamin C — brightening & antioxidant"},
	{"ascorbyl glucoside", "Stable Vitamin C derivative — brightening"},
	{"sodium ascorbyl phosphate", "Stable Vitamin C derivative"},
	{"ascorbyl tetraisopalmitate", "Oil-soluble Vitamin C"},
	{"ethyl ascorbic acid", "Stable Vitamin C derivative"},
	{"magnesium ascorbyl phosphate", "Stable Vitamin C derivative"},
	{"salicylic acid", "BHA exfoliant — unclogs pores, anti-acne"},
	{"glycolic acid", "AHA exfoliant — brightening & resurfacing"},
	{"lactic acid", "AHA exfoliant — gentler than glycolic"},
	{"mandelic acid", "AHA exfoliant — sensitive skin-friendly"},
	{"gluconolactone", "PHA exfoliant — very gentle, humectant properties"},
	{"niacinamide", "Pore-minimizing, oil control & brightening"},
	{"nicotinamide", "Pore-minimizing & oil control"},
	{"hyaluronic acid", "Humectant — deep hydration"},
	{"sodium hyaluronate", "Humectant — smaller HA molecule, deeper penetration"},
	{"polyglutamic acid", "Humectant — holds more water than HA"},
	{"benzoyl peroxide", "Antibacterial — acne treatment"},
	{"azelaic acid", "Anti-acne, anti-redness & hyperpigmentation"},
	{"tranexamic acid", "Brightening — reduces hyperpigmentation"},
	{"alpha-arbutin", "Brightening — gentle melanin inhibitor"},
	{"kojic acid", "Brightening — melanin inhibitor"},
	{"ceramide", "Barrier repair & moisture retention"},
	{"peptide", "Collagen stimulation & anti-aging"},
	{"matrixyl", "Peptide complex — anti-aging"},
	{"copper peptide", "Wound healing & anti-aging"},
	{"zinc oxide", "Mineral UV filter — sensitive skin-safe"},
	{"titanium dioxide", "Mineral UV filter"},
	{"squalane", "Lightweight emollient — barrier support"},
}

// ActiveFunction looks up the plain-English function for an ingredient name.
// Returns false when the name matches no known active.
func ActiveFunction(name string) (string, bool) {
	lower := strings.ToLower(name)
	for _, k := range activeKeywords {
		if strings.Contains(lower, k.kw) {
			return k.function, true
		}
	}
	return "", false
}
