package models

// SkinProfile carries the user's self-described skin context. Every field is
// optional for URL analysis; its absence only reduces personalization. The
// image recommendation flow requires at least the shopping fields.
type SkinProfile struct {
	SkinType        string   `json:"skin_type,omitempty" doc:"Self-reported skin type (oily, dry, combination, sensitive, normal)"`
	PrimaryConcern  string   `json:"primary_concern,omitempty" doc:"Main concern to target, e.g. acne or hyperpigmentation"`
	ProductCategory string   `json:"product_category,omitempty" doc:"Product category wanted, e.g. serum or moisturizer"`
	Concerns        []string `json:"concerns,omitempty" doc:"Additional stated skin concerns"`
	CurrentRoutine  []string `json:"current_routine,omitempty" doc:"Products or actives currently in use"`
	KnownAllergies  string   `json:"known_allergies,omitempty" doc:"Free-text allergies or sensitivities"`
	Budget          string   `json:"budget,omitempty" doc:"Budget tier: budget, mid, premium, luxury"`
	PregnancySafe   bool     `json:"pregnancy_safe,omitempty"`
	FragranceFree   bool     `json:"fragrance_free,omitempty"`
	VeganOnly       bool     `json:"vegan_only,omitempty"`
}

// IsZero reports whether the profile carries no usable hints. A zero profile
// must not change prompt composition at all.
func (p *SkinProfile) IsZero() bool {
	if p == nil {
		return true
	}
	return p.SkinType == "" && p.PrimaryConcern == "" && p.ProductCategory == "" &&
		len(p.Concerns) == 0 && len(p.CurrentRoutine) == 0 &&
		p.KnownAllergies == "" && p.Budget == "" &&
		!p.PregnancySafe && !p.FragranceFree && !p.VeganOnly
}
