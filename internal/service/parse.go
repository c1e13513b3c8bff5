package service

import (
	"github.com/tidwall/gjson"

	"github.com/vanshika68-byb/before-you-buy-mvp/internal/extract"
)

// extractObject recovers a JSON object from raw model output.
func extractObject(raw string) (string, bool) {
	return extract.Object(raw)
}

// modelError reads the model's self-reported error field, if any.
func modelError(doc string) string {
	return gjson.Get(doc, "error").String()
}
