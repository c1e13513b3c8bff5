// Package extract recovers a JSON object from raw model output. Models wrap
// JSON in markdown fences or lead with prose despite instructions, so the
// recovery is tolerant by construction.
package extract

import (
	"strings"

	"github.com/tidwall/gjson"
)

// Object extracts the outermost JSON object from raw model output. It strips
// markdown fences, takes the span from the first "{" to the last "}", and
// validates the result. Returns false when no valid object can be recovered.
func Object(raw string) (string, bool) {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return "", false
	}

	if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
		cleaned = strings.TrimPrefix(cleaned, "```")
		cleaned = strings.TrimSuffix(strings.TrimSpace(cleaned), "```")
		cleaned = strings.TrimSpace(cleaned)
	}

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start == -1 || end == -1 || end < start {
		return "", false
	}
	cleaned = cleaned[start : end+1]

	if !gjson.Valid(cleaned) {
		return "", false
	}
	if !gjson.Parse(cleaned).IsObject() {
		return "", false
	}
	return cleaned, true
}
