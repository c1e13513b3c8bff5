package fetch

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Page is the processed result of one successful fetch. It is never mutated
// after creation.
type Page struct {
	// VisibleText is the page's rendered text with scripts, styles, tags and
	// excess whitespace removed.
	VisibleText string

	// FocusedExcerpt is the bounded slice of VisibleText centered on the
	// ingredient disclosure, sized for a model prompt.
	FocusedExcerpt string

	// ImageURL is the page's og:image/twitter:image URL, or "" if none was
	// found.
	ImageURL string
}

// Excerpt bounds. The intro keeps product name/marketing context, the window
// around the ingredient marker keeps the INCI list, and the total cap bounds
// what gets forwarded to the model.
const (
	excerptIntroLen   = 3000
	excerptBeforeLen  = 500
	excerptAfterLen   = 8000
	excerptMaxLen     = 40000
	excerptSectionSep = "\n\n--- INGREDIENT SECTION ---\n"
)

var (
	// ingredientMarkerRe matches the phrases that introduce an ingredient
	// disclosure. Matched case-insensitively against the original text so the
	// reported index is valid for slicing it; the leftmost match wins.
	ingredientMarkerRe = regexp.MustCompile(`(?i)(?:full |active )?ingredients:|ingredient list:|inci list:|formulation:|what's in it:|contains:`)

	scriptRe     = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	styleRe      = regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`)
	tagRe        = regexp.MustCompile(`<[^>]+>`)
	whitespaceRe = regexp.MustCompile(`\s+`)

	// og:image / twitter:image meta tags. Attribute order varies by site, so
	// both property-then-content and content-then-property are tried.
	metaImageRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)<meta[^>]+(?:property|name)=["'](?:og:image|twitter:image)(?::src)?["'][^>]*content=["']([^"']+)["']`),
		regexp.MustCompile(`(?i)<meta[^>]+content=["']([^"']+)["'][^>]*(?:property|name)=["'](?:og:image|twitter:image)(?::src)?["']`),
	}
)

// VisibleText strips script and style blocks, collapses the remaining tags
// and whitespace, and returns the page's visible text.
func VisibleText(html string) string {
	cleaned := scriptRe.ReplaceAllString(html, "")
	cleaned = styleRe.ReplaceAllString(cleaned, "")
	cleaned = tagRe.ReplaceAllString(cleaned, " ")
	cleaned = whitespaceRe.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}

// MetaImageURL scans raw HTML for an og:image or twitter:image meta tag and
// returns the first URL with an http(s) scheme, or "".
func MetaImageURL(html string) string {
	for _, re := range metaImageRes {
		for _, m := range re.FindAllStringSubmatch(html, -1) {
			u := strings.TrimSpace(m[1])
			if strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://") {
				return u
			}
		}
	}
	return ""
}

// FocusedExcerpt narrows visible text down to the region most likely to hold
// the ingredient list. When a marker phrase is found, the excerpt is the
// page intro plus a window from 500 characters before the earliest marker to
// 8000 after it; otherwise it is simply the first 40000 characters.
func FocusedExcerpt(text string) string {
	loc := ingredientMarkerRe.FindStringIndex(text)
	if loc == nil {
		return truncate(text, excerptMaxLen)
	}
	markerAt := loc[0]

	start := markerAt - excerptBeforeLen
	if start < 0 {
		start = 0
	}
	start = runeStart(text, start)
	end := markerAt + excerptAfterLen
	if end > len(text) {
		end = len(text)
	}
	end = runeStart(text, end)

	intro := truncate(text, excerptIntroLen)
	return truncate(intro+excerptSectionSep+text[start:end], excerptMaxLen)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:runeStart(s, max)]
}

// runeStart backs i off to the nearest UTF-8 rune boundary at or before it,
// so byte-counted cuts never split a multi-byte rune.
func runeStart(s string, i int) int {
	for i > 0 && i < len(s) && !utf8.RuneStart(s[i]) {
		i--
	}
	return i
}
