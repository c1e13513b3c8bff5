// Package protection classifies HTTP responses that look like bot blocking
// rather than real product pages.
package protection

import "strings"

// SignalType identifies the kind of blocking detected.
type SignalType string

const (
	SignalNone         SignalType = ""
	SignalAccessDenied SignalType = "access_denied"
	SignalRateLimited  SignalType = "rate_limited"
	SignalChallenge    SignalType = "challenge"
	SignalCaptcha      SignalType = "captcha"
)

// Detection describes a blocking signal found in a response.
type Detection struct {
	// Detected is true if any blocking signal was found.
	Detected bool

	// Signal identifies the kind of blocking.
	Signal SignalType

	// Retryable is true when a second attempt with different headers has a
	// realistic chance of getting through.
	Retryable bool

	// Description provides a human-readable explanation for logs.
	Description string
}

var challengePatterns = []string{
	"cf-browser-verification",
	"challenge-platform",
	"_cf_chl",
	"checking your browser",
	"just a moment...",
	"attention required! | cloudflare",
}

var captchaPatterns = []string{
	"g-recaptcha",
	"h-captcha",
	"data-sitekey",
	"cf-turnstile",
	"are you a robot",
	"please verify you are human",
}

// Classify inspects a response's status code and body for blocking signals.
// A zero Detection means the response looks like an ordinary page.
func Classify(statusCode int, body string) Detection {
	switch statusCode {
	case 403:
		return Detection{
			Detected:    true,
			Signal:      SignalAccessDenied,
			Retryable:   true,
			Description: "access denied (HTTP 403) - site may be blocking automated requests",
		}
	case 429:
		return Detection{
			Detected:    true,
			Signal:      SignalRateLimited,
			Retryable:   true,
			Description: "rate limited (HTTP 429) - too many requests",
		}
	case 503:
		return Detection{
			Detected:    true,
			Signal:      SignalChallenge,
			Retryable:   false,
			Description: "service unavailable (HTTP 503) - may be a challenge interstitial",
		}
	}

	lower := strings.ToLower(body)
	for _, pattern := range challengePatterns {
		if strings.Contains(lower, pattern) {
			return Detection{
				Detected:    true,
				Signal:      SignalChallenge,
				Retryable:   false,
				Description: "challenge page detected in response body",
			}
		}
	}
	for _, pattern := range captchaPatterns {
		if strings.Contains(lower, pattern) {
			return Detection{
				Detected:    true,
				Signal:      SignalCaptcha,
				Retryable:   false,
				Description: "captcha challenge detected in response body",
			}
		}
	}

	return Detection{}
}
