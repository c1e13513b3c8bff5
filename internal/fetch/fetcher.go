// Package fetch retrieves product pages and reduces them to model-ready text.
package fetch

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/gocolly/colly/v2"

	"github.com/vanshika68-byb/before-you-buy-mvp/internal/protection"
)

// headerSet is one browser identity presented to the target site. Attempts
// rotate through these so a retry after a block does not repeat the same
// fingerprint.
type headerSet struct {
	userAgent      string
	accept         string
	acceptLanguage string
}

var headerSets = []headerSet{
	{
		userAgent:      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0.0.0 Safari/537.36",
		accept:         "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,*/*;q=0.8",
		acceptLanguage: "en-US,en;q=0.9",
	},
	{
		userAgent:      "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.4 Safari/605.1.15",
		accept:         "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
		acceptLanguage: "en-GB,en;q=0.8",
	},
}

// RetryPolicy controls how fetch attempts are repeated when the site pushes
// back with a retryable blocking signal.
type RetryPolicy struct {
	// MaxAttempts is the total number of attempts, including the first.
	MaxAttempts int

	// Delay is the pause between attempts.
	Delay time.Duration
}

// DefaultRetryPolicy retries once after a short pause.
func DefaultRetryPolicy(delay time.Duration) RetryPolicy {
	return RetryPolicy{MaxAttempts: 2, Delay: delay}
}

// Config holds the settings for creating a Fetcher.
type Config struct {
	Timeout time.Duration
	Retry   RetryPolicy
	Logger  *slog.Logger
}

// Fetcher retrieves a page over HTTP, detects bot blocking, and retries with
// a rotated browser identity when the block looks transient.
type Fetcher struct {
	timeout time.Duration
	retry   RetryPolicy
	logger  *slog.Logger

	// sleep is swapped out in tests to avoid real delays.
	sleep func(time.Duration)
}

// New creates a Fetcher from config, filling zero values with defaults.
func New(cfg Config) *Fetcher {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	retry := cfg.Retry
	if retry.MaxAttempts <= 0 {
		retry = DefaultRetryPolicy(time.Second)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Fetcher{
		timeout: timeout,
		retry:   retry,
		logger:  logger,
		sleep:   time.Sleep,
	}
}

// Fetch retrieves the page at rawURL and returns its processed content. It
// retries with a different header set when the response carries a retryable
// blocking signal, and fails once attempts are exhausted.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*Page, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return nil, fmt.Errorf("invalid url %q", rawURL)
	}

	var lastErr error
	for attempt := 0; attempt < f.retry.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if attempt > 0 {
			f.sleep(f.retry.Delay)
		}

		headers := headerSets[attempt%len(headerSets)]
		status, body, err := f.attempt(rawURL, parsed, headers)
		if err != nil && status == 0 {
			// Transport-level failure, nothing to classify. Only blocking
			// status codes earn a retry.
			lastErr = err
			f.logger.Warn("page fetch failed", "url", rawURL, "attempt", attempt+1, "error", err)
			break
		}

		detection := protection.Classify(status, body)
		if detection.Detected {
			lastErr = fmt.Errorf("fetch blocked: %s", detection.Description)
			f.logger.Info("bot protection detected",
				"url", rawURL,
				"attempt", attempt+1,
				"signal", detection.Signal,
				"retryable", detection.Retryable,
			)
			if !detection.Retryable {
				break
			}
			continue
		}
		if status < 200 || status >= 300 {
			lastErr = fmt.Errorf("fetch failed with status %d", status)
			break
		}

		text := VisibleText(body)
		return &Page{
			VisibleText:    text,
			FocusedExcerpt: FocusedExcerpt(text),
			ImageURL:       MetaImageURL(body),
		}, nil
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("fetch failed for %q", rawURL)
	}
	return nil, lastErr
}

// attempt performs a single HTTP fetch. A non-zero status with a non-nil
// error means the server responded but with a non-2xx code.
func (f *Fetcher) attempt(rawURL string, parsed *url.URL, headers headerSet) (int, string, error) {
	var status int
	var body string

	c := colly.NewCollector(
		colly.UserAgent(headers.userAgent),
		colly.AllowURLRevisit(),
	)
	c.SetRequestTimeout(f.timeout)

	c.OnRequest(func(r *colly.Request) {
		r.Headers.Set("Accept", headers.accept)
		r.Headers.Set("Accept-Language", headers.acceptLanguage)
		r.Headers.Set("Referer", parsed.Scheme+"://"+parsed.Host+"/")
	})
	c.OnResponse(func(r *colly.Response) {
		status = r.StatusCode
		body = string(r.Body)
	})
	c.OnError(func(r *colly.Response, _ error) {
		if r != nil {
			status = r.StatusCode
			body = string(r.Body)
		}
	})

	err := c.Visit(rawURL)
	return status, body, err
}
