// Package config handles application configuration.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	// Server settings
	Port    int
	BaseURL string

	// CORS
	CORSOrigins []string

	// Upstream model provider. OpenAIKey is the one required secret; when it
	// is empty the pipeline returns its configuration-error fallback rather
	// than failing startup, so the server stays reachable and renderable.
	OpenAIKey     string
	OpenAIBaseURL string
	Model         string // chat model for URL analysis
	VisionModel   string // vision-capable model for the image flow

	// Network bounds
	FetchTimeout    time.Duration // per page-fetch attempt
	FetchRetryDelay time.Duration // pause before the alternate-header retry
	LLMTimeout      time.Duration // per model call
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Port:        getEnvInt("PORT", 8080),
		BaseURL:     getEnv("BASE_URL", "http://localhost:8080"),
		CORSOrigins: getEnvSlice("CORS_ORIGINS", []string{"http://localhost:3000"}),

		OpenAIKey:     getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL: getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		Model:         getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		VisionModel:   getEnv("OPENAI_VISION_MODEL", "gpt-4o"),

		FetchTimeout:    getEnvDuration("FETCH_TIMEOUT", 30*time.Second),
		FetchRetryDelay: getEnvDuration("FETCH_RETRY_DELAY", 1*time.Second),
		LLMTimeout:      getEnvDuration("LLM_TIMEOUT", 120*time.Second),
	}

	return cfg, nil
}

// HasCredential reports whether the model provider secret is configured.
func (c *Config) HasCredential() bool {
	return c.OpenAIKey != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		return strings.Split(value, ",")
	}
	return defaultValue
}
