// Package main is the entry point for the byb-api server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/vanshika68-byb/before-you-buy-mvp/internal/config"
	"github.com/vanshika68-byb/before-you-buy-mvp/internal/fetch"
	"github.com/vanshika68-byb/before-you-buy-mvp/internal/http/handlers"
	"github.com/vanshika68-byb/before-you-buy-mvp/internal/http/mw"
	"github.com/vanshika68-byb/before-you-buy-mvp/internal/llm"
	"github.com/vanshika68-byb/before-you-buy-mvp/internal/logging"
	"github.com/vanshika68-byb/before-you-buy-mvp/internal/service"
	"github.com/vanshika68-byb/before-you-buy-mvp/internal/version"
)

func main() {
	// Initialize logger with TTY detection and format control
	logger := logging.SetDefault()

	v := version.Get()
	logger.Info("starting byb-api",
		"version", v.Version,
		"commit", v.Commit,
		"built", v.Date,
		"go_version", v.GoVersion,
	)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	if !cfg.HasCredential() {
		// The server still starts: requests answer with a shaped
		// configuration-error result instead of a refused connection.
		logger.Warn("OPENAI_API_KEY not set - analysis requests will degrade")
	}

	fetcher := fetch.New(fetch.Config{
		Timeout: cfg.FetchTimeout,
		Retry:   fetch.DefaultRetryPolicy(cfg.FetchRetryDelay),
		Logger:  logger,
	})
	model := llm.NewClient(llm.Config{
		APIKey:  cfg.OpenAIKey,
		BaseURL: cfg.OpenAIBaseURL,
		Timeout: cfg.LLMTimeout,
		Logger:  logger,
	})

	analysisSvc := service.NewAnalysisService(service.AnalysisServiceConfig{
		Model:     model,
		Fetcher:   fetcher,
		ModelName: cfg.Model,
		HasAPIKey: cfg.HasCredential(),
		Logger:    logger,
	})
	recommendSvc := service.NewRecommendService(service.RecommendServiceConfig{
		Model:     model,
		ModelName: cfg.VisionModel,
		HasAPIKey: cfg.HasCredential(),
		Logger:    logger,
	})

	router := chi.NewRouter()

	// Global middleware
	router.Use(mw.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	// Analysis and recommendation requests span a page fetch plus model
	// inference; everything else answers fast.
	router.Use(mw.Timeout(mw.TimeoutConfig{
		Default:          15 * time.Second,
		Extended:         cfg.LLMTimeout + cfg.FetchTimeout,
		ExtendedPatterns: []string{"/analyze", "/recommend"},
	}))

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID", "Retry-After"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Selfie uploads arrive base64-encoded; 10MB covers phone photos with
	// headroom.
	router.Use(middleware.RequestSize(10 * 1024 * 1024))

	// Model calls are the expensive resource behind every request
	router.Use(httprate.LimitByIP(30, time.Minute))
	router.Use(middleware.Throttle(20))

	humaConfig := huma.DefaultConfig("Before You Buy API", v.Version)
	humaConfig.Info.Description = "Dermatology-informed skincare product analysis: paste a product URL for a formulation verdict, or submit a selfie for personalized recommendations."
	humaConfig.Servers = []*huma.Server{
		{URL: cfg.BaseURL, Description: "API Server"},
	}
	api := humachi.New(router, humaConfig)

	huma.Get(api, "/api/v1/health", handlers.HealthCheck)
	huma.Post(api, "/api/v1/analyze", handlers.NewAnalyzeHandler(analysisSvc).Analyze)
	huma.Post(api, "/api/v1/recommend", handlers.NewRecommendHandler(recommendSvc).Recommend)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: cfg.LLMTimeout + cfg.FetchTimeout + 30*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
		<-sigChan

		logger.Info("shutting down server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown error", "error", err)
		}
	}()

	logger.Info("starting server", "port", cfg.Port, "base_url", cfg.BaseURL)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
