// ABOUTME: Entry point for the laptop price prediction API server
// ABOUTME: Loads artifacts at startup and serves health, features, and predict endpoints

package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/pricewise/laptop-price-api/cache"
	"github.com/pricewise/laptop-price-api/config"
	"github.com/pricewise/laptop-price-api/handlers"
	"github.com/pricewise/laptop-price-api/logger"
	"github.com/pricewise/laptop-price-api/middleware"
	"github.com/pricewise/laptop-price-api/services"
)

func main() {
	// Local development convenience; a missing .env is not an error
	godotenv.Load()

	// Initialize structured logging
	logger.Init()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting laptop price API", "version", handlers.APIVersion)

	// Load the pipeline artifact and feature snapshot. Without them the
	// process must not begin serving.
	pipeline, options, err := services.LoadArtifacts(cfg.PipelinePath, cfg.FeaturesPath)
	if err != nil {
		slog.Error("Failed to load artifacts", "error", err)
		os.Exit(1)
	}

	// Initialize cache
	cacheTTL := time.Duration(cfg.FeaturesTTL) * time.Second
	c := cache.New(cacheTTL)
	slog.Info("Cache initialized", "ttl", cacheTTL)

	// Initialize handlers
	h := handlers.NewHandler(cfg, c, services.NewPredictionService(pipeline), options)

	// Per-class rate limiters; nil disables limiting
	var defaultLimiter, predictLimiter *middleware.RateLimiter
	if cfg.RateLimitEnabled {
		defaultLimiter = middleware.NewRateLimiter(cfg.RateLimitDefault, time.Minute)
		predictLimiter = middleware.NewRateLimiter(cfg.RateLimitPredict, time.Minute)
	}

	// Register routes; method matching is handled by the route patterns
	mux := http.NewServeMux()
	for _, route := range h.Routes() {
		limiter := defaultLimiter
		if route.Write {
			limiter = predictLimiter
		}
		handler := middleware.Chain(route.Handler,
			middleware.LogRequest,
			middleware.CORS,
			middleware.RateLimit(limiter),
		)
		mux.HandleFunc(route.Method+" "+route.Path, handler)
		// CORS preflight for the same path
		mux.HandleFunc("OPTIONS "+route.Path, middleware.CORS(route.Handler))
	}

	// Start server
	addr := ":" + cfg.Port
	slog.Info("Server listening", "addr", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
