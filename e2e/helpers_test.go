// ABOUTME: Test helpers for end-to-end API tests
// ABOUTME: Boots a full server over the real repository artifacts

package e2e

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pricewise/laptop-price-api/cache"
	"github.com/pricewise/laptop-price-api/config"
	"github.com/pricewise/laptop-price-api/handlers"
	"github.com/pricewise/laptop-price-api/middleware"
	"github.com/pricewise/laptop-price-api/services"
)

// startServer wires the handlers and middleware exactly as main does and
// serves them from an httptest server backed by the checked-in artifacts.
func startServer(t *testing.T, rateLimit int) *httptest.Server {
	t.Helper()

	cfg := &config.Config{
		Port:            "0",
		FeaturesTTL:     300,
		MaxRequestBytes: 64 * 1024,
		PipelinePath:    "../artifacts/pipeline.json",
		FeaturesPath:    "../artifacts/features.json",
		Constraints:     config.DefaultConstraints(),
	}

	pipeline, options, err := services.LoadArtifacts(cfg.PipelinePath, cfg.FeaturesPath)
	if err != nil {
		t.Fatalf("Failed to load artifacts: %v", err)
	}

	h := handlers.NewHandler(cfg, cache.New(5*time.Minute), services.NewPredictionService(pipeline), options)

	var limiter *middleware.RateLimiter
	if rateLimit > 0 {
		limiter = middleware.NewRateLimiter(rateLimit, time.Minute)
	}

	mux := http.NewServeMux()
	for _, route := range h.Routes() {
		handler := middleware.Chain(route.Handler,
			middleware.LogRequest,
			middleware.CORS,
			middleware.RateLimit(limiter),
		)
		mux.HandleFunc(route.Method+" "+route.Path, handler)
		mux.HandleFunc("OPTIONS "+route.Path, middleware.CORS(route.Handler))
	}

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}
