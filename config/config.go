// ABOUTME: Configuration loader for the laptop price API server
// ABOUTME: Loads settings from environment variables with defaults

package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	// Server
	Port            string
	FeaturesTTL     int // seconds, cache TTL for the assembled features response
	MaxRequestBytes int64

	// Artifacts
	PipelinePath    string // fitted pipeline (encoding + regression weights)
	FeaturesPath    string // feature reference snapshot (categorical columns)
	ConstraintsPath string // optional YAML override for input constraints

	// Rate Limiting
	RateLimitEnabled bool // Enable rate limiting (default: true)
	RateLimitDefault int  // Requests per minute for read endpoints (default: 120)
	RateLimitPredict int  // Requests per minute for the predict endpoint (default: 60)

	// Input constraints (built-in defaults, optionally overridden by file)
	Constraints Constraints
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		FeaturesTTL:     getEnvInt("FEATURES_CACHE_TTL", 300),
		MaxRequestBytes: 64 * 1024,

		PipelinePath:    getEnv("PIPELINE_PATH", "artifacts/pipeline.json"),
		FeaturesPath:    getEnv("FEATURES_PATH", "artifacts/features.json"),
		ConstraintsPath: os.Getenv("CONSTRAINTS_PATH"),

		RateLimitEnabled: getEnvBool("RATE_LIMIT_ENABLED", true),
		RateLimitDefault: getEnvInt("RATE_LIMIT_DEFAULT", 120),
		RateLimitPredict: getEnvInt("RATE_LIMIT_PREDICT", 60),

		Constraints: DefaultConstraints(),
	}

	if cfg.ConstraintsPath != "" {
		cons, err := LoadConstraints(cfg.ConstraintsPath)
		if err != nil {
			return nil, fmt.Errorf("loading constraints from %s: %w", cfg.ConstraintsPath, err)
		}
		cfg.Constraints = *cons
	}

	if err := cfg.Constraints.Validate(); err != nil {
		return nil, fmt.Errorf("invalid input constraints: %w", err)
	}

	// Validate rate limit values
	for _, rl := range []struct {
		name  string
		value int
	}{
		{"RATE_LIMIT_DEFAULT", cfg.RateLimitDefault},
		{"RATE_LIMIT_PREDICT", cfg.RateLimitPredict},
	} {
		if rl.value < 1 || rl.value > 10000 {
			return nil, fmt.Errorf("%s must be between 1 and 10000, got %d", rl.name, rl.value)
		}
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
