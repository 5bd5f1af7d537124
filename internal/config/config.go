// Package config provides environment-driven configuration for the cv-matcher
// server. Credentials are only ever read from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
)

// Defaults for everything that is not a credential.
const (
	DefaultPort                = 8080
	DefaultMaxJobs             = 100
	DefaultSimilarityThreshold = 0.3
	DefaultFetchTimeout        = 10 * time.Second
)

// Config holds all runtime configuration.
type Config struct {
	Port int `validate:"min=1,max=65535"`

	// Upstream job sources. URLs left empty fall back to the per-fetcher
	// production defaults.
	JoobleAPIKey string
	JoobleURL    string `validate:"omitempty,url"`
	JobindexURL  string `validate:"omitempty,url"`
	NavURL       string `validate:"omitempty,url"`

	// Embedding model.
	GeminiAPIKey   string
	EmbeddingModel string

	// Pipeline tuning.
	MaxJobs             int           `validate:"min=1"`
	SimilarityThreshold float64       `validate:"gte=0,lte=1"`
	FetchTimeout        time.Duration `validate:"min=0"`

	// Optional override for the bundled location catalog.
	LocationsFile string
}

// Load reads configuration from the environment, applying defaults for
// anything unset, and validates the result.
func Load() (*Config, error) {
	cfg := &Config{
		Port:                DefaultPort,
		JoobleAPIKey:        os.Getenv("JOOBLE_API_KEY"),
		JoobleURL:           os.Getenv("JOOBLE_URL"),
		JobindexURL:         os.Getenv("JOBINDEX_URL"),
		NavURL:              os.Getenv("NAV_URL"),
		GeminiAPIKey:        os.Getenv("GEMINI_API_KEY"),
		EmbeddingModel:      os.Getenv("EMBEDDING_MODEL"),
		MaxJobs:             DefaultMaxJobs,
		SimilarityThreshold: DefaultSimilarityThreshold,
		FetchTimeout:        DefaultFetchTimeout,
		LocationsFile:       os.Getenv("LOCATIONS_FILE"),
	}

	var err error
	if cfg.Port, err = intEnv("PORT", cfg.Port); err != nil {
		return nil, err
	}
	if cfg.MaxJobs, err = intEnv("MAX_JOBS", cfg.MaxJobs); err != nil {
		return nil, err
	}
	if cfg.SimilarityThreshold, err = floatEnv("SIMILARITY_THRESHOLD", cfg.SimilarityThreshold); err != nil {
		return nil, err
	}
	if cfg.FetchTimeout, err = durationEnv("FETCH_TIMEOUT", cfg.FetchTimeout); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration against its struct tags.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func intEnv(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return v, nil
}

func floatEnv(key string, fallback float64) (float64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return v, nil
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return v, nil
}
