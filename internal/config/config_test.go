package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets every variable Load reads so tests control the environment.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "JOOBLE_API_KEY", "JOOBLE_URL", "JOBINDEX_URL", "NAV_URL",
		"GEMINI_API_KEY", "EMBEDDING_MODEL", "MAX_JOBS",
		"SIMILARITY_THRESHOLD", "FETCH_TIMEOUT", "LOCATIONS_FILE",
	} {
		t.Setenv(key, "")
	}
}

// TestLoad_Defaults tests that an empty environment yields the defaults.
func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, DefaultMaxJobs, cfg.MaxJobs)
	assert.Equal(t, DefaultSimilarityThreshold, cfg.SimilarityThreshold)
	assert.Equal(t, DefaultFetchTimeout, cfg.FetchTimeout)
	assert.Equal(t, "", cfg.JoobleAPIKey)
	assert.Equal(t, "", cfg.GeminiAPIKey)
}

// TestLoad_Overrides tests environment overrides and parsing.
func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("MAX_JOBS", "25")
	t.Setenv("SIMILARITY_THRESHOLD", "0.5")
	t.Setenv("FETCH_TIMEOUT", "3s")
	t.Setenv("JOOBLE_API_KEY", "abc123")
	t.Setenv("NAV_URL", "https://example.com/feed")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 25, cfg.MaxJobs)
	assert.Equal(t, 0.5, cfg.SimilarityThreshold)
	assert.Equal(t, 3*time.Second, cfg.FetchTimeout)
	assert.Equal(t, "abc123", cfg.JoobleAPIKey)
	assert.Equal(t, "https://example.com/feed", cfg.NavURL)
}

// TestLoad_InvalidValues tests rejection of unparsable or out-of-range values.
func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"bad port", "PORT", "not-a-number"},
		{"port out of range", "PORT", "70000"},
		{"bad max jobs", "MAX_JOBS", "lots"},
		{"zero max jobs", "MAX_JOBS", "0"},
		{"threshold above one", "SIMILARITY_THRESHOLD", "1.5"},
		{"bad timeout", "FETCH_TIMEOUT", "soon"},
		{"bad nav url", "NAV_URL", "not a url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.val)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
