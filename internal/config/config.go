// Package config provides environment-driven configuration for the service.
// Everything is optional except nothing: the service starts with no
// environment at all and degrades to deterministic composition without
// persistence.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds process configuration, loaded once at startup and read-only
// thereafter.
type Config struct {
	// Port is the HTTP listen port (PORT, default 8080).
	Port int

	// GeminiAPIKey enables the generation capability (GEMINI_API_KEY).
	// Empty means every document comes from the deterministic composer.
	GeminiAPIKey string

	// DatabaseURL enables the application history store (DATABASE_URL).
	// Empty disables persistence; generation endpoints are unaffected.
	DatabaseURL string

	// SummaryModel and GenerationModel override the default model names
	// (SUMMARY_MODEL, GENERATION_MODEL).
	SummaryModel    string
	GenerationModel string
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{
		Port:            8080,
		GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		SummaryModel:    os.Getenv("SUMMARY_MODEL"),
		GenerationModel: os.Getenv("GENERATION_MODEL"),
	}

	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil || p <= 0 || p > 65535 {
			return nil, fmt.Errorf("invalid PORT value %q", port)
		}
		cfg.Port = p
	}

	return cfg, nil
}
