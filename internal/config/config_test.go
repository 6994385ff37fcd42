package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("DATABASE_URL", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Empty(t, cfg.GeminiAPIKey)
	assert.Empty(t, cfg.DatabaseURL)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("DATABASE_URL", "postgres://localhost/test")
	t.Setenv("SUMMARY_MODEL", "model-a")
	t.Setenv("GENERATION_MODEL", "model-b")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "test-key", cfg.GeminiAPIKey)
	assert.Equal(t, "postgres://localhost/test", cfg.DatabaseURL)
	assert.Equal(t, "model-a", cfg.SummaryModel)
	assert.Equal(t, "model-b", cfg.GenerationModel)
}

func TestLoad_InvalidPort(t *testing.T) {
	for _, port := range []string{"abc", "-1", "0", "70000"} {
		t.Setenv("PORT", port)
		_, err := Load()
		assert.Error(t, err, "port %q should be rejected", port)
	}
}
