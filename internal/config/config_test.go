package config_test

import (
	"testing"

	"halalassist-core/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("PORT", "")
	t.Setenv("DAILY_REQUEST_LIMIT", "")

	cfg := config.Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "gemini-1.5-flash-latest", cfg.AnalysisModel)
	assert.Equal(t, "text-embedding-004", cfg.EmbedModel)
	assert.Equal(t, "https://image.pollinations.ai", cfg.ImageEndpoint)
	assert.Equal(t, 200, cfg.DailyLimit)
	assert.False(t, cfg.HasGemini())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("PORT", "9999")
	t.Setenv("DAILY_REQUEST_LIMIT", "50")
	t.Setenv("IMAGE_ENDPOINT", "http://localhost:8888")

	cfg := config.Load()
	assert.True(t, cfg.HasGemini())
	assert.Equal(t, "9999", cfg.Port)
	assert.Equal(t, 50, cfg.DailyLimit)
	assert.Equal(t, "http://localhost:8888", cfg.ImageEndpoint)
}
