// Package config loads process configuration from the environment once at
// startup. A .env.dev file is honored for local development.
package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	// GeminiAPIKey gates every AI operation. The server still boots without
	// it so the health and relay endpoints keep working.
	GeminiAPIKey string

	AnalysisModel string
	ChatModel     string
	CopyModel     string
	VisionModel   string
	EmbedModel    string

	ImageEndpoint string

	// Optional infrastructure; empty means the feature is not wired.
	RedisAddr        string
	QdrantHost       string
	QdrantPort       int
	QdrantCollection string
	DailyLimit       int
}

func Load() *Config {
	if err := godotenv.Load(".env.dev"); err != nil {
		log.Println("Warning: .env.dev file not found, using system environment variables")
	}

	qdrantPort, _ := strconv.Atoi(os.Getenv("QDRANT_PORT"))
	dailyLimit, _ := strconv.Atoi(os.Getenv("DAILY_REQUEST_LIMIT"))
	if dailyLimit <= 0 {
		dailyLimit = 200
	}

	return &Config{
		Port:             envOr("PORT", "8080"),
		GeminiAPIKey:     os.Getenv("GEMINI_API_KEY"),
		AnalysisModel:    envOr("ANALYSIS_MODEL", "gemini-1.5-flash-latest"),
		ChatModel:        envOr("CHAT_MODEL", "gemini-flash-latest"),
		CopyModel:        envOr("COPY_MODEL", "gemini-2.5-flash"),
		VisionModel:      envOr("VISION_MODEL", "gemini-1.5-flash-latest"),
		EmbedModel:       envOr("EMBED_MODEL", "text-embedding-004"),
		ImageEndpoint:    envOr("IMAGE_ENDPOINT", "https://image.pollinations.ai"),
		RedisAddr:        os.Getenv("REDIS_ADDR"),
		QdrantHost:       os.Getenv("QDRANT_HOST"),
		QdrantPort:       qdrantPort,
		QdrantCollection: envOr("QDRANT_COLLECTION", "halal_answers"),
		DailyLimit:       dailyLimit,
	}
}

// HasGemini reports whether AI operations can run at all.
func (c *Config) HasGemini() bool {
	return c.GeminiAPIKey != ""
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
