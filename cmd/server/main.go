package main

import (
	"context"
	"log"

	"halalassist-core/internal/adapter/api"
	"halalassist-core/internal/adapter/client"
	"halalassist-core/internal/adapter/store"
	"halalassist-core/internal/config"
	"halalassist-core/internal/domain/repository"
	"halalassist-core/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/qdrant/go-client/qdrant"
	"github.com/redis/go-redis/v9"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()

	var (
		analyzer   *usecase.Analyzer
		chat       *usecase.Chat
		copywriter *usecase.Copywriter
		studio     *usecase.ImageStudio
		pinger     repository.TextGenerator
	)

	if cfg.HasGemini() {
		genaiClient, err := client.NewGeminiClient(ctx, cfg.GeminiAPIKey)
		if err != nil {
			log.Fatalf("failed to init genai client: %v", err)
		}

		analyzer = usecase.NewAnalyzer(client.NewGeminiGateway(genaiClient, cfg.AnalysisModel))
		chat = usecase.NewChat(client.NewGeminiGateway(genaiClient, cfg.ChatModel))
		copywriter = usecase.NewCopywriter(client.NewGeminiGateway(genaiClient, cfg.CopyModel))
		visionGateway := client.NewGeminiGateway(genaiClient, cfg.VisionModel)
		studio = usecase.NewImageStudio(visionGateway, client.NewPollinations(cfg.ImageEndpoint))
		pinger = visionGateway

		// Semantic answer cache is optional infrastructure.
		if cfg.QdrantHost != "" {
			qClient, err := qdrant.NewClient(&qdrant.Config{
				Host: cfg.QdrantHost,
				Port: cfg.QdrantPort,
			})
			if err != nil {
				log.Fatalf("failed to connect to qdrant: %v", err)
			}
			answerCache := store.NewQdrantCache(qClient, cfg.QdrantCollection)
			if err := answerCache.InitCollection(ctx, 768); err != nil {
				log.Fatalf("failed to init qdrant collection: %v", err)
			}
			embedder := client.NewEmbedderFromClient(genaiClient, cfg.EmbedModel)
			analyzer.WithCache(embedder, answerCache)
		}
	} else {
		log.Println("Warning: GEMINI_API_KEY not set, AI endpoints will return a configuration error")
	}

	// Redis for the per-client daily quota.
	var limiter repository.RequestLimiter
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr: cfg.RedisAddr,
		})
		limiter = store.NewRedisLimiter(rdb, cfg.DailyLimit)
	}

	// Initialize API Layer (Delivery Layer)
	app := fiber.New(fiber.Config{
		AppName:   "HalalAssist Core",
		BodyLimit: 16 * 1024 * 1024, // uploaded product photos arrive inline as base64
	})

	handler := api.NewHandler(analyzer, chat, copywriter, studio, client.NewHTTPRelay(), pinger)
	api.SetupRouter(app, handler, limiter)

	// Start Server
	log.Printf("HalalAssist Core running on port %s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
