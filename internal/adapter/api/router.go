package api

import (
	"log"
	"os"

	"halalassist-core/internal/domain/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRouter(app *fiber.App, handler *Handler, limiter repository.RequestLimiter) {
	// Middleware
	app.Use(logger.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "healthy",
			"version": os.Getenv("APP_VERSION"),
			"env":     os.Getenv("ENV"),
		})
	})

	// API Versioning
	v1 := app.Group("/v1")
	v1.Get("/debug", handler.HandleDebug)
	v1.Get("/image-proxy", handler.HandleImageProxy)

	// AI endpoints share the per-client daily quota.
	ai := v1.Group("", RateLimit(limiter))
	ai.Post("/analyze", handler.HandleAnalyze)
	ai.Post("/chat", handler.HandleChat)
	ai.Post("/copywriting", handler.HandleCopywriting)
	ai.Post("/image", handler.HandleImage)
}

// RateLimit enforces the per-client daily quota when a limiter is wired.
// A limiter outage fails open; quota is best effort, not a security boundary.
func RateLimit(limiter repository.RequestLimiter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if limiter == nil {
			return c.Next()
		}

		allowed, err := limiter.Allow(c.Context(), c.IP())
		if err != nil {
			log.Printf("[LIMITER] check failed for %s: %v", c.IP(), err)
			return c.Next()
		}
		if !allowed {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "rate limit exceeded: too many requests today"})
		}

		if err := limiter.Record(c.Context(), c.IP()); err != nil {
			log.Printf("[LIMITER] record failed for %s: %v", c.IP(), err)
		}
		return c.Next()
	}
}
