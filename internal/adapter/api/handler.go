package api

import (
	"encoding/base64"
	"errors"
	"strings"
	"time"

	"halalassist-core/internal/domain/entity"
	"halalassist-core/internal/domain/repository"
	"halalassist-core/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

// Handler is the delivery layer: it validates the request boundary, maps
// business errors to HTTP statuses, and renders whatever the usecases return.
// AI usecases are nil when no API key is configured; those endpoints then
// short-circuit with a configuration error before any network call.
type Handler struct {
	analyzer   *usecase.Analyzer
	chat       *usecase.Chat
	copywriter *usecase.Copywriter
	studio     *usecase.ImageStudio
	relay      repository.MediaRelay
	pinger     repository.TextGenerator
}

func NewHandler(
	analyzer *usecase.Analyzer,
	chat *usecase.Chat,
	copywriter *usecase.Copywriter,
	studio *usecase.ImageStudio,
	relay repository.MediaRelay,
	pinger repository.TextGenerator,
) *Handler {
	return &Handler{
		analyzer:   analyzer,
		chat:       chat,
		copywriter: copywriter,
		studio:     studio,
		relay:      relay,
		pinger:     pinger,
	}
}

func (h *Handler) HandleAnalyze(c *fiber.Ctx) error {
	if h.analyzer == nil {
		return configMissing(c)
	}

	var req entity.AnalysisRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	// Legacy wire value from the first portal release.
	if req.Mode == "id-check" {
		req.Mode = entity.ModeCertificateCheck
	}

	res, err := h.analyzer.Analyze(c.Context(), req)
	if err != nil {
		return h.fail(c, err)
	}

	c.Set("X-Halal-Cache-Hit", "false")
	if res.Cached {
		c.Set("X-Halal-Cache-Hit", "true")
	}
	return c.Status(fiber.StatusOK).JSON(res)
}

func (h *Handler) HandleChat(c *fiber.Ctx) error {
	if h.chat == nil {
		return configMissing(c)
	}

	var req entity.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	text, err := h.chat.Reply(c.Context(), req.Messages)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(entity.ChatResponse{Text: text})
}

func (h *Handler) HandleCopywriting(c *fiber.Ctx) error {
	if h.copywriter == nil {
		return configMissing(c)
	}

	var req entity.CopyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	res, err := h.copywriter.Generate(c.Context(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(res)
}

type imageBody struct {
	Prompt string `json:"prompt"`
	Style  string `json:"style"`
	Image  string `json:"image"`
}

func (h *Handler) HandleImage(c *fiber.Ctx) error {
	if h.studio == nil {
		return configMissing(c)
	}

	var body imageBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	req := entity.ImageRequest{Prompt: body.Prompt, Style: body.Style}
	if body.Image != "" {
		decoded, err := decodeDataURI(body.Image)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "image must be valid base64"})
		}
		req.SourceImage = decoded
	}

	res, err := h.studio.Create(c.Context(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(res)
}

func (h *Handler) HandleImageProxy(c *fiber.Ctx) error {
	sourceURL := c.Query("url")
	if sourceURL == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "URL parameter required"})
	}

	body, contentType, err := h.relay.Relay(c.Context(), sourceURL)
	if err != nil {
		return h.fail(c, err)
	}

	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderCacheControl, "public, max-age=31536000, immutable")
	c.Set(fiber.HeaderAccessControlAllowOrigin, "*")
	return c.Status(fiber.StatusOK).Send(body)
}

// HandleDebug pings the upstream once and reports whether the credential and
// the model path work end to end. Always 200; failures are embedded.
func (h *Handler) HandleDebug(c *fiber.Ctx) error {
	diag := fiber.Map{
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"hasApiKey": h.pinger != nil,
	}

	if h.pinger == nil {
		diag["error"] = entity.ErrMissingAPIKey.Error()
		return c.Status(fiber.StatusOK).JSON(diag)
	}

	text, err := h.pinger.Generate(c.Context(), "Say 'API is working' in one sentence", nil)
	if err != nil {
		diag["error"] = err.Error()
	} else {
		diag["test"] = fiber.Map{"success": true, "response": text}
	}
	return c.Status(fiber.StatusOK).JSON(diag)
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, entity.ErrInvalidRequest):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, entity.ErrRateLimitExceeded):
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, entity.ErrUpstreamUnavailable),
		errors.Is(err, entity.ErrUpstreamEmpty),
		errors.Is(err, entity.ErrUpstreamFetch):
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal gateway error"})
	}
}

func configMissing(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gemini API Key is not configured"})
}

// decodeDataURI accepts both plain base64 and a full data URI.
func decodeDataURI(s string) ([]byte, error) {
	if i := strings.Index(s, "base64,"); i >= 0 {
		s = s[i+len("base64,"):]
	}
	return base64.StdEncoding.DecodeString(s)
}
