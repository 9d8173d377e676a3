package client

import (
	"context"
	"fmt"
	"strings"
	"time"

	"halalassist-core/internal/domain/entity"
	"halalassist-core/internal/domain/repository"

	"google.golang.org/genai"
)

const generateTimeout = 30 * time.Second

// GeminiGateway is the single choke point to the generative model: one call
// in, one text blob out, or a failure. No retries here; the caller decides
// what a failure means for its surface.
type GeminiGateway struct {
	client *genai.Client
	model  string
}

func NewGeminiClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	return genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
}

func NewGeminiGateway(c *genai.Client, model string) *GeminiGateway {
	return &GeminiGateway{client: c, model: model}
}

func (g *GeminiGateway) Generate(ctx context.Context, prompt string, opts *repository.GenerateOptions) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, generateTimeout)
	defer cancel()

	var contents []*genai.Content
	if opts != nil {
		for _, turn := range opts.History {
			contents = append(contents, &genai.Content{
				Role:  geminiRole(turn.Speaker),
				Parts: []*genai.Part{{Text: turn.Text}},
			})
		}
	}

	parts := []*genai.Part{{Text: prompt}}
	if opts != nil && len(opts.Image) > 0 {
		mime := opts.ImageMIME
		if mime == "" {
			mime = "image/jpeg"
		}
		parts = append(parts, &genai.Part{
			InlineData: &genai.Blob{MIMEType: mime, Data: opts.Image},
		})
	}
	contents = append(contents, &genai.Content{Role: "user", Parts: parts})

	result, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", entity.ErrUpstreamUnavailable, err)
	}

	text := result.Text()
	if strings.TrimSpace(text) == "" {
		return "", entity.ErrUpstreamEmpty
	}
	return text, nil
}

// geminiRole maps transcript speakers onto the wire roles the model expects.
func geminiRole(s entity.Speaker) string {
	if s == entity.SpeakerAssistant {
		return "model"
	}
	return "user"
}
