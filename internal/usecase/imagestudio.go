package usecase

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"math/rand"
	"strings"

	"halalassist-core/internal/domain/entity"
	"halalassist-core/internal/domain/repository"
	"halalassist-core/internal/extract"
	"halalassist-core/internal/prompt"
)

const defaultStyle = "Studio Minimalis"

// Minimum usable lengths for an AI-enhanced prompt. Anything shorter is
// treated as a failed enhancement and the caller's prompt is used verbatim.
const (
	minVisionPromptLen = 10
	minTextPromptLen   = 5
)

// ImageStudio runs the two-phase product photo flow: prompt enhancement
// (vision-guided when a source image is uploaded, text-only otherwise),
// then synthesis through the external generator. Phase two never starts
// before phase one's result or its fallback is known.
type ImageStudio struct {
	gen   repository.TextGenerator
	synth repository.ImageSynthesizer
	seed  func() int
}

func NewImageStudio(gen repository.TextGenerator, synth repository.ImageSynthesizer) *ImageStudio {
	return &ImageStudio{
		gen:   gen,
		synth: synth,
		seed:  func() int { return rand.Intn(1000000) },
	}
}

// WithSeed overrides the seed source; tests use a fixed one.
func (s *ImageStudio) WithSeed(seed func() int) *ImageStudio {
	s.seed = seed
	return s
}

func (s *ImageStudio) Create(ctx context.Context, req entity.ImageRequest) (*entity.ImageResult, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return nil, fmt.Errorf("%w: prompt is required", entity.ErrInvalidRequest)
	}
	if req.Style == "" {
		req.Style = defaultStyle
	}

	enhanced := s.enhance(ctx, req)
	seed := s.seed()

	img, err := s.synth.Synthesize(ctx, enhanced, seed)
	if err != nil {
		return nil, fmt.Errorf("image synthesis failed: %w", err)
	}

	return &entity.ImageResult{
		ImageURL:       "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(img),
		EnhancedPrompt: enhanced,
		Fallback:       enhanced == req.Prompt,
		Seed:           seed,
	}, nil
}

// enhance is best-effort: every failure path falls back to the caller's
// original prompt so generation proceeds rather than aborting.
func (s *ImageStudio) enhance(ctx context.Context, req entity.ImageRequest) string {
	if len(req.SourceImage) > 0 {
		raw, err := s.gen.Generate(ctx, prompt.VisionRecreation(req.Style), &repository.GenerateOptions{
			Image:     req.SourceImage,
			ImageMIME: "image/jpeg",
		})
		if err != nil {
			log.Printf("[STUDIO] vision analysis failed: %v", err)
			return req.Prompt
		}
		if text := extract.CleanPromptText(raw); len(text) > minVisionPromptLen {
			return text
		}
		return req.Prompt
	}

	raw, err := s.gen.Generate(ctx, prompt.Enhancement(req.Prompt, req.Style), nil)
	if err != nil {
		log.Printf("[STUDIO] prompt enhancement failed: %v", err)
		return req.Prompt
	}
	if text := extract.CleanPromptText(raw); len(text) > minTextPromptLen {
		return text
	}
	return req.Prompt
}
