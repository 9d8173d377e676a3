package repository

import (
	"context"

	"halalassist-core/internal/domain/entity"
)

// GenerateOptions carries the optional context for one generation call:
// prior conversation turns and at most one inline image.
type GenerateOptions struct {
	History   entity.Transcript
	Image     []byte
	ImageMIME string
}

// TextGenerator is the single choke point to the external model service.
// One call in, one raw text blob out, or a failure. No internal retries.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string, opts *GenerateOptions) (string, error)
}

type Embedder interface {
	CreateEmbedding(ctx context.Context, text string) ([]float32, error)
}

// AnswerCache is the semantic cache in front of the analyzer.
type AnswerCache interface {
	Lookup(ctx context.Context, vector []float32, mode entity.AnalysisMode) (*entity.AnalysisResult, error)
	Save(ctx context.Context, query string, mode entity.AnalysisMode, res *entity.AnalysisResult, vector []float32) error
}

// RequestLimiter caps how many AI calls a single client may make per day.
type RequestLimiter interface {
	Allow(ctx context.Context, clientID string) (bool, error)
	Record(ctx context.Context, clientID string) error
}

// ImageSynthesizer turns a finished prompt into image bytes.
type ImageSynthesizer interface {
	Synthesize(ctx context.Context, prompt string, seed int) ([]byte, error)
}

// MediaRelay fetches an external image so the browser never has to.
type MediaRelay interface {
	Relay(ctx context.Context, sourceURL string) (body []byte, contentType string, err error)
}
