package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"

	"halalassist-core/internal/domain/entity"
	"halalassist-core/internal/domain/repository"
	"halalassist-core/internal/extract"
	"halalassist-core/internal/prompt"
)

// Analyzer runs the two halal lookup modes: certificate check for finished
// products and critical-point audit for single ingredients. When an embedder
// and cache are wired it serves semantically similar queries from the cache
// before going upstream.
type Analyzer struct {
	gen      repository.TextGenerator
	embedder repository.Embedder
	cache    repository.AnswerCache
}

func NewAnalyzer(gen repository.TextGenerator) *Analyzer {
	return &Analyzer{gen: gen}
}

// WithCache wires the optional semantic answer cache.
func (a *Analyzer) WithCache(emb repository.Embedder, cache repository.AnswerCache) *Analyzer {
	a.embedder = emb
	a.cache = cache
	return a
}

func (a *Analyzer) Analyze(ctx context.Context, req entity.AnalysisRequest) (*entity.AnalysisResult, error) {
	query := strings.TrimSpace(req.Query)
	if query == "" {
		return nil, fmt.Errorf("%w: query is required", entity.ErrInvalidRequest)
	}

	var instruction string
	switch req.Mode {
	case entity.ModeCertificateCheck:
		instruction = prompt.CertificateCheck(query)
	case entity.ModeIngredientAudit:
		instruction = prompt.IngredientAudit(query)
	default:
		return nil, fmt.Errorf("%w: unknown analysis mode %q", entity.ErrInvalidRequest, req.Mode)
	}

	var vector []float32
	if a.cache != nil && a.embedder != nil {
		v, err := a.embedder.CreateEmbedding(ctx, query)
		if err != nil {
			log.Printf("[ANALYZER] embedding failed, skipping cache: %v", err)
		} else {
			vector = v
			if cached, err := a.cache.Lookup(ctx, vector, req.Mode); err == nil && cached != nil {
				cached.Cached = true
				return cached, nil
			}
		}
	}

	raw, err := a.gen.Generate(ctx, instruction, nil)
	if err != nil {
		return nil, fmt.Errorf("halal analysis failed: %w", err)
	}

	res := extract.AnalysisFrom(raw)

	if vector != nil && !res.Degraded {
		// The request context may expire before the upsert finishes.
		go func() {
			if err := a.cache.Save(context.Background(), query, req.Mode, res, vector); err != nil {
				log.Printf("[ANALYZER] cache save failed: %v", err)
			}
		}()
	}

	return res, nil
}
