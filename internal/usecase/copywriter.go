package usecase

import (
	"context"
	"fmt"
	"strings"

	"halalassist-core/internal/domain/entity"
	"halalassist-core/internal/domain/repository"
	"halalassist-core/internal/extract"
	"halalassist-core/internal/prompt"
)

// Copywriter produces the three-channel marketing copy set for one product.
type Copywriter struct {
	gen repository.TextGenerator
}

func NewCopywriter(gen repository.TextGenerator) *Copywriter {
	return &Copywriter{gen: gen}
}

func (c *Copywriter) Generate(ctx context.Context, req entity.CopyRequest) (*entity.CopyResult, error) {
	if strings.TrimSpace(req.ProductName) == "" {
		return nil, fmt.Errorf("%w: productName is required", entity.ErrInvalidRequest)
	}

	raw, err := c.gen.Generate(ctx, prompt.Copywriting(req), nil)
	if err != nil {
		return nil, fmt.Errorf("copywriting generation failed: %w", err)
	}
	return extract.CopyFrom(raw), nil
}
