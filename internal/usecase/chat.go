package usecase

import (
	"context"
	"fmt"
	"strings"

	"halalassist-core/internal/domain/entity"
	"halalassist-core/internal/domain/repository"
	"halalassist-core/internal/prompt"
)

// DefaultHistoryLimit bounds how many transcript turns are replayed upstream.
// The priming pair is pinned and does not count against the limit.
const DefaultHistoryLimit = 20

// Chat answers the newest user turn of a transcript, replaying the prior
// turns as history context.
type Chat struct {
	gen          repository.TextGenerator
	historyLimit int
}

func NewChat(gen repository.TextGenerator) *Chat {
	return &Chat{gen: gen, historyLimit: DefaultHistoryLimit}
}

// Reply expects the full transcript with the newest user turn last.
func (c *Chat) Reply(ctx context.Context, transcript entity.Transcript) (string, error) {
	if len(transcript) == 0 {
		return "", fmt.Errorf("%w: empty transcript", entity.ErrInvalidRequest)
	}
	last := transcript[len(transcript)-1]
	if last.Speaker != entity.SpeakerUser || strings.TrimSpace(last.Text) == "" {
		return "", fmt.Errorf("%w: transcript must end with a non-empty user turn", entity.ErrInvalidRequest)
	}

	history := append(prompt.ChatPriming(), c.window(transcript[:len(transcript)-1])...)

	text, err := c.gen.Generate(ctx, last.Text, &repository.GenerateOptions{History: history})
	if err != nil {
		return "", fmt.Errorf("chat generation failed: %w", err)
	}
	return text, nil
}

// window keeps only the newest turns so the context sent upstream stays
// bounded as conversations grow.
func (c *Chat) window(turns entity.Transcript) entity.Transcript {
	if c.historyLimit > 0 && len(turns) > c.historyLimit {
		return turns[len(turns)-c.historyLimit:]
	}
	return turns
}
