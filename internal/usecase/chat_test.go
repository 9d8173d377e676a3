package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"halalassist-core/internal/domain/entity"
	"halalassist-core/internal/prompt"
	"halalassist-core/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func userTurn(text string) entity.Turn {
	return entity.Turn{Speaker: entity.SpeakerUser, Text: text}
}

func botTurn(text string) entity.Turn {
	return entity.Turn{Speaker: entity.SpeakerAssistant, Text: text}
}

func TestChatReplaysPrimedHistory(t *testing.T) {
	gen := &stubGen{response: "Waalaikumsalam, silakan."}
	c := usecase.NewChat(gen)

	transcript := entity.Transcript{
		botTurn("greeting"),
		userTurn("apa itu penyelia halal?"),
		botTurn("Penyelia halal adalah..."),
		userTurn("apakah wajib?"),
	}

	text, err := c.Reply(context.Background(), transcript)
	assert.NoError(t, err)
	assert.Equal(t, "Waalaikumsalam, silakan.", text)

	// The newest user turn is the message itself, not part of the history.
	assert.Equal(t, "apakah wajib?", gen.prompts[0])

	history := gen.opts[0].History
	assert.Equal(t, prompt.ChatSystem, history[0].Text)
	assert.Equal(t, prompt.ChatAck, history[1].Text)
	assert.Equal(t, "greeting", history[2].Text)
	assert.Len(t, history, 2+3)
}

func TestChatWindowsLongHistory(t *testing.T) {
	gen := &stubGen{response: "ok"}
	c := usecase.NewChat(gen)

	var transcript entity.Transcript
	for i := 0; i < 40; i++ {
		transcript = append(transcript, userTurn(fmt.Sprintf("q%d", i)), botTurn(fmt.Sprintf("a%d", i)))
	}
	transcript = append(transcript, userTurn("newest"))

	_, err := c.Reply(context.Background(), transcript)
	assert.NoError(t, err)

	history := gen.opts[0].History
	// Priming pair stays pinned; the replayed tail is capped.
	assert.Len(t, history, 2+usecase.DefaultHistoryLimit)
	assert.Equal(t, prompt.ChatSystem, history[0].Text)
	assert.Equal(t, "a39", history[len(history)-1].Text)
}

func TestChatRejectsBadTranscripts(t *testing.T) {
	gen := &stubGen{response: "ok"}
	c := usecase.NewChat(gen)

	_, err := c.Reply(context.Background(), nil)
	assert.ErrorIs(t, err, entity.ErrInvalidRequest)

	_, err = c.Reply(context.Background(), entity.Transcript{botTurn("only bot")})
	assert.ErrorIs(t, err, entity.ErrInvalidRequest)

	_, err = c.Reply(context.Background(), entity.Transcript{userTurn("  ")})
	assert.ErrorIs(t, err, entity.ErrInvalidRequest)

	assert.Empty(t, gen.prompts)
}
