// Package session holds the ephemeral conversation state for the chat and
// voice surfaces. A session lives for the lifetime of one page visit; nothing
// here survives a restart.
package session

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"halalassist-core/internal/domain/entity"
	"halalassist-core/internal/prompt"
)

// Replier answers the newest user turn of a transcript. The chat usecase
// satisfies this; tests plug in stubs.
type Replier interface {
	Reply(ctx context.Context, transcript entity.Transcript) (string, error)
}

// Session is an append-only transcript with two logical states: Idle and
// AwaitingReply. At most one Send is in flight at a time; Reset truncates
// back to the seeded greeting and suppresses whatever that in-flight Send
// eventually produces.
type Session struct {
	mu       sync.Mutex
	turns    entity.Transcript
	epoch    uint64
	inFlight bool
	now      func() time.Time
}

func New() *Session {
	s := &Session{now: time.Now}
	s.turns = entity.Transcript{s.greeting()}
	return s
}

func (s *Session) greeting() entity.Turn {
	return entity.Turn{
		Speaker:   entity.SpeakerAssistant,
		Text:      prompt.Greeting,
		Timestamp: s.now(),
	}
}

// Transcript returns a copy; the internal slice is never shared.
func (s *Session) Transcript() entity.Transcript {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(entity.Transcript, len(s.turns))
	copy(out, s.turns)
	return out
}

// Reset truncates the transcript to the seeded greeting. It takes effect
// immediately even while a Send is in flight; that Send's result is dropped.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turns = entity.Transcript{s.greeting()}
	s.epoch++
	s.inFlight = false
}

// Send appends the user turn, asks the replier for an answer with the full
// transcript as context, and appends the assistant turn. On upstream failure
// the fixed apology turn is appended instead; the surface never sees a raw
// error. Returns the text that was appended on the assistant side.
func (s *Session) Send(ctx context.Context, r Replier, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("%w: message text is required", entity.ErrInvalidRequest)
	}

	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return "", entity.ErrSessionBusy
	}
	s.inFlight = true
	epoch := s.epoch
	s.turns = append(s.turns, entity.Turn{
		Speaker:   entity.SpeakerUser,
		Text:      text,
		Timestamp: s.now(),
	})
	snapshot := make(entity.Transcript, len(s.turns))
	copy(snapshot, s.turns)
	s.mu.Unlock()

	reply, err := r.Reply(ctx, snapshot)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.epoch != epoch {
		// Reset happened while we were waiting; drop the late reply.
		return "", entity.ErrSessionReset
	}
	s.inFlight = false

	if err != nil {
		reply = prompt.Apology
	}
	s.turns = append(s.turns, entity.Turn{
		Speaker:   entity.SpeakerAssistant,
		Text:      reply,
		Timestamp: s.now(),
	})
	return reply, nil
}
