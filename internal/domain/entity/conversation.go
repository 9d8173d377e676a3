package entity

import "time"

// Speaker identifies who produced a conversation turn.
type Speaker string

const (
	SpeakerUser      Speaker = "user"
	SpeakerAssistant Speaker = "bot"
)

// Turn is a single utterance in a conversation transcript.
type Turn struct {
	Speaker   Speaker   `json:"role"`
	Text      string    `json:"content"`
	Timestamp time.Time `json:"timestamp,omitempty"`
}

// Transcript is the ordered sequence of turns held by a session.
// Append order is the only ordering guarantee.
type Transcript []Turn

// ChatRequest carries the full client-held transcript, newest user turn last.
type ChatRequest struct {
	Messages Transcript `json:"messages"`
}

// ChatResponse is the assistant's reply to the newest user turn.
type ChatResponse struct {
	Text string `json:"text"`
}
