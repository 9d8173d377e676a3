package session

import (
	"context"
	"sync"
	"time"
)

// DefaultSilence is how long the listener waits after the last partial
// transcript before treating the utterance as complete.
const DefaultSilence = 1800 * time.Millisecond

// SpeechPlatform is the capability interface over the host platform's speech
// recognition and synthesis. The listener never talks to browser globals
// directly; a platform-specific implementation is injected.
type SpeechPlatform interface {
	Start(onPartial func(text string)) error
	Stop() error
	Speak(text string) error
}

// Listener drives the hands-free voice surface: it accumulates partial
// transcripts from the platform, and once the speaker pauses long enough it
// submits the utterance as a user turn and speaks the reply back.
type Listener struct {
	sess     *Session
	replier  Replier
	platform SpeechPlatform
	silence  time.Duration
	timeout  time.Duration

	mu      sync.Mutex
	pending string
	timer   *time.Timer
	active  bool
}

func NewListener(sess *Session, r Replier, platform SpeechPlatform) *Listener {
	return &Listener{
		sess:     sess,
		replier:  r,
		platform: platform,
		silence:  DefaultSilence,
		timeout:  30 * time.Second,
	}
}

// WithSilence overrides the silence window; tests use a short one.
func (l *Listener) WithSilence(d time.Duration) *Listener {
	l.silence = d
	return l
}

func (l *Listener) Begin() error {
	l.mu.Lock()
	l.active = true
	l.mu.Unlock()
	return l.platform.Start(l.onPartial)
}

func (l *Listener) End() error {
	l.mu.Lock()
	l.active = false
	l.pending = ""
	if l.timer != nil {
		l.timer.Stop()
	}
	l.mu.Unlock()
	return l.platform.Stop()
}

// onPartial replaces the pending utterance with the newest cumulative
// transcript and rearms the silence timer.
func (l *Listener) onPartial(text string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.active {
		return
	}
	l.pending = text
	if l.timer != nil {
		l.timer.Stop()
	}
	l.timer = time.AfterFunc(l.silence, l.flush)
}

func (l *Listener) flush() {
	l.mu.Lock()
	text := l.pending
	l.pending = ""
	active := l.active
	l.mu.Unlock()
	if !active || text == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), l.timeout)
	defer cancel()

	reply, err := l.sess.Send(ctx, l.replier, text)
	if err != nil || reply == "" {
		return
	}
	_ = l.platform.Speak(reply)
}
