package session_test

import (
	"sync"
	"testing"
	"time"

	"halalassist-core/internal/session"

	"github.com/stretchr/testify/assert"
)

const (
	testWait = 2 * time.Second
	testTick = 5 * time.Millisecond
)

// fakePlatform captures the partial-result callback and records what got
// spoken back.
type fakePlatform struct {
	mu        sync.Mutex
	onPartial func(string)
	spoken    []string
	stopped   bool
}

func (f *fakePlatform) Start(onPartial func(text string)) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.onPartial = onPartial
	return nil
}

func (f *fakePlatform) Stop() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stopped = true
	return nil
}

func (f *fakePlatform) Speak(text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.spoken = append(f.spoken, text)
	return nil
}

func (f *fakePlatform) spokenCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.spoken)
}

func TestListenerFlushesAfterSilence(t *testing.T) {
	sess := session.New()
	r := &echoReplier{}
	platform := &fakePlatform{}

	l := session.NewListener(sess, r, platform).WithSilence(20 * time.Millisecond)
	assert.NoError(t, l.Begin())

	// Cumulative partials, the way host recognizers deliver them.
	platform.onPartial("berapa biaya")
	platform.onPartial("berapa biaya sertifikasi halal")

	assert.Eventually(t, func() bool { return platform.spokenCount() == 1 }, testWait, testTick)
	assert.Equal(t, "reply-1", platform.spoken[0])

	turns := sess.Transcript()
	assert.Len(t, turns, 3)
	assert.Equal(t, "berapa biaya sertifikasi halal", turns[1].Text)

	assert.NoError(t, l.End())
	assert.True(t, platform.stopped)
}

func TestListenerPartialResetsTimer(t *testing.T) {
	sess := session.New()
	r := &echoReplier{}
	platform := &fakePlatform{}

	l := session.NewListener(sess, r, platform).WithSilence(60 * time.Millisecond)
	assert.NoError(t, l.Begin())

	// Keep talking faster than the silence window; nothing should flush.
	for i := 0; i < 5; i++ {
		platform.onPartial("masih bicara")
		time.Sleep(15 * time.Millisecond)
	}
	assert.Zero(t, platform.spokenCount())

	// Now go quiet and let the timer fire once.
	assert.Eventually(t, func() bool { return platform.spokenCount() == 1 }, testWait, testTick)
	assert.NoError(t, l.End())
}

func TestListenerIgnoresPartialsAfterEnd(t *testing.T) {
	sess := session.New()
	r := &echoReplier{}
	platform := &fakePlatform{}

	l := session.NewListener(sess, r, platform).WithSilence(10 * time.Millisecond)
	assert.NoError(t, l.Begin())
	assert.NoError(t, l.End())

	platform.onPartial("terlambat")
	time.Sleep(50 * time.Millisecond)

	assert.Zero(t, platform.spokenCount())
	assert.Len(t, sess.Transcript(), 1)
}
