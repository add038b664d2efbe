package audio

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPlayer struct {
	mu    sync.Mutex
	refs  []string
	err   error
	block chan struct{}
}

func (p *recordingPlayer) Play(ctx context.Context, ref string) error {
	p.mu.Lock()
	p.refs = append(p.refs, ref)
	block := p.block
	p.mu.Unlock()
	if block != nil {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-block:
		}
	}
	return p.err
}

func (p *recordingPlayer) played() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.refs...)
}

type recordingSynth struct {
	mu    sync.Mutex
	texts []string
	err   error
}

func (s *recordingSynth) Speak(ctx context.Context, text string) error {
	s.mu.Lock()
	s.texts = append(s.texts, text)
	s.mu.Unlock()
	return s.err
}

func (s *recordingSynth) spoken() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.texts...)
}

func TestPlayPrefersInlineAudio(t *testing.T) {
	player := &recordingPlayer{}
	synth := &recordingSynth{}
	a := NewAdapter(player, synth)

	<-a.Play(context.Background(), "data:audio/mpeg;base64,AAAA", "hello there")

	assert.Equal(t, []string{"data:audio/mpeg;base64,AAAA"}, player.played())
	assert.Empty(t, synth.spoken())
}

func TestPlayFallsBackToSynthesis(t *testing.T) {
	synth := &recordingSynth{}
	a := NewAdapter(nil, synth)

	<-a.Play(context.Background(), "https://cdn.example.com/clip.mp3", "welcome aboard")

	assert.Equal(t, []string{"welcome aboard"}, synth.spoken())
}

func TestPlayerFailureFallsBackToSynthesis(t *testing.T) {
	player := &recordingPlayer{err: errors.New("decode failed")}
	synth := &recordingSynth{}
	a := NewAdapter(player, synth)

	<-a.Play(context.Background(), "data:audio/mpeg;base64,AAAA", "plan b")

	assert.Equal(t, []string{"plan b"}, synth.spoken())
}

func TestMuteSkipsPlayback(t *testing.T) {
	player := &recordingPlayer{}
	synth := &recordingSynth{}
	a := NewAdapter(player, synth)

	a.SetMuted(true)
	select {
	case <-a.Play(context.Background(), "data:audio/mpeg;base64,AAAA", "muted"):
	case <-time.After(time.Second):
		t.Fatal("muted Play did not complete immediately")
	}

	assert.Empty(t, player.played())
	assert.Empty(t, synth.spoken())
	assert.True(t, a.Muted())
}

func TestMuteCancelsInFlightUtterance(t *testing.T) {
	player := &recordingPlayer{block: make(chan struct{})}
	a := NewAdapter(player, nil)

	done := a.Play(context.Background(), "data:audio/mpeg;base64,AAAA", "long clip")
	require.Eventually(t, func() bool { return len(player.played()) == 1 }, time.Second, 5*time.Millisecond)

	a.SetMuted(true)
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("mute did not cancel the active utterance")
	}
}

func TestMuteIsIdempotent(t *testing.T) {
	a := NewAdapter(nil, nil)
	a.SetMuted(true)
	a.SetMuted(true)
	assert.True(t, a.Muted())
	a.SetMuted(false)
	a.SetMuted(false)
	assert.False(t, a.Muted())
}

func TestNewUtterancePreemptsPrevious(t *testing.T) {
	player := &recordingPlayer{block: make(chan struct{})}
	a := NewAdapter(player, nil)

	first := a.Play(context.Background(), "data:audio/mpeg;base64,one", "first")
	require.Eventually(t, func() bool { return len(player.played()) == 1 }, time.Second, 5*time.Millisecond)

	second := a.Play(context.Background(), "data:audio/mpeg;base64,two", "second")
	select {
	case <-first:
	case <-time.After(time.Second):
		t.Fatal("first utterance not cancelled by second")
	}

	close(player.block)
	<-second
	assert.Equal(t, []string{"data:audio/mpeg;base64,one", "data:audio/mpeg;base64,two"}, player.played())
}

func TestSilentFallbackRespectsCancel(t *testing.T) {
	a := NewAdapter(nil, nil)
	ctx, cancel := context.WithCancel(context.Background())
	done := a.Play(ctx, "", "a rather long sentence that would otherwise wait a while")
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("fallback timer ignored context cancellation")
	}
}

func TestPlayableRef(t *testing.T) {
	assert.True(t, PlayableRef("data:audio/mpeg;base64,AAAA"))
	assert.False(t, PlayableRef("https://example.com/a.mp3"))
	assert.False(t, PlayableRef(""))
}
