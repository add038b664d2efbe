package audio

import (
	"context"
	"strings"
	"sync"
	"time"
)

// Player plays a remote or inline audio asset (the ElevenLabs data URL).
type Player interface {
	Play(ctx context.Context, audioRef string) error
}

// Synthesizer produces a local spoken rendition of text, the fallback when
// no usable audio asset exists.
type Synthesizer interface {
	Speak(ctx context.Context, text string) error
}

// inlineAudioPrefix marks refs that carry the synthesized audio inline.
const inlineAudioPrefix = "data:audio/"

// fallbackPerRune paces the silent completion timer when neither playback
// capability is available, so UI state never hangs on a missing utterance.
const fallbackPerRune = 50 * time.Millisecond

// Adapter speaks agent turns. It prefers the remote audio asset, falls back
// to local synthesis, and degrades to a timed no-op. At most one utterance
// plays at a time; starting a new one cancels the previous.
type Adapter struct {
	player Player
	synth  Synthesizer

	mu      sync.Mutex
	muted   bool
	cancel  context.CancelFunc
	speakWG sync.WaitGroup
}

// NewAdapter creates an Adapter. Either capability may be nil; the adapter
// then degrades to the remaining one or to the timed fallback.
func NewAdapter(player Player, synth Synthesizer) *Adapter {
	return &Adapter{player: player, synth: synth}
}

// Play speaks one agent turn asynchronously. The returned channel closes
// when the utterance finishes, fails over, or is cancelled.
func (a *Adapter) Play(ctx context.Context, audioRef, text string) <-chan struct{} {
	done := make(chan struct{})

	a.mu.Lock()
	if a.muted {
		a.mu.Unlock()
		close(done)
		return done
	}
	// New utterance preempts the previous one. No queueing.
	if a.cancel != nil {
		a.cancel()
	}
	utterCtx, cancel := context.WithCancel(ctx)
	a.cancel = cancel
	a.speakWG.Add(1)
	a.mu.Unlock()

	go func() {
		defer close(done)
		defer a.speakWG.Done()
		a.speak(utterCtx, audioRef, text)
	}()

	return done
}

func (a *Adapter) speak(ctx context.Context, audioRef, text string) {
	if PlayableRef(audioRef) && a.player != nil {
		if err := a.player.Play(ctx, audioRef); err == nil {
			return
		}
		// Asset unplayable; fall through to local synthesis.
	}
	if a.synth != nil {
		if err := a.synth.Speak(ctx, text); err == nil {
			return
		}
	}
	// No playback path left: simulate completion proportional to length.
	select {
	case <-ctx.Done():
	case <-time.After(time.Duration(len([]rune(text))) * fallbackPerRune):
	}
}

// SetMuted toggles the global mute flag. Muting cancels an utterance that
// is already in progress; unmuting restores normal behavior for the next
// Play call, taking no other action.
func (a *Adapter) SetMuted(muted bool) {
	a.mu.Lock()
	a.muted = muted
	cancel := a.cancel
	if muted {
		a.cancel = nil
	}
	a.mu.Unlock()

	if muted && cancel != nil {
		cancel()
		a.speakWG.Wait()
	}
}

// Muted reports the current mute flag.
func (a *Adapter) Muted() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.muted
}

// Stop cancels any utterance in progress without touching the mute flag.
func (a *Adapter) Stop() {
	a.mu.Lock()
	cancel := a.cancel
	a.cancel = nil
	a.mu.Unlock()

	if cancel != nil {
		cancel()
		a.speakWG.Wait()
	}
}

// PlayableRef reports whether an audio_url value can be played directly.
// Only inline audio data is recognized; anything else routes to synthesis.
func PlayableRef(audioRef string) bool {
	return strings.HasPrefix(audioRef, inlineAudioPrefix)
}
