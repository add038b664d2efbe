package simulate

import (
	"math/rand"
	"sync"
	"time"
)

// Simulator fabricates believable conversation progress when the upstream
// agent backend is unreachable, so the UI stays interactive in demo mode.
//
// Every timer a Simulator creates belongs to one task group. Cancel stops
// the whole group and only returns once in-flight callbacks have finished,
// so after Cancel no callback of this simulator can touch session state.
type Simulator struct {
	clock Clock

	// runMu is held for reading while a callback executes and for writing
	// by Cancel. Lock order: runMu before mu.
	runMu sync.RWMutex

	mu        sync.Mutex
	rng       *rand.Rand
	timers    map[int]Timer
	nextID    int
	cancelled bool
}

// ConnectionStage is one step of the fake startup connectivity animation.
type ConnectionStage struct {
	Stage   string
	Message string
}

// DefaultConnectionSequence mirrors the staged startup animation of the
// onboarding page: disconnected, then partially connected, then fully up.
var DefaultConnectionSequence = []ConnectionStage{
	{Stage: "disconnected", Message: "Contacting agent backend..."},
	{Stage: "partial", Message: "Agent backend found, negotiating voice channel..."},
	{Stage: "connected", Message: "All systems connected."},
}

// New creates a Simulator. A nil clock falls back to wall time; the seed
// makes canned-response selection deterministic in tests.
func New(clock Clock, seed int64) *Simulator {
	if clock == nil {
		clock = RealClock()
	}
	return &Simulator{
		clock:  clock,
		rng:    rand.New(rand.NewSource(seed)),
		timers: map[int]Timer{},
	}
}

// schedule registers f to run after d as part of the task group.
func (s *Simulator) schedule(d time.Duration, f func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancelled {
		return
	}
	id := s.nextID
	s.nextID++
	s.timers[id] = s.clock.AfterFunc(d, func() { s.fire(id, f) })
}

func (s *Simulator) fire(id int, f func()) {
	s.runMu.RLock()
	defer s.runMu.RUnlock()

	s.mu.Lock()
	if s.cancelled {
		s.mu.Unlock()
		return
	}
	delete(s.timers, id)
	s.mu.Unlock()

	f()
}

// SimulateTyping reveals phrase one rune at a time, invoking onChunk with
// each growing prefix every interval. onDone fires one interval after the
// full phrase was emitted.
func (s *Simulator) SimulateTyping(phrase string, interval time.Duration, onChunk func(partial string), onDone func()) {
	runes := []rune(phrase)

	var step func(i int)
	step = func(i int) {
		if i > len(runes) {
			if onDone != nil {
				onDone()
			}
			return
		}
		if onChunk != nil {
			onChunk(string(runes[:i]))
		}
		s.schedule(interval, func() { step(i + 1) })
	}

	s.schedule(interval, func() { step(1) })
}

// SimulateAgentReply picks one canned response uniformly at random and
// delivers it after delay, mimicking backend processing latency.
func (s *Simulator) SimulateAgentReply(pool []string, delay time.Duration, onReply func(reply string)) {
	if len(pool) == 0 || onReply == nil {
		return
	}
	s.mu.Lock()
	reply := pool[s.rng.Intn(len(pool))]
	s.mu.Unlock()

	s.schedule(delay, func() { onReply(reply) })
}

// SimulateConnectionSequence emits the given stages in order, step apart.
func (s *Simulator) SimulateConnectionSequence(stages []ConnectionStage, step time.Duration, onStage func(stage ConnectionStage)) {
	if onStage == nil {
		return
	}
	for i, st := range stages {
		st := st
		s.schedule(time.Duration(i+1)*step, func() { onStage(st) })
	}
}

// Cancel stops every pending timer in the group and waits for callbacks
// already running to finish. After Cancel returns no callback of this
// simulator will run.
func (s *Simulator) Cancel() {
	s.runMu.Lock()
	defer s.runMu.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelled = true
	for id, t := range s.timers {
		t.Stop()
		delete(s.timers, id)
	}
}

// Pending reports how many timers are currently scheduled.
func (s *Simulator) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}
