package store

import (
	"sync"
	"time"
)

// Message is a single turn in a sales conversation.
// The message list of a session is insertion-ordered and append-only.
type Message struct {
	ID        string    `json:"id"`
	Sender    string    `json:"sender"` // "prospect" | "agent"
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	AudioRef  string    `json:"audio_ref,omitempty"`
}

// Session represents the live conversation state machine in memory.
// All mutations go through the methods below, which serialize access with a
// per-session mutex so results are applied in completion order.
type Session struct {
	ID             string `json:"id"`
	ProspectID     string `json:"prospect_id"`
	ConversationID string `json:"conversation_id"`
	Stage          string `json:"stage"` // "connecting" | "active" | "disconnected"
	DemoMode       bool   `json:"demo_mode"`

	EngagementScore int    `json:"engagement_score"` // clamped to [0,100]
	DealPotential   string `json:"deal_potential"`   // "low" | "medium" | "high"
	RewardTriggered bool   `json:"reward_triggered"`
	DealClosed      bool   `json:"deal_closed"`

	Messages []Message `json:"messages"`

	torn bool
	mu   sync.Mutex
}

const (
	StageConnecting   = "connecting"
	StageActive       = "active"
	StageDisconnected = "disconnected"

	SenderProspect = "prospect"
	SenderAgent    = "agent"

	DealPotentialLow    = "low"
	DealPotentialMedium = "medium"
	DealPotentialHigh   = "high"
)

func NewSession(id, prospectID string) *Session {
	return &Session{
		ID:            id,
		ProspectID:    prospectID,
		Stage:         StageConnecting,
		DealPotential: DealPotentialLow,
	}
}

// AppendMessage appends a message and returns false if the session has been
// torn down. Late timer callbacks and stale responses land here and are
// discarded instead of mutating dead state.
func (s *Session) AppendMessage(m Message) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.torn {
		return false
	}
	s.Messages = append(s.Messages, m)
	return true
}

// BumpEngagement raises the engagement score by step, clamped to 100.
// The score never decreases within a session.
func (s *Session) BumpEngagement(step int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.torn {
		return s.EngagementScore
	}
	s.EngagementScore += step
	if s.EngagementScore > 100 {
		s.EngagementScore = 100
	}
	if s.EngagementScore < 0 {
		s.EngagementScore = 0
	}
	return s.EngagementScore
}

// RaiseDealPotential upgrades the deal classification. Transitions to "high"
// are one-way: once high, the session never downgrades automatically.
// It returns true when this call is the first transition to "high".
func (s *Session) RaiseDealPotential(level string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.torn {
		return false
	}
	if s.DealPotential == DealPotentialHigh {
		return false
	}
	switch level {
	case DealPotentialHigh:
		s.DealPotential = DealPotentialHigh
		return true
	case DealPotentialMedium:
		if s.DealPotential == DealPotentialLow {
			s.DealPotential = DealPotentialMedium
		}
	}
	return false
}

// SetStage moves the state machine to a new stage.
func (s *Session) SetStage(stage string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.torn {
		return
	}
	s.Stage = stage
}

// SetDemoMode flags the session as running against the local simulator.
func (s *Session) SetDemoMode(demo bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.torn {
		return
	}
	s.DemoMode = demo
}

// SetConversationID records the upstream conversation identifier.
func (s *Session) SetConversationID(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.torn {
		return
	}
	s.ConversationID = id
}

// MarkRewardTriggered flips the one-shot reward flag. Returns false when the
// reward has already fired for this session.
func (s *Session) MarkRewardTriggered() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.torn || s.RewardTriggered {
		return false
	}
	s.RewardTriggered = true
	s.DealClosed = true
	return true
}

// Teardown marks the session dead. Every mutator becomes a no-op afterwards.
func (s *Session) Teardown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.torn = true
}

// TornDown reports whether Teardown has been called.
func (s *Session) TornDown() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.torn
}

// Snapshot returns a copy safe to serialize without holding the lock.
func (s *Session) Snapshot() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := Session{
		ID:              s.ID,
		ProspectID:      s.ProspectID,
		ConversationID:  s.ConversationID,
		Stage:           s.Stage,
		DemoMode:        s.DemoMode,
		EngagementScore: s.EngagementScore,
		DealPotential:   s.DealPotential,
		RewardTriggered: s.RewardTriggered,
		DealClosed:      s.DealClosed,
		Messages:        make([]Message, len(s.Messages)),
	}
	copy(cp.Messages, s.Messages)
	return cp
}

// MessageCount returns the current message list length.
func (s *Session) MessageCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Messages)
}
