package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBumpEngagementClamp(t *testing.T) {
	s := NewSession("s1", "prospect_1")

	for i := 1; i <= 6; i++ {
		got := s.BumpEngagement(15)
		want := 15 * i
		if want > 100 {
			want = 100
		}
		assert.Equal(t, want, got)
	}

	// Score stays pinned at the ceiling.
	assert.Equal(t, 100, s.BumpEngagement(15))
}

func TestRaiseDealPotentialOneWay(t *testing.T) {
	s := NewSession("s1", "prospect_1")
	assert.Equal(t, DealPotentialLow, s.DealPotential)

	first := s.RaiseDealPotential(DealPotentialMedium)
	assert.False(t, first)
	assert.Equal(t, DealPotentialMedium, s.DealPotential)

	first = s.RaiseDealPotential(DealPotentialHigh)
	assert.True(t, first, "first transition to high must report true")

	// Once high, nothing moves it and the reward never re-fires.
	assert.False(t, s.RaiseDealPotential(DealPotentialHigh))
	assert.False(t, s.RaiseDealPotential(DealPotentialMedium))
	assert.Equal(t, DealPotentialHigh, s.DealPotential)
}

func TestMarkRewardTriggeredOnce(t *testing.T) {
	s := NewSession("s1", "prospect_1")
	assert.True(t, s.MarkRewardTriggered())
	assert.False(t, s.MarkRewardTriggered())
	assert.True(t, s.DealClosed)
}

func TestTeardownBlocksMutations(t *testing.T) {
	s := NewSession("s1", "prospect_1")
	s.AppendMessage(Message{ID: "m1", Sender: SenderProspect, Content: "hi", Timestamp: time.Now()})

	s.Teardown()

	ok := s.AppendMessage(Message{ID: "m2", Sender: SenderAgent, Content: "late", Timestamp: time.Now()})
	assert.False(t, ok, "append after teardown must be discarded")
	assert.Equal(t, 1, s.MessageCount())

	s.BumpEngagement(15)
	assert.Equal(t, 0, s.Snapshot().EngagementScore)

	s.SetStage(StageActive)
	assert.Equal(t, StageConnecting, s.Snapshot().Stage)
}

func TestSnapshotIsDetached(t *testing.T) {
	s := NewSession("s1", "prospect_1")
	s.AppendMessage(Message{ID: "m1", Sender: SenderProspect, Content: "hi", Timestamp: time.Now()})

	snap := s.Snapshot()
	s.AppendMessage(Message{ID: "m2", Sender: SenderAgent, Content: "hello", Timestamp: time.Now()})

	assert.Len(t, snap.Messages, 1)
	assert.Equal(t, 2, s.MessageCount())
}
