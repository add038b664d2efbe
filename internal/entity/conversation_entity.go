package entity

import (
	"time"

	"github.com/google/uuid"
)

type Conversation struct {
	Id         uuid.UUID
	ProspectId uuid.UUID
	// UpstreamId is the conversation_id assigned by the agent backend.
	UpstreamId      string
	Status          string // "active" | "completed" | "abandoned"
	EngagementScore int
	DealPotential   string // "low" | "medium" | "high"
	DealClosed      bool
	RewardTriggered bool
	StartedAt       time.Time
	EndedAt         *time.Time
	CreatedAt       time.Time
	UpdatedAt       *time.Time
	DeletedAt       *time.Time
	IsDeleted       bool
}

const (
	ConversationStatusActive    = "active"
	ConversationStatusCompleted = "completed"
	ConversationStatusAbandoned = "abandoned"
)

type ConversationMessage struct {
	Id             uuid.UUID
	ConversationId uuid.UUID
	Sender         string // "prospect" | "agent"
	Content        string
	AudioRef       string
	MessageType    string // "text" | "voice"
	CreatedAt      time.Time
	UpdatedAt      *time.Time
	DeletedAt      *time.Time
	IsDeleted      bool
}
