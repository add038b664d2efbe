package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Conversation struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProspectId      uuid.UUID `gorm:"type:uuid;not null;index"`
	UpstreamId      string    `gorm:"type:text;index"`
	Status          string    `gorm:"type:text;not null;default:'active'"`
	EngagementScore int       `gorm:"not null;default:0"`
	DealPotential   string    `gorm:"type:text;not null;default:'low'"`
	DealClosed      bool      `gorm:"not null;default:false"`
	RewardTriggered bool      `gorm:"not null;default:false"`
	StartedAt       time.Time
	EndedAt         *time.Time
	CreatedAt       time.Time      `gorm:"autoCreateTime"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime"`
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

func (Conversation) TableName() string {
	return "conversations"
}

type ConversationMessage struct {
	Id             uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ConversationId uuid.UUID      `gorm:"type:uuid;not null;index"`
	Sender         string         `gorm:"type:text;not null"`
	Content        string         `gorm:"type:text;not null"`
	AudioRef       string         `gorm:"type:text"`
	MessageType    string         `gorm:"type:text;not null;default:'text'"`
	CreatedAt      time.Time      `gorm:"autoCreateTime"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime"`
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

func (ConversationMessage) TableName() string {
	return "conversation_messages"
}
