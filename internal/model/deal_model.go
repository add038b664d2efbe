package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Deal struct {
	Id               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ConversationId   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	ProspectId       uuid.UUID `gorm:"type:uuid;not null;index"`
	Amount           float64   `gorm:"type:numeric;not null"`
	CommissionAmount float64   `gorm:"type:numeric"`
	CustomerEmail    string    `gorm:"type:text"`
	SalesAgentId     string    `gorm:"type:text"`
	PaymentId        string    `gorm:"type:text"`
	TransactionHash  string    `gorm:"type:text"`
	Status           string    `gorm:"type:text;not null;default:'pending'"`
	CreatedAt        time.Time `gorm:"autoCreateTime"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime"`
	DeletedAt        gorm.DeletedAt `gorm:"index"`
}

func (Deal) TableName() string {
	return "deals"
}
