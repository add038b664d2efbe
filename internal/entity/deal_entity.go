package entity

import (
	"time"

	"github.com/google/uuid"
)

// Deal records a closed sale and its Crossmint reward processing outcome.
type Deal struct {
	Id               uuid.UUID
	ConversationId   uuid.UUID
	ProspectId       uuid.UUID
	Amount           float64
	CommissionAmount float64
	CustomerEmail    string
	SalesAgentId     string
	PaymentId        string
	TransactionHash  string
	Status           string // "pending" | "rewarded" | "disabled" | "failed"
	CreatedAt        time.Time
	UpdatedAt        *time.Time
	DeletedAt        *time.Time
	IsDeleted        bool
}

const (
	DealStatusPending  = "pending"
	DealStatusRewarded = "rewarded"
	DealStatusDisabled = "disabled"
	DealStatusFailed   = "failed"
)
