package entity

import (
	"time"

	"github.com/google/uuid"
)

type ColdEmail struct {
	Id              uuid.UUID
	ProspectId      uuid.UUID
	ContactName     string
	ContactEmail    string
	Subject         string
	Content         string
	Preview         string
	TalkToSalesLink string
	Status          string // "generated" | "sent" | "failed"
	SentTo          string
	SentAt          *time.Time
	CreatedAt       time.Time
	UpdatedAt       *time.Time
	DeletedAt       *time.Time
	IsDeleted       bool
}

const (
	EmailStatusGenerated = "generated"
	EmailStatusSent      = "sent"
	EmailStatusFailed    = "failed"
)
