package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BusinessProfile struct {
	Id                    uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	BusinessGoal          string    `gorm:"type:text;not null"`
	ProductDescription    string    `gorm:"type:text"`
	TargetMarket          string    `gorm:"type:text"`
	ValueProposition      string    `gorm:"type:text"`
	PricingModel          string    `gorm:"type:text"`
	WorkflowInitiated     bool      `gorm:"not null;default:false"`
	OnboardingCompletedAt *time.Time
	CreatedAt             time.Time      `gorm:"autoCreateTime"`
	UpdatedAt             time.Time      `gorm:"autoUpdateTime"`
	DeletedAt             gorm.DeletedAt `gorm:"index"`
}

func (BusinessProfile) TableName() string {
	return "business_profiles"
}
