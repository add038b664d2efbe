package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ColdEmail struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProspectId      uuid.UUID `gorm:"type:uuid;not null;index"`
	ContactName     string    `gorm:"type:text"`
	ContactEmail    string    `gorm:"type:text;not null"`
	Subject         string    `gorm:"type:text;not null"`
	Content         string    `gorm:"type:text;not null"`
	Preview         string    `gorm:"type:text"`
	TalkToSalesLink string    `gorm:"type:text"`
	Status          string    `gorm:"type:text;not null;default:'generated'"`
	SentTo          string    `gorm:"type:text"`
	SentAt          *time.Time
	CreatedAt       time.Time      `gorm:"autoCreateTime"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime"`
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

func (ColdEmail) TableName() string {
	return "cold_emails"
}
