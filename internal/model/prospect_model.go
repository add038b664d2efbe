package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Prospect struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyName string         `gorm:"type:text;not null"`
	Domain      string         `gorm:"type:text;index"`
	Industry    string         `gorm:"type:text;index"`
	CompanySize string         `gorm:"type:text"`
	Contacts    datatypes.JSON `gorm:"type:jsonb"`

	BudgetScore    float64 `gorm:"type:numeric"`
	AuthorityScore float64 `gorm:"type:numeric"`
	NeedScore      float64 `gorm:"type:numeric"`
	TimelineScore  float64 `gorm:"type:numeric"`
	LeadScore      float64 `gorm:"type:numeric;index"`
	Category       string  `gorm:"type:text;index"`

	DealStage string `gorm:"type:text;not null;default:'prospect'"`

	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Prospect) TableName() string {
	return "prospects"
}
