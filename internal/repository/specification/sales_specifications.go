package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByProspectID struct {
	ProspectID uuid.UUID
}

func (s ByProspectID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("prospect_id = ?", s.ProspectID)
}

type ByConversationID struct {
	ConversationID uuid.UUID
}

func (s ByConversationID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("conversation_id = ?", s.ConversationID)
}

type ByUpstreamID struct {
	UpstreamID string
}

func (s ByUpstreamID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("upstream_id = ?", s.UpstreamID)
}

type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

type ByLeadCategory struct {
	Category string
}

func (s ByLeadCategory) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("category = ?", s.Category)
}

type ByDealStage struct {
	Stage string
}

func (s ByDealStage) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("deal_stage = ?", s.Stage)
}

// MinLeadScore filters prospects at or above a qualification threshold.
type MinLeadScore struct {
	Score float64
}

func (s MinLeadScore) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("lead_score >= ?", s.Score)
}
