package entity

import (
	"time"

	"github.com/google/uuid"
)

type Contact struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone,omitempty"`
	Title         string `json:"title"`
	Department    string `json:"department,omitempty"`
	DecisionMaker bool   `json:"decision_maker"`
}

type Prospect struct {
	Id          uuid.UUID
	CompanyName string
	Domain      string
	Industry    string
	CompanySize string
	Contacts    []Contact

	// BANT qualification output.
	BudgetScore    float64
	AuthorityScore float64
	NeedScore      float64
	TimelineScore  float64
	LeadScore      float64
	Category       string // "hot" | "warm" | "cold"

	DealStage string // "prospect" | "contacted" | "conversation" | "negotiation" | "closed" | "lost"

	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
	IsDeleted bool
}

const (
	LeadCategoryHot  = "hot"
	LeadCategoryWarm = "warm"
	LeadCategoryCold = "cold"

	DealStageProspect     = "prospect"
	DealStageContacted    = "contacted"
	DealStageConversation = "conversation"
	DealStageNegotiation  = "negotiation"
	DealStageClosed       = "closed"
	DealStageLost         = "lost"
)

// PrimaryContact returns the first decision maker, falling back to the first
// contact on file.
func (p *Prospect) PrimaryContact() *Contact {
	for i := range p.Contacts {
		if p.Contacts[i].DecisionMaker {
			return &p.Contacts[i]
		}
	}
	if len(p.Contacts) > 0 {
		return &p.Contacts[0]
	}
	return nil
}
