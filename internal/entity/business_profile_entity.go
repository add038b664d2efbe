package entity

import (
	"time"

	"github.com/google/uuid"
)

// BusinessProfile stores what the onboarding interview learned about the
// seller's business. One row per sales workspace.
type BusinessProfile struct {
	Id                    uuid.UUID
	BusinessGoal          string
	ProductDescription    string
	TargetMarket          string
	ValueProposition      string
	PricingModel          string
	WorkflowInitiated     bool
	OnboardingCompletedAt *time.Time
	CreatedAt             time.Time
	UpdatedAt             *time.Time
	DeletedAt             *time.Time
	IsDeleted             bool
}

// Complete reports whether all four core onboarding fields are filled.
func (p *BusinessProfile) Complete() bool {
	return p.BusinessGoal != "" &&
		p.ProductDescription != "" &&
		p.TargetMarket != "" &&
		p.ValueProposition != ""
}
