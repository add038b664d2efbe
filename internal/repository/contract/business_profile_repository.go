package contract

import (
	"context"

	"digital-sales-be/internal/entity"
	"digital-sales-be/internal/repository/specification"

	"github.com/google/uuid"
)

type BusinessProfileRepository interface {
	Create(ctx context.Context, profile *entity.BusinessProfile) error
	Update(ctx context.Context, profile *entity.BusinessProfile) error
	Delete(ctx context.Context, id uuid.UUID) error
	// FindLatest returns the most recently completed profile, nil when the
	// workspace has never onboarded.
	FindLatest(ctx context.Context) (*entity.BusinessProfile, error)
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.BusinessProfile, error)
}
