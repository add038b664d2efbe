package contract

import (
	"context"

	"digital-sales-be/internal/entity"
	"digital-sales-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ColdEmailRepository interface {
	Create(ctx context.Context, email *entity.ColdEmail) error
	Update(ctx context.Context, email *entity.ColdEmail) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ColdEmail, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ColdEmail, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
