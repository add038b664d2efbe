package contract

import (
	"context"

	"digital-sales-be/internal/entity"
	"digital-sales-be/internal/repository/specification"

	"github.com/google/uuid"
)

type DealRepository interface {
	Create(ctx context.Context, deal *entity.Deal) error
	Update(ctx context.Context, deal *entity.Deal) error
	FindByConversationId(ctx context.Context, conversationId uuid.UUID) (*entity.Deal, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Deal, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
