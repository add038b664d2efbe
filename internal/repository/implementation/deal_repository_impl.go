package implementation

import (
	"context"
	"errors"

	"digital-sales-be/internal/entity"
	"digital-sales-be/internal/mapper"
	"digital-sales-be/internal/model"
	"digital-sales-be/internal/repository/contract"
	"digital-sales-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DealRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SalesMapper
}

func NewDealRepository(db *gorm.DB) contract.DealRepository {
	return &DealRepositoryImpl{
		db:     db,
		mapper: mapper.NewSalesMapper(),
	}
}

func (r *DealRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *DealRepositoryImpl) Create(ctx context.Context, deal *entity.Deal) error {
	m := r.mapper.DealToModel(deal)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*deal = *r.mapper.DealToEntity(m)
	return nil
}

func (r *DealRepositoryImpl) Update(ctx context.Context, deal *entity.Deal) error {
	m := r.mapper.DealToModel(deal)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*deal = *r.mapper.DealToEntity(m)
	return nil
}

func (r *DealRepositoryImpl) FindByConversationId(ctx context.Context, conversationId uuid.UUID) (*entity.Deal, error) {
	var m model.Deal
	err := r.db.WithContext(ctx).Where("conversation_id = ?", conversationId).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.DealToEntity(&m), nil
}

func (r *DealRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Deal, error) {
	var models []*model.Deal
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Deal, len(models))
	for i, m := range models {
		entities[i] = r.mapper.DealToEntity(m)
	}
	return entities, nil
}

func (r *DealRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Deal{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
