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

type ColdEmailRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SalesMapper
}

func NewColdEmailRepository(db *gorm.DB) contract.ColdEmailRepository {
	return &ColdEmailRepositoryImpl{
		db:     db,
		mapper: mapper.NewSalesMapper(),
	}
}

func (r *ColdEmailRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ColdEmailRepositoryImpl) Create(ctx context.Context, email *entity.ColdEmail) error {
	m := r.mapper.ColdEmailToModel(email)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*email = *r.mapper.ColdEmailToEntity(m)
	return nil
}

func (r *ColdEmailRepositoryImpl) Update(ctx context.Context, email *entity.ColdEmail) error {
	m := r.mapper.ColdEmailToModel(email)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*email = *r.mapper.ColdEmailToEntity(m)
	return nil
}

func (r *ColdEmailRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.ColdEmail{}, id).Error
}

func (r *ColdEmailRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ColdEmail, error) {
	var m model.ColdEmail
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ColdEmailToEntity(&m), nil
}

func (r *ColdEmailRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ColdEmail, error) {
	var models []*model.ColdEmail
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.ColdEmail, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ColdEmailToEntity(m)
	}
	return entities, nil
}

func (r *ColdEmailRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.ColdEmail{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
