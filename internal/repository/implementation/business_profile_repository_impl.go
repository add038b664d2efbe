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

type BusinessProfileRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SalesMapper
}

func NewBusinessProfileRepository(db *gorm.DB) contract.BusinessProfileRepository {
	return &BusinessProfileRepositoryImpl{
		db:     db,
		mapper: mapper.NewSalesMapper(),
	}
}

func (r *BusinessProfileRepositoryImpl) Create(ctx context.Context, profile *entity.BusinessProfile) error {
	m := r.mapper.BusinessProfileToModel(profile)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*profile = *r.mapper.BusinessProfileToEntity(m)
	return nil
}

func (r *BusinessProfileRepositoryImpl) Update(ctx context.Context, profile *entity.BusinessProfile) error {
	m := r.mapper.BusinessProfileToModel(profile)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*profile = *r.mapper.BusinessProfileToEntity(m)
	return nil
}

func (r *BusinessProfileRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.BusinessProfile{}, id).Error
}

func (r *BusinessProfileRepositoryImpl) FindLatest(ctx context.Context) (*entity.BusinessProfile, error) {
	var m model.BusinessProfile
	err := r.db.WithContext(ctx).Order("created_at DESC").First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.BusinessProfileToEntity(&m), nil
}

func (r *BusinessProfileRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.BusinessProfile, error) {
	var m model.BusinessProfile
	query := r.db.WithContext(ctx)
	for _, spec := range specs {
		query = spec.Apply(query)
	}
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.BusinessProfileToEntity(&m), nil
}
