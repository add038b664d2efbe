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

type ProspectRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SalesMapper
}

func NewProspectRepository(db *gorm.DB) contract.ProspectRepository {
	return &ProspectRepositoryImpl{
		db:     db,
		mapper: mapper.NewSalesMapper(),
	}
}

func (r *ProspectRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ProspectRepositoryImpl) Create(ctx context.Context, prospect *entity.Prospect) error {
	m := r.mapper.ProspectToModel(prospect)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*prospect = *r.mapper.ProspectToEntity(m)
	return nil
}

func (r *ProspectRepositoryImpl) Update(ctx context.Context, prospect *entity.Prospect) error {
	m := r.mapper.ProspectToModel(prospect)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*prospect = *r.mapper.ProspectToEntity(m)
	return nil
}

func (r *ProspectRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Prospect{}, id).Error
}

func (r *ProspectRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Prospect, error) {
	var m model.Prospect
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ProspectToEntity(&m), nil
}

func (r *ProspectRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Prospect, error) {
	var models []*model.Prospect
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Prospect, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ProspectToEntity(m)
	}
	return entities, nil
}

func (r *ProspectRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Prospect{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
