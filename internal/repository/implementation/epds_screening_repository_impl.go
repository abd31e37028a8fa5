package implementation

import (
	"context"
	"errors"

	"bloompath-be/internal/entity"
	"bloompath-be/internal/mapper"
	"bloompath-be/internal/model"
	"bloompath-be/internal/repository/contract"
	"bloompath-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EPDSScreeningRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ScreeningMapper
}

func NewEPDSScreeningRepository(db *gorm.DB) contract.EPDSScreeningRepository {
	return &EPDSScreeningRepositoryImpl{
		db:     db,
		mapper: mapper.NewScreeningMapper(),
	}
}

func (r *EPDSScreeningRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *EPDSScreeningRepositoryImpl) Create(ctx context.Context, screening *entity.EPDSScreening) error {
	m := r.mapper.ToModel(screening)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*screening = *r.mapper.ToEntity(m)
	return nil
}

func (r *EPDSScreeningRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.EPDSScreening{}, id).Error
}

func (r *EPDSScreeningRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.EPDSScreening, error) {
	var m model.EPDSScreening
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *EPDSScreeningRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.EPDSScreening, error) {
	var models []*model.EPDSScreening
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *EPDSScreeningRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.EPDSScreening{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
