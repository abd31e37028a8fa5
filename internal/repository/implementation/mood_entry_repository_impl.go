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

type MoodEntryRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.MoodMapper
}

func NewMoodEntryRepository(db *gorm.DB) contract.MoodEntryRepository {
	return &MoodEntryRepositoryImpl{
		db:     db,
		mapper: mapper.NewMoodMapper(),
	}
}

func (r *MoodEntryRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *MoodEntryRepositoryImpl) Create(ctx context.Context, entry *entity.MoodEntry) error {
	m := r.mapper.ToModel(entry)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*entry = *r.mapper.ToEntity(m)
	return nil
}

func (r *MoodEntryRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.MoodEntry{}, id).Error
}

func (r *MoodEntryRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.MoodEntry, error) {
	var m model.MoodEntry
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *MoodEntryRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.MoodEntry, error) {
	var models []*model.MoodEntry
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *MoodEntryRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.MoodEntry{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
