package implementation

import (
	"context"

	"ai-mindsupport-be/internal/entity"
	"ai-mindsupport-be/internal/mapper"
	"ai-mindsupport-be/internal/model"
	"ai-mindsupport-be/internal/repository/contract"
	"ai-mindsupport-be/internal/repository/specification"

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
	m := r.mapper.MoodEntryToModel(entry)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*entry = *r.mapper.MoodEntryToEntity(m)
	return nil
}

func (r *MoodEntryRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.MoodEntry, error) {
	var models []*model.MoodEntry
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.MoodEntry, len(models))
	for i, m := range models {
		entities[i] = r.mapper.MoodEntryToEntity(m)
	}
	return entities, nil
}

func (r *MoodEntryRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.MoodEntry{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
