package implementation

import (
	"context"
	"errors"

	"consultly-be/internal/entity"
	"consultly-be/internal/mapper"
	"consultly-be/internal/model"
	"consultly-be/internal/pkg/apperror"
	"consultly-be/internal/repository/contract"
	"consultly-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PromptRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PromptMapper
}

func NewPromptRepository(db *gorm.DB) contract.PromptRepository {
	return &PromptRepositoryImpl{
		db:     db,
		mapper: mapper.NewPromptMapper(),
	}
}

func applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *PromptRepositoryImpl) Create(ctx context.Context, prompt *entity.Prompt) error {
	if prompt.Id == uuid.Nil {
		prompt.Id = uuid.New()
	}
	m := r.mapper.ToModel(prompt)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return apperror.Persistence("prompt.create", err)
	}
	*prompt = *r.mapper.ToEntity(m)
	return nil
}

func (r *PromptRepositoryImpl) Update(ctx context.Context, prompt *entity.Prompt) error {
	m := r.mapper.ToModel(prompt)
	tx := r.db.WithContext(ctx).
		Model(&model.Prompt{}).
		Where("id = ?", m.Id).
		Select("*").
		Omit("id", "created_at").
		Updates(m)
	if tx.Error != nil {
		return apperror.Persistence("prompt.update", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return apperror.NotFound("prompt", m.Id.String())
	}
	return nil
}

func (r *PromptRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	// Deleting a missing id is a no-op, not an error.
	return apperror.Persistence("prompt.delete",
		r.db.WithContext(ctx).Delete(&model.Prompt{}, id).Error)
}

func (r *PromptRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Prompt, error) {
	var m model.Prompt
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperror.Persistence("prompt.find", err)
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *PromptRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Prompt, error) {
	var models []*model.Prompt
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, apperror.Persistence("prompt.list", err)
	}
	return r.mapper.ToEntities(models), nil
}

func (r *PromptRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.Prompt{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, apperror.Persistence("prompt.count", err)
	}
	return count, nil
}
