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

type ContactRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ContactMapper
}

func NewContactRepository(db *gorm.DB) contract.ContactRepository {
	return &ContactRepositoryImpl{
		db:     db,
		mapper: mapper.NewContactMapper(),
	}
}

func (r *ContactRepositoryImpl) Create(ctx context.Context, submission *entity.ContactSubmission) error {
	if submission.Id == uuid.Nil {
		submission.Id = uuid.New()
	}
	m := r.mapper.ToModel(submission)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return apperror.Persistence("contact.create", err)
	}
	*submission = *r.mapper.ToEntity(m)
	return nil
}

func (r *ContactRepositoryImpl) Update(ctx context.Context, submission *entity.ContactSubmission) error {
	m := r.mapper.ToModel(submission)
	tx := r.db.WithContext(ctx).
		Model(&model.ContactSubmission{}).
		Where("id = ?", m.Id).
		Select("*").
		Omit("id", "created_at").
		Updates(m)
	if tx.Error != nil {
		return apperror.Persistence("contact.update", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return apperror.NotFound("contact submission", m.Id.String())
	}
	return nil
}

func (r *ContactRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return apperror.Persistence("contact.delete",
		r.db.WithContext(ctx).Delete(&model.ContactSubmission{}, id).Error)
}

func (r *ContactRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ContactSubmission, error) {
	var m model.ContactSubmission
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperror.Persistence("contact.find", err)
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ContactRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ContactSubmission, error) {
	var models []*model.ContactSubmission
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, apperror.Persistence("contact.list", err)
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ContactRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.ContactSubmission{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, apperror.Persistence("contact.count", err)
	}
	return count, nil
}
