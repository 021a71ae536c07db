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

type WorkflowRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.WorkflowMapper
}

func NewWorkflowRepository(db *gorm.DB) contract.WorkflowRepository {
	return &WorkflowRepositoryImpl{
		db:     db,
		mapper: mapper.NewWorkflowMapper(),
	}
}

func (r *WorkflowRepositoryImpl) Create(ctx context.Context, workflow *entity.Workflow) error {
	if workflow.Id == uuid.Nil {
		workflow.Id = uuid.New()
	}
	m := r.mapper.ToModel(workflow)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return apperror.Persistence("workflow.create", err)
	}
	*workflow = *r.mapper.ToEntity(m)
	return nil
}

func (r *WorkflowRepositoryImpl) Update(ctx context.Context, workflow *entity.Workflow) error {
	m := r.mapper.ToModel(workflow)
	tx := r.db.WithContext(ctx).
		Model(&model.Workflow{}).
		Where("id = ?", m.Id).
		Select("*").
		Omit("id", "created_at").
		Updates(m)
	if tx.Error != nil {
		return apperror.Persistence("workflow.update", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return apperror.NotFound("workflow", m.Id.String())
	}
	return nil
}

func (r *WorkflowRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return apperror.Persistence("workflow.delete",
		r.db.WithContext(ctx).Delete(&model.Workflow{}, id).Error)
}

func (r *WorkflowRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Workflow, error) {
	var m model.Workflow
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperror.Persistence("workflow.find", err)
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *WorkflowRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Workflow, error) {
	var models []*model.Workflow
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, apperror.Persistence("workflow.list", err)
	}
	return r.mapper.ToEntities(models), nil
}

func (r *WorkflowRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.Workflow{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, apperror.Persistence("workflow.count", err)
	}
	return count, nil
}
