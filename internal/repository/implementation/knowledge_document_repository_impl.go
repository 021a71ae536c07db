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

type KnowledgeDocumentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.KnowledgeMapper
}

func NewKnowledgeDocumentRepository(db *gorm.DB) contract.KnowledgeDocumentRepository {
	return &KnowledgeDocumentRepositoryImpl{
		db:     db,
		mapper: mapper.NewKnowledgeMapper(),
	}
}

func (r *KnowledgeDocumentRepositoryImpl) Create(ctx context.Context, doc *entity.KnowledgeDocument) error {
	if doc.Id == uuid.Nil {
		doc.Id = uuid.New()
	}
	m := r.mapper.ToDocumentModel(doc)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return apperror.Persistence("knowledge.create", err)
	}
	*doc = *r.mapper.ToDocumentEntity(m)
	return nil
}

func (r *KnowledgeDocumentRepositoryImpl) Update(ctx context.Context, doc *entity.KnowledgeDocument) error {
	m := r.mapper.ToDocumentModel(doc)
	tx := r.db.WithContext(ctx).
		Model(&model.KnowledgeDocument{}).
		Where("id = ?", m.Id).
		Select("*").
		Omit("id", "created_at").
		Updates(m)
	if tx.Error != nil {
		return apperror.Persistence("knowledge.update", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return apperror.NotFound("knowledge document", m.Id.String())
	}
	return nil
}

func (r *KnowledgeDocumentRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return apperror.Persistence("knowledge.delete",
		r.db.WithContext(ctx).Delete(&model.KnowledgeDocument{}, id).Error)
}

func (r *KnowledgeDocumentRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.KnowledgeDocument, error) {
	var m model.KnowledgeDocument
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperror.Persistence("knowledge.find", err)
	}
	return r.mapper.ToDocumentEntity(&m), nil
}

func (r *KnowledgeDocumentRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.KnowledgeDocument, error) {
	var models []*model.KnowledgeDocument
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, apperror.Persistence("knowledge.list", err)
	}
	return r.mapper.ToDocumentEntities(models), nil
}

func (r *KnowledgeDocumentRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.KnowledgeDocument{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, apperror.Persistence("knowledge.count", err)
	}
	return count, nil
}
