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

type KnowledgeChunkRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.KnowledgeMapper
}

func NewKnowledgeChunkRepository(db *gorm.DB) contract.KnowledgeChunkRepository {
	return &KnowledgeChunkRepositoryImpl{
		db:     db,
		mapper: mapper.NewKnowledgeMapper(),
	}
}

// CreateBatch inserts all chunks in one statement. Run inside the unit of
// work transaction so document and chunks appear together or not at all.
func (r *KnowledgeChunkRepositoryImpl) CreateBatch(ctx context.Context, chunks []*entity.KnowledgeChunk) error {
	if len(chunks) == 0 {
		return nil
	}
	models := make([]*model.KnowledgeChunk, len(chunks))
	for i, c := range chunks {
		if c.Id == uuid.Nil {
			c.Id = uuid.New()
		}
		models[i] = r.mapper.ToChunkModel(c)
	}
	if err := r.db.WithContext(ctx).Create(models).Error; err != nil {
		return apperror.Persistence("chunk.create_batch", err)
	}
	for i, m := range models {
		*chunks[i] = *r.mapper.ToChunkEntity(m)
	}
	return nil
}

func (r *KnowledgeChunkRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return apperror.Persistence("chunk.delete",
		r.db.WithContext(ctx).Delete(&model.KnowledgeChunk{}, id).Error)
}

func (r *KnowledgeChunkRepositoryImpl) DeleteByDocumentId(ctx context.Context, documentId uuid.UUID) error {
	return apperror.Persistence("chunk.delete_by_document",
		r.db.WithContext(ctx).Where("document_id = ?", documentId).Delete(&model.KnowledgeChunk{}).Error)
}

func (r *KnowledgeChunkRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.KnowledgeChunk, error) {
	var m model.KnowledgeChunk
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperror.Persistence("chunk.find", err)
	}
	return r.mapper.ToChunkEntity(&m), nil
}

func (r *KnowledgeChunkRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.KnowledgeChunk, error) {
	var models []*model.KnowledgeChunk
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, apperror.Persistence("chunk.list", err)
	}
	return r.mapper.ToChunkEntities(models), nil
}

func (r *KnowledgeChunkRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.KnowledgeChunk{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, apperror.Persistence("chunk.count", err)
	}
	return count, nil
}
