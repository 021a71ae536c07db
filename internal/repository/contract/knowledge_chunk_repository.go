package contract

import (
	"context"

	"consultly-be/internal/entity"
	"consultly-be/internal/repository/specification"

	"github.com/google/uuid"
)

type KnowledgeChunkRepository interface {
	CreateBatch(ctx context.Context, chunks []*entity.KnowledgeChunk) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByDocumentId(ctx context.Context, documentId uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.KnowledgeChunk, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.KnowledgeChunk, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
