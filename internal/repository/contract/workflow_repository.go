package contract

import (
	"context"

	"consultly-be/internal/entity"
	"consultly-be/internal/repository/specification"

	"github.com/google/uuid"
)

type WorkflowRepository interface {
	Create(ctx context.Context, workflow *entity.Workflow) error
	Update(ctx context.Context, workflow *entity.Workflow) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Workflow, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Workflow, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
