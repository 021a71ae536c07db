package contract

import (
	"context"

	"consultly-be/internal/entity"
	"consultly-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ContactRepository interface {
	Create(ctx context.Context, submission *entity.ContactSubmission) error
	Update(ctx context.Context, submission *entity.ContactSubmission) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ContactSubmission, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ContactSubmission, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
