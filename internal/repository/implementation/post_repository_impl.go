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

type PostRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PostMapper
}

func NewPostRepository(db *gorm.DB) contract.PostRepository {
	return &PostRepositoryImpl{
		db:     db,
		mapper: mapper.NewPostMapper(),
	}
}

func (r *PostRepositoryImpl) Create(ctx context.Context, post *entity.Post) error {
	if post.Id == uuid.Nil {
		post.Id = uuid.New()
	}
	m := r.mapper.ToModel(post)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return apperror.Persistence("post.create", err)
	}
	*post = *r.mapper.ToEntity(m)
	return nil
}

func (r *PostRepositoryImpl) Update(ctx context.Context, post *entity.Post) error {
	m := r.mapper.ToModel(post)
	tx := r.db.WithContext(ctx).
		Model(&model.Post{}).
		Where("id = ?", m.Id).
		Select("*").
		Omit("id", "created_at").
		Updates(m)
	if tx.Error != nil {
		return apperror.Persistence("post.update", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return apperror.NotFound("post", m.Id.String())
	}
	return nil
}

func (r *PostRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return apperror.Persistence("post.delete",
		r.db.WithContext(ctx).Delete(&model.Post{}, id).Error)
}

func (r *PostRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Post, error) {
	var m model.Post
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperror.Persistence("post.find", err)
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *PostRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Post, error) {
	var models []*model.Post
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, apperror.Persistence("post.list", err)
	}
	return r.mapper.ToEntities(models), nil
}

func (r *PostRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.Post{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, apperror.Persistence("post.count", err)
	}
	return count, nil
}
