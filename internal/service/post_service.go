package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"consultly-be/internal/dto"
	"consultly-be/internal/entity"
	"consultly-be/internal/normalizer"
	"consultly-be/internal/pkg/apperror"
	"consultly-be/internal/repository/specification"
	"consultly-be/internal/repository/unitofwork"
	"consultly-be/pkg/events"
	"consultly-be/pkg/filter"
	pktNats "consultly-be/pkg/nats"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	publishedPostsCacheKey = "posts:published"
	publishedPostsCacheTTL = 5 * time.Minute
)

type IPostService interface {
	Create(ctx context.Context, authorId string, req *dto.CreatePostRequest) (*dto.CreatePostResponse, error)
	Update(ctx context.Context, req *dto.UpdatePostRequest) (*dto.UpdatePostResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Show(ctx context.Context, id uuid.UUID) (*dto.PostResponse, error)
	ShowBySlug(ctx context.Context, slug string) (*dto.PostResponse, error)
	GetAll(ctx context.Context, query *dto.ListPostsQuery) ([]*dto.PostResponse, error)
	GetPublished(ctx context.Context) ([]*dto.PostResponse, error)
}

type postService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
	rdb            *redis.Client
}

func NewPostService(uowFactory unitofwork.RepositoryFactory, eventPublisher *pktNats.Publisher, rdb *redis.Client) IPostService {
	return &postService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
		rdb:            rdb,
	}
}

func (s *postService) Create(ctx context.Context, authorId string, req *dto.CreatePostRequest) (*dto.CreatePostResponse, error) {
	post, err := normalizer.Post(normalizer.PostInput{
		Title:         req.Title,
		Content:       req.Content,
		Excerpt:       req.Excerpt,
		Slug:          req.Slug,
		Category:      req.Category,
		Tags:          req.Tags,
		Status:        req.Status,
		DefaultStatus: entity.PostStatusDraft,
		Featured:      req.Featured,
		AuthorId:      authorId,
	})
	if err != nil {
		return nil, err
	}
	post.Id = uuid.New()

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.PostRepository().Create(ctx, post); err != nil {
		return nil, err
	}

	s.afterWrite(ctx, post)

	return &dto.CreatePostResponse{Id: post.Id, Slug: post.Slug}, nil
}

func (s *postService) Update(ctx context.Context, req *dto.UpdatePostRequest) (*dto.UpdatePostResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.PostRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperror.NotFound("post", req.Id.String())
	}

	post, err := normalizer.Post(normalizer.PostInput{
		Title:         req.Title,
		Content:       req.Content,
		Excerpt:       req.Excerpt,
		Slug:          req.Slug,
		Category:      req.Category,
		Tags:          req.Tags,
		Status:        req.Status,
		DefaultStatus: entity.PostStatusDraft,
		Featured:      req.Featured,
		AuthorId:      existing.AuthorId,
	})
	if err != nil {
		return nil, err
	}
	post.Id = req.Id

	if err := uow.PostRepository().Update(ctx, post); err != nil {
		return nil, err
	}

	s.afterWrite(ctx, post)

	return &dto.UpdatePostResponse{Id: post.Id}, nil
}

func (s *postService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.PostRepository().Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

func (s *postService) Show(ctx context.Context, id uuid.UUID) (*dto.PostResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	post, err := uow.PostRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, apperror.NotFound("post", id.String())
	}

	return toPostResponse(post, true), nil
}

func (s *postService) ShowBySlug(ctx context.Context, slug string) (*dto.PostResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	post, err := uow.PostRepository().FindOne(ctx, specification.BySlug{Slug: slug})
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, apperror.NotFound("post", slug)
	}

	return toPostResponse(post, true), nil
}

func (s *postService) GetAll(ctx context.Context, query *dto.ListPostsQuery) ([]*dto.PostResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{specification.OrderBy{Field: "created_at", Desc: true}}
	if query.Category != "" {
		specs = append(specs, specification.ByCategory{Category: query.Category})
	}
	if query.Status != "" {
		specs = append(specs, specification.ByStatus{Status: query.Status})
	}

	posts, err := uow.PostRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	posts = filter.BySubstring(posts, query.Search)
	posts = filter.ByTags(posts, splitTags(query.Tags))

	result := make([]*dto.PostResponse, 0, len(posts))
	for _, post := range posts {
		result = append(result, toPostResponse(post, false))
	}
	return result, nil
}

// GetPublished serves the public blog listing through a short-lived Redis
// cache; the cache is dropped on every write so readers never see a stale
// list for longer than one TTL after a miss.
func (s *postService) GetPublished(ctx context.Context) ([]*dto.PostResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, publishedPostsCacheKey).Bytes(); err == nil {
			var result []*dto.PostResponse
			if err := json.Unmarshal(cached, &result); err == nil {
				return result, nil
			}
		}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	posts, err := uow.PostRepository().FindAll(ctx,
		specification.ByStatus{Status: string(entity.PostStatusPublished)},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.PostResponse, 0, len(posts))
	for _, post := range posts {
		result = append(result, toPostResponse(post, false))
	}

	if s.rdb != nil {
		if data, err := json.Marshal(result); err == nil {
			s.rdb.Set(ctx, publishedPostsCacheKey, data, publishedPostsCacheTTL)
		}
	}

	return result, nil
}

// afterWrite drops the listing cache and announces publications on the event
// bus. Both are best-effort; a cold cache or a lost event never fails the
// write.
func (s *postService) afterWrite(ctx context.Context, post *entity.Post) {
	s.invalidateCache(ctx)

	if post.Status == entity.PostStatusPublished && s.eventPublisher != nil {
		err := s.eventPublisher.Publish(ctx, events.New(events.TypePostPublished, map[string]interface{}{
			"post_id": post.Id.String(),
			"title":   post.Title,
			"slug":    post.Slug,
		}))
		if err != nil {
			log.Printf("[WARN] Failed to publish post event: %v", err)
		}
	}
}

func (s *postService) invalidateCache(ctx context.Context) {
	if s.rdb != nil {
		s.rdb.Del(ctx, publishedPostsCacheKey)
	}
}

func toPostResponse(post *entity.Post, withContent bool) *dto.PostResponse {
	res := &dto.PostResponse{
		Id:        post.Id,
		Title:     post.Title,
		Slug:      post.Slug,
		Excerpt:   post.Excerpt,
		Category:  post.Category,
		Tags:      post.Tags,
		Status:    string(post.Status),
		Featured:  post.Featured,
		AuthorId:  post.AuthorId,
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}
	if withContent {
		res.Content = post.Content
	}
	return res
}
