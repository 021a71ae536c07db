package service

import (
	"context"

	"consultly-be/internal/dto"
	"consultly-be/internal/entity"
	"consultly-be/internal/normalizer"
	"consultly-be/internal/pkg/apperror"
	"consultly-be/internal/repository/specification"
	"consultly-be/internal/repository/unitofwork"
	"consultly-be/pkg/filter"

	"github.com/google/uuid"
)

type IPromptService interface {
	Create(ctx context.Context, ownerId string, req *dto.CreatePromptRequest) (*dto.CreatePromptResponse, error)
	Update(ctx context.Context, req *dto.UpdatePromptRequest) (*dto.UpdatePromptResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Show(ctx context.Context, id uuid.UUID) (*dto.PromptResponse, error)
	GetAll(ctx context.Context, query *dto.ListPromptsQuery) ([]*dto.PromptResponse, error)
}

type promptService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewPromptService(uowFactory unitofwork.RepositoryFactory) IPromptService {
	return &promptService{uowFactory: uowFactory}
}

func (s *promptService) Create(ctx context.Context, ownerId string, req *dto.CreatePromptRequest) (*dto.CreatePromptResponse, error) {
	prompt, warnings, err := normalizer.Prompt(normalizer.PromptInput{
		Title:     req.Title,
		Body:      req.Body,
		Category:  req.Category,
		Tags:      req.Tags,
		Variables: req.Variables,
		OwnerId:   ownerId,
	})
	if err != nil {
		return nil, err
	}
	prompt.Id = uuid.New()

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.PromptRepository().Create(ctx, prompt); err != nil {
		return nil, err
	}

	return &dto.CreatePromptResponse{Id: prompt.Id, Warnings: warnings}, nil
}

// Update replaces every client-supplied field; omitting one clears it.
// Store-owned fields (owner, timestamps) are carried over from the existing
// record.
func (s *promptService) Update(ctx context.Context, req *dto.UpdatePromptRequest) (*dto.UpdatePromptResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.PromptRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperror.NotFound("prompt", req.Id.String())
	}

	prompt, warnings, err := normalizer.Prompt(normalizer.PromptInput{
		Title:     req.Title,
		Body:      req.Body,
		Category:  req.Category,
		Tags:      req.Tags,
		Variables: req.Variables,
		OwnerId:   existing.OwnerId,
	})
	if err != nil {
		return nil, err
	}
	prompt.Id = req.Id

	if err := uow.PromptRepository().Update(ctx, prompt); err != nil {
		return nil, err
	}

	return &dto.UpdatePromptResponse{Id: prompt.Id, Warnings: warnings}, nil
}

// Delete is tolerant of a missing record, so retried deletes succeed.
func (s *promptService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.PromptRepository().Delete(ctx, id)
}

func (s *promptService) Show(ctx context.Context, id uuid.UUID) (*dto.PromptResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	prompt, err := uow.PromptRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if prompt == nil {
		return nil, apperror.NotFound("prompt", id.String())
	}

	return toPromptResponse(prompt), nil
}

func (s *promptService) GetAll(ctx context.Context, query *dto.ListPromptsQuery) ([]*dto.PromptResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{specification.OrderBy{Field: "created_at", Desc: true}}
	if query.Category != "" {
		specs = append(specs, specification.ByCategory{Category: query.Category})
	}

	prompts, err := uow.PromptRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	prompts = filter.BySubstring(prompts, query.Search)
	prompts = filter.ByTags(prompts, splitTags(query.Tags))

	result := make([]*dto.PromptResponse, 0, len(prompts))
	for _, prompt := range prompts {
		result = append(result, toPromptResponse(prompt))
	}
	return result, nil
}

func toPromptResponse(prompt *entity.Prompt) *dto.PromptResponse {
	return &dto.PromptResponse{
		Id:        prompt.Id,
		Title:     prompt.Title,
		Body:      prompt.Body,
		Category:  prompt.Category,
		Tags:      prompt.Tags,
		Variables: prompt.Variables,
		OwnerId:   prompt.OwnerId,
		CreatedAt: prompt.CreatedAt,
		UpdatedAt: prompt.UpdatedAt,
	}
}
