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

type IWorkflowService interface {
	Create(ctx context.Context, ownerId string, req *dto.CreateWorkflowRequest) (*dto.CreateWorkflowResponse, error)
	Update(ctx context.Context, req *dto.UpdateWorkflowRequest) (*dto.UpdateWorkflowResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Show(ctx context.Context, id uuid.UUID) (*dto.WorkflowResponse, error)
	GetAll(ctx context.Context, query *dto.ListWorkflowsQuery) ([]*dto.WorkflowResponse, error)
	ResolveStepPrompts(ctx context.Context, id uuid.UUID) ([]*dto.WorkflowStepPromptResponse, error)
}

type workflowService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewWorkflowService(uowFactory unitofwork.RepositoryFactory) IWorkflowService {
	return &workflowService{uowFactory: uowFactory}
}

func (s *workflowService) Create(ctx context.Context, ownerId string, req *dto.CreateWorkflowRequest) (*dto.CreateWorkflowResponse, error) {
	workflow, err := normalizer.Workflow(normalizer.WorkflowInput{
		Title:       req.Title,
		Description: req.Description,
		Steps:       req.Steps,
		Tags:        req.Tags,
		OwnerId:     ownerId,
	})
	if err != nil {
		return nil, err
	}
	workflow.Id = uuid.New()

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.WorkflowRepository().Create(ctx, workflow); err != nil {
		return nil, err
	}

	return &dto.CreateWorkflowResponse{Id: workflow.Id}, nil
}

func (s *workflowService) Update(ctx context.Context, req *dto.UpdateWorkflowRequest) (*dto.UpdateWorkflowResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.WorkflowRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperror.NotFound("workflow", req.Id.String())
	}

	workflow, err := normalizer.Workflow(normalizer.WorkflowInput{
		Title:       req.Title,
		Description: req.Description,
		Steps:       req.Steps,
		Tags:        req.Tags,
		OwnerId:     existing.OwnerId,
	})
	if err != nil {
		return nil, err
	}
	workflow.Id = req.Id

	if err := uow.WorkflowRepository().Update(ctx, workflow); err != nil {
		return nil, err
	}

	return &dto.UpdateWorkflowResponse{Id: workflow.Id}, nil
}

func (s *workflowService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.WorkflowRepository().Delete(ctx, id)
}

func (s *workflowService) Show(ctx context.Context, id uuid.UUID) (*dto.WorkflowResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	workflow, err := uow.WorkflowRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if workflow == nil {
		return nil, apperror.NotFound("workflow", id.String())
	}

	return toWorkflowResponse(workflow), nil
}

func (s *workflowService) GetAll(ctx context.Context, query *dto.ListWorkflowsQuery) ([]*dto.WorkflowResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	workflows, err := uow.WorkflowRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	workflows = filter.BySubstring(workflows, query.Search)
	workflows = filter.ByTags(workflows, splitTags(query.Tags))

	result := make([]*dto.WorkflowResponse, 0, len(workflows))
	for _, workflow := range workflows {
		result = append(result, toWorkflowResponse(workflow))
	}
	return result, nil
}

// ResolveStepPrompts looks up the prompt each step references. Step prompt
// ids are loose references, so a dangling one yields Found=false instead of
// failing the whole resolution.
func (s *workflowService) ResolveStepPrompts(ctx context.Context, id uuid.UUID) ([]*dto.WorkflowStepPromptResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	workflow, err := uow.WorkflowRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if workflow == nil {
		return nil, apperror.NotFound("workflow", id.String())
	}

	result := make([]*dto.WorkflowStepPromptResponse, 0, len(workflow.Steps))
	for i, step := range workflow.Steps {
		if step.PromptId == nil {
			continue
		}

		prompt, err := uow.PromptRepository().FindOne(ctx, specification.ByID{ID: *step.PromptId})
		if err != nil {
			return nil, err
		}

		res := &dto.WorkflowStepPromptResponse{StepIndex: i}
		if prompt != nil {
			res.Found = true
			res.Prompt = toPromptResponse(prompt)
		}
		result = append(result, res)
	}

	return result, nil
}

func toWorkflowResponse(workflow *entity.Workflow) *dto.WorkflowResponse {
	return &dto.WorkflowResponse{
		Id:          workflow.Id,
		Title:       workflow.Title,
		Description: workflow.Description,
		Steps:       workflow.Steps,
		Tags:        workflow.Tags,
		OwnerId:     workflow.OwnerId,
		CreatedAt:   workflow.CreatedAt,
		UpdatedAt:   workflow.UpdatedAt,
	}
}
