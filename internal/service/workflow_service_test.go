package service

import (
	"context"
	"testing"

	"consultly-be/internal/dto"
	"consultly-be/internal/entity"
	"consultly-be/internal/pkg/apperror"
	"consultly-be/internal/repository/memory"
	"consultly-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newWorkflowFixture() (IWorkflowService, IPromptService, unitofwork.RepositoryFactory) {
	factory := memory.NewStore().NewRepositoryFactory()
	return NewWorkflowService(factory), NewPromptService(factory), factory
}

func TestWorkflowCreateShowRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newWorkflowFixture()

	created, err := svc.Create(ctx, "owner-1", &dto.CreateWorkflowRequest{
		Title:       "Client onboarding",
		Description: "From signed contract to kickoff",
		Steps: []entity.WorkflowStep{
			{Name: "Send welcome pack", Type: entity.StepTypeAction},
			{Name: "Pick template", Type: entity.StepTypeDecision, DependsOn: []int{0}},
		},
		Tags: []string{"onboarding"},
	})
	assert.NoError(t, err)

	got, err := svc.Show(ctx, created.Id)
	assert.NoError(t, err)
	assert.Len(t, got.Steps, 2)
	assert.Equal(t, []int{0}, got.Steps[1].DependsOn)
}

func TestWorkflowResolveStepPrompts(t *testing.T) {
	ctx := context.Background()
	svc, prompts, _ := newWorkflowFixture()

	prompt, err := prompts.Create(ctx, "owner-1", &dto.CreatePromptRequest{
		Title: "Kickoff agenda",
		Body:  "Draft an agenda for {{client}}",
	})
	assert.NoError(t, err)

	dangling := uuid.New()
	created, err := svc.Create(ctx, "owner-1", &dto.CreateWorkflowRequest{
		Title: "Kickoff",
		Steps: []entity.WorkflowStep{
			{Name: "No prompt"},
			{Name: "Agenda", PromptId: &prompt.Id},
			{Name: "Dangling", PromptId: &dangling},
		},
	})
	assert.NoError(t, err)

	resolved, err := svc.ResolveStepPrompts(ctx, created.Id)
	assert.NoError(t, err)
	// Steps without a prompt reference are skipped entirely.
	assert.Len(t, resolved, 2)

	assert.Equal(t, 1, resolved[0].StepIndex)
	assert.True(t, resolved[0].Found)
	assert.Equal(t, "Kickoff agenda", resolved[0].Prompt.Title)

	assert.Equal(t, 2, resolved[1].StepIndex)
	assert.False(t, resolved[1].Found, "dangling reference resolves to not-found, not an error")
	assert.Nil(t, resolved[1].Prompt)
}

func TestWorkflowResolvePromptsMissingWorkflow(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newWorkflowFixture()

	_, err := svc.ResolveStepPrompts(ctx, uuid.New())
	assert.True(t, apperror.IsNotFound(err))
}

func TestWorkflowUpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newWorkflowFixture()

	created, err := svc.Create(ctx, "owner-1", &dto.CreateWorkflowRequest{
		Title: "Original",
		Steps: []entity.WorkflowStep{{Name: "Only step"}},
	})
	assert.NoError(t, err)

	_, err = svc.Update(ctx, &dto.UpdateWorkflowRequest{
		Id:    created.Id,
		Title: "Revised",
		Steps: []entity.WorkflowStep{{Name: "First"}, {Name: "Second"}},
	})
	assert.NoError(t, err)

	got, err := svc.Show(ctx, created.Id)
	assert.NoError(t, err)
	assert.Equal(t, "Revised", got.Title)
	assert.Len(t, got.Steps, 2)
	assert.Equal(t, "owner-1", got.OwnerId, "update keeps the creating owner")

	assert.NoError(t, svc.Delete(ctx, created.Id))
	assert.NoError(t, svc.Delete(ctx, created.Id))

	_, err = svc.Show(ctx, created.Id)
	assert.True(t, apperror.IsNotFound(err))
}

func TestWorkflowGetAllSearch(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newWorkflowFixture()

	_, err := svc.Create(ctx, "owner-1", &dto.CreateWorkflowRequest{
		Title:       "Incident response",
		Description: "What to do when production breaks",
		Tags:        []string{"ops"},
	})
	assert.NoError(t, err)
	_, err = svc.Create(ctx, "owner-1", &dto.CreateWorkflowRequest{
		Title: "Content review",
		Tags:  []string{"editorial"},
	})
	assert.NoError(t, err)

	byTerm, err := svc.GetAll(ctx, &dto.ListWorkflowsQuery{Search: "production"})
	assert.NoError(t, err)
	assert.Len(t, byTerm, 1)

	byTag, err := svc.GetAll(ctx, &dto.ListWorkflowsQuery{Tags: "editorial"})
	assert.NoError(t, err)
	assert.Len(t, byTag, 1)
	assert.Equal(t, "Content review", byTag[0].Title)
}
