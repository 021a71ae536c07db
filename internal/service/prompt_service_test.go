package service

import (
	"context"
	"testing"

	"consultly-be/internal/dto"
	"consultly-be/internal/pkg/apperror"
	"consultly-be/internal/repository/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newPromptService() IPromptService {
	return NewPromptService(memory.NewStore().NewRepositoryFactory())
}

func TestPromptCreateShowRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := newPromptService()

	created, err := svc.Create(ctx, "owner-1", &dto.CreatePromptRequest{
		Title:     "Summarizer",
		Body:      "Summarize {{input}}",
		Category:  "writing",
		Tags:      []string{"llm", "writing"},
		Variables: `{"input": "text to summarize"}`,
	})
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.Id)
	assert.Empty(t, created.Warnings)

	got, err := svc.Show(ctx, created.Id)
	assert.NoError(t, err)
	assert.Equal(t, "Summarizer", got.Title)
	assert.Equal(t, []string{"llm", "writing"}, got.Tags)
	assert.Equal(t, "text to summarize", got.Variables["input"])
	assert.False(t, got.CreatedAt.IsZero())
	assert.Nil(t, got.UpdatedAt)
}

func TestPromptCreateMalformedVariablesWarns(t *testing.T) {
	ctx := context.Background()
	svc := newPromptService()

	created, err := svc.Create(ctx, "owner-1", &dto.CreatePromptRequest{
		Title:     "Summarizer",
		Body:      "body",
		Variables: "{broken",
	})
	assert.NoError(t, err)
	assert.Len(t, created.Warnings, 1)

	got, err := svc.Show(ctx, created.Id)
	assert.NoError(t, err)
	assert.Empty(t, got.Variables)
}

func TestPromptUpdateReplacesWholeRecord(t *testing.T) {
	ctx := context.Background()
	svc := newPromptService()

	created, err := svc.Create(ctx, "owner-1", &dto.CreatePromptRequest{
		Title:    "Original",
		Body:     "body",
		Category: "writing",
		Tags:     []string{"a", "b"},
	})
	assert.NoError(t, err)

	_, err = svc.Update(ctx, &dto.UpdatePromptRequest{
		Id:    created.Id,
		Title: "Renamed",
		Body:  "new body",
	})
	assert.NoError(t, err)

	got, err := svc.Show(ctx, created.Id)
	assert.NoError(t, err)
	assert.Equal(t, "Renamed", got.Title)
	// Replace semantics: omitted request fields are cleared, store-owned
	// fields survive.
	assert.Empty(t, got.Category)
	assert.Empty(t, got.Tags)
	assert.Equal(t, "owner-1", got.OwnerId)
	if assert.NotNil(t, got.UpdatedAt) {
		assert.True(t, got.UpdatedAt.After(got.CreatedAt))
	}
}

func TestPromptUpdateMissingIsNotFound(t *testing.T) {
	ctx := context.Background()
	svc := newPromptService()

	_, err := svc.Update(ctx, &dto.UpdatePromptRequest{
		Id:    uuid.New(),
		Title: "Ghost",
		Body:  "body",
	})
	assert.True(t, apperror.IsNotFound(err))
}

func TestPromptDeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc := newPromptService()

	created, err := svc.Create(ctx, "owner-1", &dto.CreatePromptRequest{Title: "T", Body: "B"})
	assert.NoError(t, err)

	assert.NoError(t, svc.Delete(ctx, created.Id))
	assert.NoError(t, svc.Delete(ctx, created.Id), "second delete of same id succeeds")

	_, err = svc.Show(ctx, created.Id)
	assert.True(t, apperror.IsNotFound(err))
}

func TestPromptGetAllFilters(t *testing.T) {
	ctx := context.Background()
	svc := newPromptService()

	seed := []dto.CreatePromptRequest{
		{Title: "Kubernetes audit", Body: "Review cluster", Category: "devops", Tags: []string{"k8s", "audit"}},
		{Title: "Blog outline", Body: "Outline a post", Category: "writing", Tags: []string{"blog"}},
		{Title: "Terraform review", Body: "Check modules", Category: "devops", Tags: []string{"iac"}},
	}
	for i := range seed {
		_, err := svc.Create(ctx, "owner-1", &seed[i])
		assert.NoError(t, err)
	}

	all, err := svc.GetAll(ctx, &dto.ListPromptsQuery{})
	assert.NoError(t, err)
	assert.Len(t, all, 3)

	devops, err := svc.GetAll(ctx, &dto.ListPromptsQuery{Category: "devops"})
	assert.NoError(t, err)
	assert.Len(t, devops, 2)

	search, err := svc.GetAll(ctx, &dto.ListPromptsQuery{Search: "cluster"})
	assert.NoError(t, err)
	assert.Len(t, search, 1)
	assert.Equal(t, "Kubernetes audit", search[0].Title)

	tagged, err := svc.GetAll(ctx, &dto.ListPromptsQuery{Tags: "k8s,audit"})
	assert.NoError(t, err)
	assert.Len(t, tagged, 1)

	none, err := svc.GetAll(ctx, &dto.ListPromptsQuery{Tags: "k8s,blog"})
	assert.NoError(t, err)
	assert.Len(t, none, 0)
}
