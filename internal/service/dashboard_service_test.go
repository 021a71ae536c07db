package service

import (
	"context"
	"testing"

	"consultly-be/internal/dto"
	"consultly-be/internal/repository/memory"

	"github.com/stretchr/testify/assert"
)

func TestDashboardStatsAggregation(t *testing.T) {
	ctx := context.Background()
	factory := memory.NewStore().NewRepositoryFactory()

	prompts := NewPromptService(factory)
	posts := NewPostService(factory, nil, nil)
	contacts := NewContactService(factory, nil, nil, "")

	_, err := prompts.Create(ctx, "o", &dto.CreatePromptRequest{Title: "P1", Body: "b", Tags: []string{"go", "llm"}})
	assert.NoError(t, err)
	_, err = prompts.Create(ctx, "o", &dto.CreatePromptRequest{Title: "P2", Body: "b", Tags: []string{"go"}})
	assert.NoError(t, err)
	_, err = posts.Create(ctx, "o", &dto.CreatePostRequest{Title: "Draft", Content: "c", Tags: []string{"go"}})
	assert.NoError(t, err)
	_, err = posts.Create(ctx, "o", &dto.CreatePostRequest{Title: "Live", Content: "c", Status: "published"})
	assert.NoError(t, err)
	_, err = contacts.Submit(ctx, &dto.SubmitContactRequest{Name: "N", Email: "n@example.com", Message: "m"})
	assert.NoError(t, err)

	svc := NewDashboardService(factory)

	stats, err := svc.GetStats(ctx)
	assert.NoError(t, err)

	assert.EqualValues(t, 2, stats.Prompts)
	assert.EqualValues(t, 2, stats.Posts)
	assert.EqualValues(t, 1, stats.PostsByStatus["draft"])
	assert.EqualValues(t, 1, stats.PostsByStatus["published"])
	assert.EqualValues(t, 0, stats.PostsByStatus["archived"])
	assert.EqualValues(t, 1, stats.UnhandledContacts)

	// "go" is used three times and must rank first; ties break alphabetically.
	if assert.NotEmpty(t, stats.TopTags) {
		assert.Equal(t, dto.TagCount{Tag: "go", Count: 3}, stats.TopTags[0])
	}
}

func TestDashboardStatsCached(t *testing.T) {
	ctx := context.Background()
	factory := memory.NewStore().NewRepositoryFactory()
	prompts := NewPromptService(factory)
	svc := NewDashboardService(factory)

	first, err := svc.GetStats(ctx)
	assert.NoError(t, err)
	assert.EqualValues(t, 0, first.Prompts)

	_, err = prompts.Create(ctx, "o", &dto.CreatePromptRequest{Title: "P", Body: "b"})
	assert.NoError(t, err)

	// Within the cache window the stale aggregate is served.
	second, err := svc.GetStats(ctx)
	assert.NoError(t, err)
	assert.EqualValues(t, 0, second.Prompts)
}
