package service

import (
	"context"
	"strings"
	"testing"

	"consultly-be/internal/dto"
	"consultly-be/internal/pkg/apperror"
	"consultly-be/internal/repository/memory"
	"consultly-be/pkg/frontmatter"

	"github.com/stretchr/testify/assert"
)

func newPostService() IPostService {
	return NewPostService(memory.NewStore().NewRepositoryFactory(), nil, nil)
}

func TestPostCreateDefaultsToDraft(t *testing.T) {
	ctx := context.Background()
	svc := newPostService()

	created, err := svc.Create(ctx, "author-1", &dto.CreatePostRequest{
		Title:   "Why We Use Go",
		Content: "Because it compiles fast and deploys as one binary.",
	})
	assert.NoError(t, err)
	assert.Equal(t, "why-we-use-go", created.Slug)

	got, err := svc.Show(ctx, created.Id)
	assert.NoError(t, err)
	assert.Equal(t, "draft", got.Status)
	assert.NotEmpty(t, got.Excerpt)
}

func TestPostShowBySlug(t *testing.T) {
	ctx := context.Background()
	svc := newPostService()

	_, err := svc.Create(ctx, "author-1", &dto.CreatePostRequest{
		Title:   "Findable",
		Content: "body",
		Slug:    "findable-post",
	})
	assert.NoError(t, err)

	got, err := svc.ShowBySlug(ctx, "findable-post")
	assert.NoError(t, err)
	assert.Equal(t, "Findable", got.Title)
	assert.Equal(t, "body", got.Content)

	_, err = svc.ShowBySlug(ctx, "missing-slug")
	assert.True(t, apperror.IsNotFound(err))
}

func TestPostPublishedListingExcludesDrafts(t *testing.T) {
	ctx := context.Background()
	svc := newPostService()

	_, err := svc.Create(ctx, "author-1", &dto.CreatePostRequest{
		Title: "Draft piece", Content: "wip",
	})
	assert.NoError(t, err)
	_, err = svc.Create(ctx, "author-1", &dto.CreatePostRequest{
		Title: "Live piece", Content: "done", Status: "published",
	})
	assert.NoError(t, err)
	_, err = svc.Create(ctx, "author-1", &dto.CreatePostRequest{
		Title: "Old piece", Content: "gone", Status: "archived",
	})
	assert.NoError(t, err)

	published, err := svc.GetPublished(ctx)
	assert.NoError(t, err)
	assert.Len(t, published, 1)
	assert.Equal(t, "Live piece", published[0].Title)
}

func TestPostStatusTransitions(t *testing.T) {
	ctx := context.Background()
	svc := newPostService()

	created, err := svc.Create(ctx, "author-1", &dto.CreatePostRequest{
		Title: "Lifecycle", Content: "body",
	})
	assert.NoError(t, err)

	_, err = svc.Update(ctx, &dto.UpdatePostRequest{
		Id:      created.Id,
		Title:   "Lifecycle",
		Content: "body",
		Slug:    created.Slug,
		Status:  "published",
	})
	assert.NoError(t, err)

	got, err := svc.Show(ctx, created.Id)
	assert.NoError(t, err)
	assert.Equal(t, "published", got.Status)
	assert.Equal(t, "author-1", got.AuthorId, "update keeps the creating author")
}

func TestPostUpdateRejectsBadStatus(t *testing.T) {
	ctx := context.Background()
	svc := newPostService()

	created, err := svc.Create(ctx, "author-1", &dto.CreatePostRequest{
		Title: "T", Content: "C",
	})
	assert.NoError(t, err)

	_, err = svc.Update(ctx, &dto.UpdatePostRequest{
		Id: created.Id, Title: "T", Content: "C", Status: "live",
	})
	assert.True(t, apperror.IsValidation(err))
}

func TestPostFileIngestDefaultsToPublished(t *testing.T) {
	ctx := context.Background()
	svc := newPostService()

	// Same path the ingest command takes: parse front matter, default the
	// status to published when the header omits it.
	input := `---
title: Getting Started
category: guides
---
Welcome aboard.`

	parsed, err := frontmatter.Parse(strings.NewReader(input))
	assert.NoError(t, err)

	status := parsed.Metadata.GetString("status")
	if status == "" {
		status = "published"
	}

	created, err := svc.Create(ctx, "", &dto.CreatePostRequest{
		Title:    parsed.Metadata.GetString("title"),
		Content:  parsed.Body,
		Category: parsed.Metadata.GetString("category"),
		Status:   status,
	})
	assert.NoError(t, err)
	assert.Equal(t, "getting-started", created.Slug)

	published, err := svc.GetPublished(ctx)
	assert.NoError(t, err)
	assert.Len(t, published, 1)
}

func TestPostGetAllStatusFilter(t *testing.T) {
	ctx := context.Background()
	svc := newPostService()

	_, err := svc.Create(ctx, "author-1", &dto.CreatePostRequest{Title: "A", Content: "a"})
	assert.NoError(t, err)
	_, err = svc.Create(ctx, "author-1", &dto.CreatePostRequest{Title: "B", Content: "b", Status: "published"})
	assert.NoError(t, err)

	drafts, err := svc.GetAll(ctx, &dto.ListPostsQuery{Status: "draft"})
	assert.NoError(t, err)
	assert.Len(t, drafts, 1)
	assert.Equal(t, "A", drafts[0].Title)
}
