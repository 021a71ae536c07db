package service

import (
	"context"
	"strings"
	"testing"

	"consultly-be/internal/config"
	"consultly-be/internal/dto"
	"consultly-be/internal/pkg/apperror"
	"consultly-be/internal/repository/memory"
	"consultly-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// capturingPublisher records reindex requests instead of routing them
// through the bus.
type capturingPublisher struct {
	published []uuid.UUID
}

func (p *capturingPublisher) PublishReindex(_ context.Context, documentId uuid.UUID) error {
	p.published = append(p.published, documentId)
	return nil
}

func testIngestConfig() config.IngestConfig {
	return config.IngestConfig{
		ReindexTopic: "reindex-test",
		ChunkSize:    120,
		ChunkOverlap: 20,
	}
}

func newKnowledgeFixture() (IKnowledgeService, *capturingPublisher, unitofwork.RepositoryFactory) {
	factory := memory.NewStore().NewRepositoryFactory()
	pub := &capturingPublisher{}
	return NewKnowledgeService(factory, pub, testIngestConfig()), pub, factory
}

func TestKnowledgeIngestWritesDocumentAndChunks(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newKnowledgeFixture()

	body := strings.Repeat("consulting knowledge management retrieval ", 20)
	res, err := svc.Ingest(ctx, "owner-1", &dto.IngestKnowledgeRequest{
		Title:    "Engagement Playbook",
		Content:  body,
		Category: "process",
		Tags:     []string{"playbook"},
	})
	assert.NoError(t, err)
	assert.Equal(t, "engagement-playbook", res.Slug)
	assert.Greater(t, res.ChunkCount, 1)

	chunks, err := svc.GetChunks(ctx, res.Id)
	assert.NoError(t, err)
	assert.Len(t, chunks, res.ChunkCount)

	for i, chunk := range chunks {
		assert.Equal(t, i, chunk.Section)
		assert.Equal(t, res.Id, chunk.DocumentId)
		assert.Greater(t, chunk.WordCount, 0)
		assert.NotEmpty(t, chunk.Keywords)
		assert.Equal(t, "process", chunk.Category)
	}
}

func TestKnowledgeIngestRejectsEmptyContent(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newKnowledgeFixture()

	_, err := svc.Ingest(ctx, "owner-1", &dto.IngestKnowledgeRequest{
		Title:   "Empty",
		Content: "   ",
	})
	assert.True(t, apperror.IsValidation(err))
}

func TestKnowledgeUpdatePublishesReindex(t *testing.T) {
	ctx := context.Background()
	svc, pub, _ := newKnowledgeFixture()

	res, err := svc.Ingest(ctx, "owner-1", &dto.IngestKnowledgeRequest{
		Title:   "Doc",
		Content: "original content here",
	})
	assert.NoError(t, err)

	_, err = svc.Update(ctx, &dto.UpdateKnowledgeRequest{
		Id:      res.Id,
		Title:   "Doc v2",
		Content: "replacement content here",
	})
	assert.NoError(t, err)
	assert.Equal(t, []uuid.UUID{res.Id}, pub.published)

	got, err := svc.Show(ctx, res.Id)
	assert.NoError(t, err)
	assert.Equal(t, "Doc v2", got.Title)
	assert.Equal(t, "doc", got.Slug, "slug is stable across updates")
}

func TestKnowledgeUpdateMissingIsNotFound(t *testing.T) {
	ctx := context.Background()
	svc, pub, _ := newKnowledgeFixture()

	_, err := svc.Update(ctx, &dto.UpdateKnowledgeRequest{
		Id:      uuid.New(),
		Title:   "Ghost",
		Content: "body",
	})
	assert.True(t, apperror.IsNotFound(err))
	assert.Empty(t, pub.published, "no reindex for failed update")
}

func TestKnowledgeDeleteRemovesChunks(t *testing.T) {
	ctx := context.Background()
	svc, _, factory := newKnowledgeFixture()

	res, err := svc.Ingest(ctx, "owner-1", &dto.IngestKnowledgeRequest{
		Title:   "Doomed",
		Content: strings.Repeat("to be deleted shortly ", 30),
	})
	assert.NoError(t, err)

	assert.NoError(t, svc.Delete(ctx, res.Id))

	_, err = svc.Show(ctx, res.Id)
	assert.True(t, apperror.IsNotFound(err))

	uow := factory.NewUnitOfWork(ctx)
	count, err := uow.KnowledgeChunkRepository().Count(ctx)
	assert.NoError(t, err)
	assert.Zero(t, count)
}

func TestKnowledgeSearch(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newKnowledgeFixture()

	docs := []dto.IngestKnowledgeRequest{
		{Title: "Cloud migration", Content: "Moving workloads to the cloud", Category: "cloud", Tags: []string{"aws"}},
		{Title: "Security review", Content: "Hardening checklist", Category: "security", Tags: []string{"audit"}},
	}
	for i := range docs {
		_, err := svc.Ingest(ctx, "owner-1", &docs[i])
		assert.NoError(t, err)
	}

	all, err := svc.Search(ctx, &dto.SearchKnowledgeQuery{})
	assert.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Empty(t, all[0].Content, "listing omits full bodies")

	byTerm, err := svc.Search(ctx, &dto.SearchKnowledgeQuery{Search: "workloads"})
	assert.NoError(t, err)
	assert.Len(t, byTerm, 1)
	assert.Equal(t, "Cloud migration", byTerm[0].Title)

	byCategory, err := svc.Search(ctx, &dto.SearchKnowledgeQuery{Category: "security"})
	assert.NoError(t, err)
	assert.Len(t, byCategory, 1)

	byTag, err := svc.Search(ctx, &dto.SearchKnowledgeQuery{Tags: "aws"})
	assert.NoError(t, err)
	assert.Len(t, byTag, 1)
}

func TestKnowledgeChunkNeighbourReferences(t *testing.T) {
	ctx := context.Background()
	svc, _, factory := newKnowledgeFixture()

	res, err := svc.Ingest(ctx, "owner-1", &dto.IngestKnowledgeRequest{
		Title:   "Long doc",
		Content: strings.Repeat("sections linked to neighbours ", 30),
	})
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, res.ChunkCount, 3)

	uow := factory.NewUnitOfWork(ctx)
	chunks, err := uow.KnowledgeChunkRepository().FindAll(ctx)
	assert.NoError(t, err)

	var middleSeen bool
	for _, chunk := range chunks {
		switch chunk.Section {
		case 0, res.ChunkCount - 1:
			assert.Len(t, chunk.RelatedChunkIds, 1)
		default:
			assert.Len(t, chunk.RelatedChunkIds, 2)
			middleSeen = true
		}
	}
	assert.True(t, middleSeen)
}
