package service

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"consultly-be/internal/dto"
	"consultly-be/internal/repository/memory"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func reindexMessage(t *testing.T, documentId uuid.UUID) *message.Message {
	t.Helper()
	payload, err := json.Marshal(dto.ReindexKnowledgeMessage{DocumentId: documentId})
	assert.NoError(t, err)
	return message.NewMessage(watermill.NewUUID(), payload)
}

func TestIndexerRebuildsChunksAfterUpdate(t *testing.T) {
	ctx := context.Background()
	factory := memory.NewStore().NewRepositoryFactory()
	cfg := testIngestConfig()

	pub := &capturingPublisher{}
	knowledge := NewKnowledgeService(factory, pub, cfg)
	indexer := NewIndexerService(nil, factory, cfg).(*indexerService)

	res, err := knowledge.Ingest(ctx, "owner-1", &dto.IngestKnowledgeRequest{
		Title:   "Doc",
		Content: strings.Repeat("original body text ", 30),
	})
	assert.NoError(t, err)
	originalChunks := res.ChunkCount

	_, err = knowledge.Update(ctx, &dto.UpdateKnowledgeRequest{
		Id:      res.Id,
		Title:   "Doc",
		Content: "tiny body now",
	})
	assert.NoError(t, err)

	// Chunks are stale until the reindex message is processed.
	stale, err := knowledge.GetChunks(ctx, res.Id)
	assert.NoError(t, err)
	assert.Len(t, stale, originalChunks)

	indexer.processMessage(ctx, reindexMessage(t, res.Id))

	fresh, err := knowledge.GetChunks(ctx, res.Id)
	assert.NoError(t, err)
	assert.Len(t, fresh, 1)
	assert.Equal(t, "tiny body now", fresh[0].Content)
}

func TestIndexerIgnoresDeletedDocument(t *testing.T) {
	ctx := context.Background()
	factory := memory.NewStore().NewRepositoryFactory()
	indexer := NewIndexerService(nil, factory, testIngestConfig()).(*indexerService)

	// Never panics or writes anything for an id that no longer exists.
	indexer.processMessage(ctx, reindexMessage(t, uuid.New()))

	uow := factory.NewUnitOfWork(ctx)
	count, err := uow.KnowledgeChunkRepository().Count(ctx)
	assert.NoError(t, err)
	assert.Zero(t, count)
}

func TestIndexerIgnoresMalformedMessage(t *testing.T) {
	ctx := context.Background()
	factory := memory.NewStore().NewRepositoryFactory()
	indexer := NewIndexerService(nil, factory, testIngestConfig()).(*indexerService)

	indexer.processMessage(ctx, message.NewMessage(watermill.NewUUID(), []byte("{not json")))
}
