package service

import (
	"context"
	"encoding/json"
	"log"

	"consultly-be/internal/config"
	"consultly-be/internal/dto"
	"consultly-be/internal/repository/specification"
	"consultly-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IIndexerService interface {
	Consume(ctx context.Context) error
}

// indexerService rebuilds a document's chunks when a reindex message arrives.
// It runs in the background so document updates return before the re-chunking
// work happens.
type indexerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
	ingestCfg  config.IngestConfig
}

func NewIndexerService(
	pubSub *gochannel.GoChannel,
	uowFactory unitofwork.RepositoryFactory,
	ingestCfg config.IngestConfig,
) IIndexerService {
	return &indexerService{
		pubSub:     pubSub,
		topicName:  ingestCfg.ReindexTopic,
		uowFactory: uowFactory,
		ingestCfg:  ingestCfg,
	}
}

func (s *indexerService) Consume(ctx context.Context) error {
	messages, err := s.pubSub.Subscribe(ctx, s.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			s.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (s *indexerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.ReindexKnowledgeMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal reindex message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	doc, err := uow.KnowledgeDocumentRepository().FindOne(ctx, specification.ByID{ID: payload.DocumentId})
	if err != nil {
		log.Printf("[ERROR] Failed to load document %s: %v", payload.DocumentId, err)
		msg.Nack()
		return
	}
	if doc == nil {
		// Deleted between publish and consume; nothing to rebuild.
		msg.Ack()
		return
	}

	chunks := buildChunks(doc, s.ingestCfg.ChunkSize, s.ingestCfg.ChunkOverlap)

	if err := uow.Begin(ctx); err != nil {
		log.Printf("[ERROR] Failed to begin reindex transaction: %v", err)
		msg.Nack()
		return
	}

	if err := uow.KnowledgeChunkRepository().DeleteByDocumentId(ctx, doc.Id); err != nil {
		uow.Rollback()
		log.Printf("[ERROR] Failed to clear chunks for %s: %v", doc.Id, err)
		msg.Nack()
		return
	}
	if err := uow.KnowledgeChunkRepository().CreateBatch(ctx, chunks); err != nil {
		uow.Rollback()
		log.Printf("[ERROR] Failed to write chunks for %s: %v", doc.Id, err)
		msg.Nack()
		return
	}
	if err := uow.Commit(); err != nil {
		log.Printf("[ERROR] Failed to commit reindex for %s: %v", doc.Id, err)
		msg.Nack()
		return
	}

	log.Printf("[INFO] Reindexed document %s (%d chunks)", doc.Id, len(chunks))
	msg.Ack()
}
