package service

import (
	"context"
	"encoding/json"

	"consultly-be/internal/dto"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IPublisherService interface {
	PublishReindex(ctx context.Context, documentId uuid.UUID) error
}

type publisherService struct {
	topicName string
	pubSub    *gochannel.GoChannel
}

func NewPublisherService(topicName string, pubSub *gochannel.GoChannel) IPublisherService {
	return &publisherService{
		topicName: topicName,
		pubSub:    pubSub,
	}
}

// PublishReindex hands a document id to the indexer. Delivery is in-process;
// a message published after the document's transaction commits is never lost
// while the process lives.
func (s *publisherService) PublishReindex(_ context.Context, documentId uuid.UUID) error {
	payload, err := json.Marshal(dto.ReindexKnowledgeMessage{DocumentId: documentId})
	if err != nil {
		return err
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	return s.pubSub.Publish(s.topicName, msg)
}
