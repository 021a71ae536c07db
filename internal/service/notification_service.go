package service

import (
	"context"
	"fmt"
	"strings"

	"consultly-be/internal/pkg/logger"
	"consultly-be/internal/websocket"
	"consultly-be/pkg/events"
	pktNats "consultly-be/pkg/nats"
)

// NotificationService bridges bus events onto the admin activity feed: every
// event published to NATS shows up live on connected dashboard sessions.
type NotificationService struct {
	subscriber *pktNats.Subscriber
	hub        *websocket.Hub
	logger     logger.ILogger
}

func NewNotificationService(subscriber *pktNats.Subscriber, hub *websocket.Hub, log logger.ILogger) *NotificationService {
	return &NotificationService{
		subscriber: subscriber,
		hub:        hub,
		logger:     log,
	}
}

// Start subscribes to the event stream. Blocks only during subscription
// setup; delivery runs on the subscriber's own goroutines.
func (s *NotificationService) Start() {
	err := s.subscriber.Subscribe("events.>", "dashboard-feed", s.handleEvent)
	if err != nil {
		s.logger.Error("NotificationService", "Failed to subscribe to event stream", map[string]interface{}{"error": err.Error()})
	}
}

func (s *NotificationService) handleEvent(_ context.Context, event events.Event) error {
	kind := strings.TrimPrefix(event.EventType(), "events.")

	activity := websocket.Activity{
		Kind:    kind,
		Message: describeEvent(kind, event.Payload()),
		Details: event.Payload(),
	}

	s.hub.Broadcast(activity)
	s.logger.Info("NotificationService", "Activity broadcast", map[string]interface{}{"kind": kind})
	return nil
}

func describeEvent(kind string, payload map[string]interface{}) string {
	switch kind {
	case events.TypeContactSubmitted:
		if name, ok := payload["name"].(string); ok {
			return fmt.Sprintf("New contact submission from %s", name)
		}
		return "New contact submission"
	case events.TypePostPublished:
		if title, ok := payload["title"].(string); ok {
			return fmt.Sprintf("Post published: %s", title)
		}
		return "Post published"
	case events.TypeKnowledgeReindexed:
		return "Knowledge document reindexed"
	}
	return kind
}
