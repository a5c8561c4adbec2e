package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"hackteam-be/internal/pkg/logger"
	"hackteam-be/internal/store/chat"
	"hackteam-be/internal/store/session"
	"hackteam-be/pkg/events"
	pktNats "hackteam-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill/message"
)

// UpdateDelivery defines how to push real-time updates.
// Typically implemented by the WebSocket Hub.
type UpdateDelivery interface {
	Broadcast(payload []byte)
}

// envelope frames every pushed update with the topic it came from so the
// client can route it without inspecting the payload.
type envelope struct {
	Topic   string          `json:"topic"`
	Payload json.RawMessage `json:"payload"`
}

// UpdatesService bridges the in-process store update topics to connected
// WebSocket clients. It is the subscribe side of the store notify calls.
type UpdatesService struct {
	subscriber message.Subscriber
	natsSub    *pktNats.Subscriber
	delivery   UpdateDelivery
	logger     logger.ILogger
}

func NewUpdatesService(subscriber message.Subscriber, natsSub *pktNats.Subscriber, delivery UpdateDelivery, log logger.ILogger) *UpdatesService {
	return &UpdatesService{
		subscriber: subscriber,
		natsSub:    natsSub,
		delivery:   delivery,
		logger:     log,
	}
}

// Start begins forwarding store updates. It returns after the forwarding
// goroutines are running; they stop when ctx is cancelled.
func (s *UpdatesService) Start(ctx context.Context) error {
	for _, topic := range []string{session.TopicUpdates, chat.TopicUpdates} {
		messages, err := s.subscriber.Subscribe(ctx, topic)
		if err != nil {
			return fmt.Errorf("failed to subscribe to %s: %w", topic, err)
		}
		go s.forward(topic, messages)
	}

	if s.natsSub != nil {
		// Durable consumer on the external event bus, mirrored to clients
		// alongside the in-process updates.
		err := s.natsSub.Subscribe("events.>", "updates-service-worker", s.handleEvent)
		if err != nil {
			s.logger.Error("UpdatesService", "Failed to start event bus subscriber", map[string]interface{}{"error": err.Error()})
		}
	}

	s.logger.Info("UpdatesService", "Update forwarding started", nil)
	return nil
}

func (s *UpdatesService) forward(topic string, messages <-chan *message.Message) {
	for msg := range messages {
		framed, err := json.Marshal(envelope{Topic: topic, Payload: json.RawMessage(msg.Payload)})
		if err != nil {
			s.logger.Warn("UpdatesService", "Failed to frame update", map[string]interface{}{"topic": topic, "error": err.Error()})
			msg.Ack()
			continue
		}
		s.delivery.Broadcast(framed)
		msg.Ack()
	}
}

func (s *UpdatesService) handleEvent(ctx context.Context, event events.Event) error {
	typeCode := strings.TrimPrefix(event.EventType(), "events.")
	s.logger.Info("UpdatesService", fmt.Sprintf("Processing event: %s", typeCode), map[string]interface{}{"type": typeCode})

	payload, err := json.Marshal(map[string]interface{}{
		"type": typeCode,
		"data": event.Payload(),
	})
	if err != nil {
		return nil
	}
	framed, err := json.Marshal(envelope{Topic: "events", Payload: payload})
	if err != nil {
		return nil
	}
	s.delivery.Broadcast(framed)
	return nil
}
