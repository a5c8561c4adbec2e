package service

import (
	"context"
	"fmt"
	"time"

	"hackteam-be/internal/dto"
	"hackteam-be/internal/entity"
	"hackteam-be/internal/pkg/logger"
	"hackteam-be/internal/store/chat"
	"hackteam-be/internal/store/session"
	"hackteam-be/pkg/events"
	pktNats "hackteam-be/pkg/nats"

	"github.com/google/uuid"
)

type IChatService interface {
	Conversations(ctx context.Context) ([]dto.ConversationResponse, error)
	Messages(ctx context.Context, conversationId uuid.UUID) ([]dto.MessageResponse, error)
	SendMessage(ctx context.Context, conversationId uuid.UUID, req *dto.SendMessageRequest) (*dto.MessageResponse, error)
}

type chatService struct {
	chats          *chat.Store
	sessions       *session.Store
	eventPublisher *pktNats.Publisher
	logger         logger.ILogger
}

func NewChatService(chats *chat.Store, sessions *session.Store, eventPublisher *pktNats.Publisher, log logger.ILogger) IChatService {
	return &chatService{
		chats:          chats,
		sessions:       sessions,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

func (s *chatService) Conversations(ctx context.Context) ([]dto.ConversationResponse, error) {
	conversations := s.chats.Conversations()
	result := make([]dto.ConversationResponse, 0, len(conversations))
	for _, c := range conversations {
		result = append(result, toConversationResponse(c))
	}
	return result, nil
}

func (s *chatService) Messages(ctx context.Context, conversationId uuid.UUID) ([]dto.MessageResponse, error) {
	messages, err := s.chats.Messages(conversationId)
	if err != nil {
		return nil, err
	}
	result := make([]dto.MessageResponse, 0, len(messages))
	for _, m := range messages {
		result = append(result, toMessageResponse(m))
	}
	return result, nil
}

func (s *chatService) SendMessage(ctx context.Context, conversationId uuid.UUID, req *dto.SendMessageRequest) (*dto.MessageResponse, error) {
	sender := s.sessions.Current()
	if sender == nil {
		return nil, session.ErrNoActiveSession
	}

	msg, err := s.chats.SendMessage(conversationId, sender.Id, sender.Name, req.Text)
	if err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		event := events.BaseEvent{
			Type: events.TypeMessageSent,
			Data: map[string]interface{}{
				"message_id":      msg.Id,
				"conversation_id": msg.ConversationId,
				"sender_id":       msg.SenderId,
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, event); err != nil {
			s.logger.Warn("ChatService", fmt.Sprintf("Failed to publish %s event", events.TypeMessageSent), map[string]interface{}{"error": err.Error()})
		}
	}

	resp := toMessageResponse(msg)
	return &resp, nil
}

func toConversationResponse(c *entity.Conversation) dto.ConversationResponse {
	return dto.ConversationResponse{
		Id:           c.Id,
		Name:         c.Name,
		Participants: c.Participants,
		LastMessage:  c.LastMessage,
		Timestamp:    c.LastActivity,
		AvatarURL:    c.AvatarURL,
	}
}

func toMessageResponse(m *entity.Message) dto.MessageResponse {
	return dto.MessageResponse{
		Id:         m.Id,
		SenderId:   m.SenderId,
		SenderName: m.SenderName,
		Text:       m.Text,
		Timestamp:  m.SentAt,
	}
}
