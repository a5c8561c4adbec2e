// Package chat maintains the fixed set of conversations and their
// append-only message logs. State lives in memory for the process
// lifetime; conversations are seeded at store creation.
package chat

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"hackteam-be/internal/entity"
	"hackteam-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
)

// TopicUpdates carries new messages and refreshed conversation summaries
// to subscribers.
const TopicUpdates = "chat.updates"

// ErrConversationNotFound is returned when a message targets an unknown
// conversation id. The message is not recorded anywhere.
var ErrConversationNotFound = errors.New("conversation not found")

// Update is the payload published on TopicUpdates. Message and the
// refreshed Conversation summary travel together so no subscriber can
// observe one without the other.
type Update struct {
	Type         string               `json:"type"`
	Message      *entity.Message      `json:"message,omitempty"`
	Conversation *entity.Conversation `json:"conversation,omitempty"`
}

// Store owns the conversation collection and the per-conversation logs.
type Store struct {
	mu sync.RWMutex

	// order preserves stable insertion order; a new message never moves
	// its conversation to the front.
	order []uuid.UUID
	byId  map[uuid.UUID]*entity.Conversation
	logs  map[uuid.UUID][]*entity.Message

	publisher message.Publisher
	logger    logger.ILogger
}

// New seeds the store with the initial conversations and message logs.
func New(conversations []*entity.Conversation, messages map[uuid.UUID][]*entity.Message, publisher message.Publisher, log logger.ILogger) *Store {
	s := &Store{
		byId:      make(map[uuid.UUID]*entity.Conversation, len(conversations)),
		logs:      make(map[uuid.UUID][]*entity.Message),
		publisher: publisher,
		logger:    log,
	}
	for _, c := range conversations {
		cp := c.Clone()
		s.order = append(s.order, cp.Id)
		s.byId[cp.Id] = cp
	}
	for id, log := range messages {
		if _, ok := s.byId[id]; !ok {
			continue // never keep an orphan log
		}
		s.logs[id] = append(s.logs[id], log...)
	}
	return s
}

// Conversations lists every conversation in insertion order.
func (s *Store) Conversations() []*entity.Conversation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*entity.Conversation, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.byId[id].Clone())
	}
	return result
}

// Conversation returns a single conversation summary, or
// ErrConversationNotFound.
func (s *Store) Conversation(id uuid.UUID) (*entity.Conversation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.byId[id]
	if !ok {
		return nil, ErrConversationNotFound
	}
	return c.Clone(), nil
}

// Messages returns the log for a conversation in send order. A known
// conversation with no messages yields an empty slice;
// an unknown id yields ErrConversationNotFound.
func (s *Store) Messages(conversationId uuid.UUID) ([]*entity.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.byId[conversationId]; !ok {
		return nil, ErrConversationNotFound
	}

	log := s.logs[conversationId]
	result := make([]*entity.Message, len(log))
	for i, m := range log {
		cp := *m
		result[i] = &cp
	}
	return result, nil
}

// SendMessage appends a message to the conversation's log and updates the
// conversation's lastMessage/timestamp in the same critical section, so no
// reader sees one without the other.
func (s *Store) SendMessage(conversationId, senderId uuid.UUID, senderName, text string) (*entity.Message, error) {
	s.mu.Lock()
	conv, ok := s.byId[conversationId]
	if !ok {
		s.mu.Unlock()
		return nil, ErrConversationNotFound
	}

	msg := &entity.Message{
		Id:             uuid.New(),
		ConversationId: conversationId,
		SenderId:       senderId,
		SenderName:     senderName,
		Text:           text,
		SentAt:         time.Now(),
	}
	s.logs[conversationId] = append(s.logs[conversationId], msg)
	conv.LastMessage = msg.Text
	conv.LastActivity = msg.SentAt
	summary := conv.Clone()
	s.mu.Unlock()

	s.notify(&Update{Type: "message_sent", Message: msg, Conversation: summary})

	cp := *msg
	return &cp, nil
}

func (s *Store) notify(update *Update) {
	if s.publisher == nil {
		return
	}
	payload, err := json.Marshal(update)
	if err != nil {
		return
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := s.publisher.Publish(TopicUpdates, msg); err != nil {
		s.logger.Warn("ConversationStore", "Failed to publish chat update", map[string]interface{}{"error": err.Error()})
	}
}
