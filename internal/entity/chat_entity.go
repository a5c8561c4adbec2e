package entity

import (
	"time"

	"github.com/google/uuid"
)

// Conversation is a named channel with a fixed participant list and an
// append-only message log. LastMessage/LastActivity mirror the newest
// message in the log.
type Conversation struct {
	Id           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Participants []string  `json:"participants"`
	LastMessage  string    `json:"lastMessage"`
	LastActivity time.Time `json:"timestamp"`
	AvatarURL    string    `json:"avatar"`
}

func (c *Conversation) Clone() *Conversation {
	if c == nil {
		return nil
	}
	cp := *c
	cp.Participants = append([]string(nil), c.Participants...)
	return &cp
}

// Message belongs to exactly one conversation. SenderName is a snapshot of
// the author's name at send time, not a live reference.
type Message struct {
	Id             uuid.UUID `json:"id"`
	ConversationId uuid.UUID `json:"conversationId"`
	SenderId       uuid.UUID `json:"senderId"`
	SenderName     string    `json:"senderName"`
	Text           string    `json:"text"`
	SentAt         time.Time `json:"timestamp"`
}
