package dto

import (
	"time"

	"github.com/google/uuid"
)

type ConversationResponse struct {
	Id           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Participants []string  `json:"participants"`
	LastMessage  string    `json:"last_message"`
	Timestamp    time.Time `json:"timestamp"`
	AvatarURL    string    `json:"avatar"`
}

type MessageResponse struct {
	Id         uuid.UUID `json:"id"`
	SenderId   uuid.UUID `json:"sender_id"`
	SenderName string    `json:"sender_name"`
	Text       string    `json:"text"`
	Timestamp  time.Time `json:"timestamp"`
}

type SendMessageRequest struct {
	Text string `json:"text" validate:"required"`
}
