package dto

import (
	"time"

	"github.com/google/uuid"
)

type HackathonResponse struct {
	Id           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	ImageURL     string    `json:"image"`
	Type         string    `json:"type"`
	Date         time.Time `json:"date"`
	Location     string    `json:"location"`
	Participants int       `json:"participants"`
}

// HackathonFilter collects the browse-page query parameters. Type is
// "online", "offline" or empty for all.
type HackathonFilter struct {
	Search string
	Type   string
}
