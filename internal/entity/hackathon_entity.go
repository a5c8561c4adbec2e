package entity

import (
	"time"

	"github.com/google/uuid"
)

type HackathonType string

const (
	HackathonTypeOnline  HackathonType = "online"
	HackathonTypeOffline HackathonType = "offline"
)

// Hackathon is a read-only catalog record; there is no write path at runtime.
type Hackathon struct {
	Id           uuid.UUID     `json:"id"`
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	ImageURL     string        `json:"image"`
	Type         HackathonType `json:"type"`
	Date         time.Time     `json:"date"`
	Location     string        `json:"location"`
	Participants int           `json:"participants"`
}
