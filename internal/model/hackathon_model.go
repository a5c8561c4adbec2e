package model

import (
	"time"

	"github.com/google/uuid"
)

type Hackathon struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Description  string    `gorm:"type:text;not null"`
	ImageURL     string    `gorm:"type:text"`
	Type         string    `gorm:"type:varchar(20);not null;index"`
	Date         time.Time `gorm:"not null"`
	Location     string    `gorm:"type:varchar(255)"`
	Participants int       `gorm:"default:0"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (Hackathon) TableName() string {
	return "hackathons"
}
