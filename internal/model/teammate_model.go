package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Teammate struct {
	Id             uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name           string         `gorm:"type:varchar(255);not null"`
	Bio            string         `gorm:"type:text"`
	AvatarURL      string         `gorm:"type:text"`
	Skills         datatypes.JSON `gorm:"type:jsonb"`
	LookingForTeam bool           `gorm:"default:true;index"`
	CreatedAt      time.Time      `gorm:"autoCreateTime"`
}

func (Teammate) TableName() string {
	return "teammates"
}
