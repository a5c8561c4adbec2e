package dto

import (
	"time"

	"github.com/google/uuid"
)

type UserResponse struct {
	Id             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Bio            string    `json:"bio"`
	Skills         []string  `json:"skills"`
	AvatarURL      string    `json:"avatar"`
	LookingForTeam bool      `json:"looking_for_team"`
	CreatedAt      time.Time `json:"created_at"`
}

// UpdateProfileRequest is a partial profile; absent fields are left
// untouched.
type UpdateProfileRequest struct {
	Name      *string   `json:"name" validate:"omitempty,min=1"`
	Email     *string   `json:"email" validate:"omitempty,email"`
	Bio       *string   `json:"bio"`
	AvatarURL *string   `json:"avatar"`
	Skills    *[]string `json:"skills"`
}

type SkillRequest struct {
	Skill string `json:"skill" validate:"required"`
}
