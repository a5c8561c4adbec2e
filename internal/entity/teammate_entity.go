package entity

import "github.com/google/uuid"

// Teammate is an entry in the read-only user directory browsed by the
// team finder.
type Teammate struct {
	Id             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Bio            string    `json:"bio"`
	AvatarURL      string    `json:"avatar"`
	Skills         []string  `json:"skills"`
	LookingForTeam bool      `json:"lookingForTeam"`
}
