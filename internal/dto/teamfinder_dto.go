package dto

import "github.com/google/uuid"

type TeammateResponse struct {
	Id             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Bio            string    `json:"bio"`
	AvatarURL      string    `json:"avatar"`
	Skills         []string  `json:"skills"`
	LookingForTeam bool      `json:"looking_for_team"`
}

// TeammateFilter collects the team-finder query parameters. Skill is an
// exact skill value or empty for all.
type TeammateFilter struct {
	Search string
	Skill  string
}
