package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultAvatarURL is assigned when a profile is created without an avatar.
const DefaultAvatarURL = "/diverse-user-avatars.png"

// User is the current session's profile record. Exactly one User is
// "current" at a time; the session store owns the record.
type User struct {
	Id             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Bio            string    `json:"bio"`
	PasswordHash   *string   `json:"-"`
	Skills         []string  `json:"skills"`
	AvatarURL      string    `json:"avatar"`
	LookingForTeam bool      `json:"lookingForTeam"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Clone returns a deep copy so callers can never mutate store-owned state.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	cp := *u
	cp.Skills = append([]string(nil), u.Skills...)
	if u.PasswordHash != nil {
		hash := *u.PasswordHash
		cp.PasswordHash = &hash
	}
	return &cp
}
