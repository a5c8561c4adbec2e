package session

import (
	"time"

	"hackteam-be/internal/entity"

	"github.com/google/uuid"
)

// SignupInput is the profile captured by the signup form. Name and Email
// are required; the form layer also rejects empty skill lists before the
// store is reached.
type SignupInput struct {
	Name     string
	Email    string
	Password string
	Bio      string
	Skills   []string
}

// ProfileUpdate is a partial profile. Nil fields are left untouched; set
// fields replace the current value wholesale (shallow merge).
type ProfileUpdate struct {
	Name      *string
	Email     *string
	Bio       *string
	AvatarURL *string
	Skills    *[]string
}

// The transitions below are pure: given the old state and a command they
// produce the new state, leaving persistence to the store.

func newUserFromSignup(in SignupInput, passwordHash *string, now time.Time) *entity.User {
	return &entity.User{
		Id:             uuid.New(),
		Name:           in.Name,
		Email:          in.Email,
		Bio:            in.Bio,
		PasswordHash:   passwordHash,
		Skills:         dedupeSkills(in.Skills),
		AvatarURL:      entity.DefaultAvatarURL,
		LookingForTeam: true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func demoUser(email string, now time.Time) *entity.User {
	return &entity.User{
		Id:             uuid.New(),
		Name:           "Demo User",
		Email:          email,
		Bio:            "Software developer",
		Skills:         []string{"React", "Node.js"},
		AvatarURL:      entity.DefaultAvatarURL,
		LookingForTeam: true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func mergeProfile(current *entity.User, update ProfileUpdate, now time.Time) *entity.User {
	merged := current.Clone()
	if update.Name != nil {
		merged.Name = *update.Name
	}
	if update.Email != nil {
		merged.Email = *update.Email
	}
	if update.Bio != nil {
		merged.Bio = *update.Bio
	}
	if update.AvatarURL != nil {
		merged.AvatarURL = *update.AvatarURL
	}
	if update.Skills != nil {
		merged.Skills = dedupeSkills(*update.Skills)
	}
	merged.UpdatedAt = now
	return merged
}

func addSkill(current *entity.User, skill string, now time.Time) *entity.User {
	for _, s := range current.Skills {
		if s == skill {
			return current
		}
	}
	next := current.Clone()
	next.Skills = append(next.Skills, skill)
	next.UpdatedAt = now
	return next
}

func removeSkill(current *entity.User, skill string, now time.Time) *entity.User {
	idx := -1
	for i, s := range current.Skills {
		if s == skill {
			idx = i
			break
		}
	}
	if idx == -1 {
		return current
	}
	next := current.Clone()
	next.Skills = append(next.Skills[:idx], next.Skills[idx+1:]...)
	next.UpdatedAt = now
	return next
}

// dedupeSkills drops duplicate values, keeping first occurrence order.
// Distinctness is case-sensitive.
func dedupeSkills(skills []string) []string {
	seen := make(map[string]struct{}, len(skills))
	result := make([]string, 0, len(skills))
	for _, s := range skills {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		result = append(result, s)
	}
	return result
}
