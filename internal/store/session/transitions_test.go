package session

import (
	"testing"
	"time"

	"hackteam-be/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestDedupeSkills(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "no duplicates",
			in:   []string{"Go", "React"},
			want: []string{"Go", "React"},
		},
		{
			name: "duplicate keeps first occurrence",
			in:   []string{"Go", "React", "Go"},
			want: []string{"Go", "React"},
		},
		{
			name: "case sensitive",
			in:   []string{"go", "Go"},
			want: []string{"go", "Go"},
		},
		{
			name: "empty",
			in:   []string{},
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dedupeSkills(tt.in))
		})
	}
}

func TestNewUserFromSignup(t *testing.T) {
	now := time.Now()
	hash := "bcrypt-hash"
	user := newUserFromSignup(SignupInput{
		Name:   "Jamie",
		Email:  "jamie@example.com",
		Bio:    "Builder",
		Skills: []string{"Go", "Go", "React"},
	}, &hash, now)

	assert.NotEqual(t, "", user.Id.String())
	assert.Equal(t, "Jamie", user.Name)
	assert.Equal(t, "jamie@example.com", user.Email)
	assert.Equal(t, []string{"Go", "React"}, user.Skills)
	assert.Equal(t, entity.DefaultAvatarURL, user.AvatarURL)
	assert.True(t, user.LookingForTeam)
	assert.Equal(t, now, user.CreatedAt)
	assert.Equal(t, now, user.UpdatedAt)
	if assert.NotNil(t, user.PasswordHash) {
		assert.Equal(t, hash, *user.PasswordHash)
	}
}

func TestDemoUser(t *testing.T) {
	now := time.Now()
	user := demoUser("someone@example.com", now)

	assert.Equal(t, "Demo User", user.Name)
	assert.Equal(t, "someone@example.com", user.Email)
	assert.Equal(t, "Software developer", user.Bio)
	assert.Equal(t, []string{"React", "Node.js"}, user.Skills)
	assert.Equal(t, entity.DefaultAvatarURL, user.AvatarURL)
	assert.True(t, user.LookingForTeam)
	assert.Nil(t, user.PasswordHash)
}

func TestMergeProfile(t *testing.T) {
	now := time.Now()
	current := demoUser("a@example.com", now.Add(-time.Hour))

	newName := "New Name"
	newSkills := []string{"Rust", "Rust", "Go"}
	merged := mergeProfile(current, ProfileUpdate{
		Name:   &newName,
		Skills: &newSkills,
	}, now)

	assert.Equal(t, "New Name", merged.Name)
	assert.Equal(t, []string{"Rust", "Go"}, merged.Skills)
	// untouched fields carry over
	assert.Equal(t, current.Email, merged.Email)
	assert.Equal(t, current.Bio, merged.Bio)
	assert.Equal(t, current.Id, merged.Id)
	assert.Equal(t, now, merged.UpdatedAt)

	// original not mutated
	assert.Equal(t, "Demo User", current.Name)
}

func TestAddSkill(t *testing.T) {
	now := time.Now()
	current := demoUser("a@example.com", now)

	next := addSkill(current, "Go", now)
	assert.Equal(t, []string{"React", "Node.js", "Go"}, next.Skills)
	assert.NotSame(t, current, next)

	// exact duplicate is a no-op and returns the same state
	same := addSkill(next, "Go", now)
	assert.Same(t, next, same)

	// different case is a different skill
	cased := addSkill(next, "go", now)
	assert.Equal(t, []string{"React", "Node.js", "Go", "go"}, cased.Skills)
}

func TestRemoveSkill(t *testing.T) {
	now := time.Now()
	current := demoUser("a@example.com", now)

	next := removeSkill(current, "React", now)
	assert.Equal(t, []string{"Node.js"}, next.Skills)

	// absent value is a no-op and returns the same state
	same := removeSkill(next, "React", now)
	assert.Same(t, next, same)

	// original not mutated
	assert.Equal(t, []string{"React", "Node.js"}, current.Skills)
}
