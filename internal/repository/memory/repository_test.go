package memory

import (
	"context"
	"testing"
	"time"

	"hackteam-be/internal/repository/specification"
	"hackteam-be/internal/seed"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHackathonRepositoryFilters(t *testing.T) {
	repo := NewHackathonRepository(seed.Hackathons())
	ctx := context.Background()

	t.Run("all", func(t *testing.T) {
		all, err := repo.FindAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 6)
	})

	t.Run("by type", func(t *testing.T) {
		online, err := repo.FindAll(ctx, specification.ByHackathonType{Type: "online"})
		require.NoError(t, err)
		assert.Len(t, online, 3)
		for _, h := range online {
			assert.Equal(t, "online", string(h.Type))
		}
	})

	t.Run("search is case-insensitive over name and description", func(t *testing.T) {
		byName, err := repo.FindAll(ctx, specification.HackathonSearch{Term: "fintech"})
		require.NoError(t, err)
		require.Len(t, byName, 1)
		assert.Equal(t, "FinTech Frenzy", byName[0].Name)

		byDescription, err := repo.FindAll(ctx, specification.HackathonSearch{Term: "datasets"})
		require.NoError(t, err)
		require.Len(t, byDescription, 1)
		assert.Equal(t, "Open Data Challenge", byDescription[0].Name)
	})

	t.Run("search and type combined", func(t *testing.T) {
		matched, err := repo.FindAll(ctx,
			specification.HackathonSearch{Term: "hackathon"},
			specification.ByHackathonType{Type: "offline"},
		)
		require.NoError(t, err)
		require.Len(t, matched, 1)
		assert.Equal(t, "Campus Builders Weekend", matched[0].Name)
	})

	t.Run("find by id", func(t *testing.T) {
		want := seed.Hackathons()[0]
		got, err := repo.FindById(ctx, want.Id)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, want.Name, got.Name)

		missing, err := repo.FindById(ctx, uuid.New())
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("count", func(t *testing.T) {
		count, err := repo.Count(ctx, specification.ByHackathonType{Type: "offline"})
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})
}

func TestTeammateRepositoryFilters(t *testing.T) {
	repo := NewTeammateRepository(seed.Teammates())
	ctx := context.Background()

	t.Run("all", func(t *testing.T) {
		all, err := repo.FindAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 6)
	})

	t.Run("looking for team", func(t *testing.T) {
		open, err := repo.FindAll(ctx, specification.LookingForTeam{})
		require.NoError(t, err)
		assert.Len(t, open, 5)
		for _, tm := range open {
			assert.True(t, tm.LookingForTeam)
		}
	})

	t.Run("has skill is exact", func(t *testing.T) {
		pg, err := repo.FindAll(ctx, specification.HasSkill{Skill: "PostgreSQL"})
		require.NoError(t, err)
		assert.Len(t, pg, 2)

		none, err := repo.FindAll(ctx, specification.HasSkill{Skill: "postgresql"})
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("search over name and bio", func(t *testing.T) {
		byName, err := repo.FindAll(ctx, specification.TeammateSearch{Term: "sarah"})
		require.NoError(t, err)
		require.Len(t, byName, 1)
		assert.Equal(t, "Sarah Chen", byName[0].Name)

		byBio, err := repo.FindAll(ctx, specification.TeammateSearch{Term: "designer"})
		require.NoError(t, err)
		require.Len(t, byBio, 1)
		assert.Equal(t, "Priya Patel", byBio[0].Name)
	})

	t.Run("distinct skills keeps first occurrence order", func(t *testing.T) {
		skills, err := repo.DistinctSkills(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{
			"React", "Node.js", "PostgreSQL",
			"Python", "TensorFlow", "FastAPI",
			"Go", "Kubernetes",
			"Figma", "CSS",
			"Flutter", "Firebase", "Kotlin",
			"Pandas", "SQL",
		}, skills)
	})

	t.Run("results are copies", func(t *testing.T) {
		first, err := repo.FindAll(ctx)
		require.NoError(t, err)
		first[0].Skills[0] = "mutated"

		again, err := repo.FindAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, "React", again[0].Skills[0])
	})
}

func TestTokenRepository(t *testing.T) {
	repo := NewTokenRepository(time.Hour)
	id := uuid.New()

	repo.Save("tok", id)
	got, found := repo.Get("tok")
	assert.True(t, found)
	assert.Equal(t, id, got)

	repo.Delete("tok")
	_, found = repo.Get("tok")
	assert.False(t, found)

	repo.Save("a", id)
	repo.Save("b", id)
	repo.Flush()
	_, found = repo.Get("a")
	assert.False(t, found)
	_, found = repo.Get("b")
	assert.False(t, found)
}
