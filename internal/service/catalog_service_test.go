package service

import (
	"context"
	"testing"

	"hackteam-be/internal/dto"
	"hackteam-be/internal/repository/unitofwork"
	"hackteam-be/internal/seed"
	"hackteam-be/internal/store/chat"
	"hackteam-be/internal/store/session"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedFactory() unitofwork.RepositoryFactory {
	return unitofwork.NewSeedRepositoryFactory(seed.Hackathons(), seed.Teammates())
}

func TestHackathonServiceList(t *testing.T) {
	svc := NewHackathonService(seedFactory())
	ctx := context.Background()

	all, err := svc.List(ctx, dto.HackathonFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 6)

	online, err := svc.List(ctx, dto.HackathonFilter{Type: "online"})
	require.NoError(t, err)
	assert.Len(t, online, 3)

	searched, err := svc.List(ctx, dto.HackathonFilter{Search: "fintech"})
	require.NoError(t, err)
	require.Len(t, searched, 1)
	assert.Equal(t, "FinTech Frenzy", searched[0].Name)

	combined, err := svc.List(ctx, dto.HackathonFilter{Search: "hackathon", Type: "offline"})
	require.NoError(t, err)
	require.Len(t, combined, 1)
	assert.Equal(t, "Campus Builders Weekend", combined[0].Name)
}

func TestTeamFinderServiceList(t *testing.T) {
	svc := NewTeamFinderService(seedFactory())
	ctx := context.Background()

	// Emma Wilson is seeded with LookingForTeam=false and must never be
	// listed, filtered or not.
	all, err := svc.List(ctx, dto.TeammateFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 5)
	for _, tm := range all {
		assert.True(t, tm.LookingForTeam)
		assert.NotEqual(t, "Emma Wilson", tm.Name)
	}

	bySkill, err := svc.List(ctx, dto.TeammateFilter{Skill: "PostgreSQL"})
	require.NoError(t, err)
	assert.Len(t, bySkill, 2)

	// Emma's Python would match, but she is not looking for a team.
	python, err := svc.List(ctx, dto.TeammateFilter{Skill: "Python"})
	require.NoError(t, err)
	require.Len(t, python, 1)
	assert.Equal(t, "Sarah Chen", python[0].Name)

	searched, err := svc.List(ctx, dto.TeammateFilter{Search: "designer"})
	require.NoError(t, err)
	require.Len(t, searched, 1)
	assert.Equal(t, "Priya Patel", searched[0].Name)

	skills, err := svc.Skills(ctx)
	require.NoError(t, err)
	assert.Contains(t, skills, "Go")
	assert.Contains(t, skills, "Figma")
	assert.Len(t, skills, 15)
}

func TestChatServiceSendMessage(t *testing.T) {
	sessions, err := session.New(newFakeRecords(), nil, nopLogger{})
	require.NoError(t, err)
	chats := chat.New(seed.Conversations(), seed.Messages(), nil, nopLogger{})
	svc := NewChatService(chats, sessions, nil, nopLogger{})
	ctx := context.Background()

	// No session yet: sending must fail before touching the log.
	_, err = svc.SendMessage(ctx, seed.ConversationTechInnovatorsId, &dto.SendMessageRequest{Text: "hi"})
	assert.ErrorIs(t, err, session.ErrNoActiveSession)

	user, err := sessions.Login("jamie@example.com")
	require.NoError(t, err)

	res, err := svc.SendMessage(ctx, seed.ConversationTechInnovatorsId, &dto.SendMessageRequest{Text: "hi team"})
	require.NoError(t, err)
	assert.Equal(t, user.Id, res.SenderId)
	assert.Equal(t, user.Name, res.SenderName)
	assert.Equal(t, "hi team", res.Text)

	_, err = svc.SendMessage(ctx, uuid.New(), &dto.SendMessageRequest{Text: "lost"})
	assert.ErrorIs(t, err, chat.ErrConversationNotFound)

	messages, err := svc.Messages(ctx, seed.ConversationTechInnovatorsId)
	require.NoError(t, err)
	assert.Equal(t, "hi team", messages[len(messages)-1].Text)

	conversations, err := svc.Conversations(ctx)
	require.NoError(t, err)
	require.Len(t, conversations, 2)
	assert.Equal(t, "hi team", conversations[0].LastMessage)
}
