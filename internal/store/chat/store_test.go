package chat

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"hackteam-be/internal/entity"
	"hackteam-be/internal/seed"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func newSeededStore() *Store {
	return New(seed.Conversations(), seed.Messages(), nil, nopLogger{})
}

func TestConversationsKeepInsertionOrder(t *testing.T) {
	store := newSeededStore()

	conversations := store.Conversations()
	require.Len(t, conversations, 2)
	assert.Equal(t, "Tech Innovators", conversations[0].Name)
	assert.Equal(t, "Code Warriors", conversations[1].Name)

	// Sending to the second conversation must not move it to the front.
	_, err := store.SendMessage(seed.ConversationCodeWarriorsId, uuid.New(), "Jamie", "hello")
	require.NoError(t, err)

	conversations = store.Conversations()
	assert.Equal(t, "Tech Innovators", conversations[0].Name)
	assert.Equal(t, "Code Warriors", conversations[1].Name)
}

func TestSendMessageAppendsAndUpdatesSummary(t *testing.T) {
	store := newSeededStore()

	before, err := store.Messages(seed.ConversationTechInnovatorsId)
	require.NoError(t, err)

	msg, err := store.SendMessage(seed.ConversationTechInnovatorsId, uuid.New(), "Jamie", "Count me in!")
	require.NoError(t, err)
	assert.Equal(t, "Count me in!", msg.Text)
	assert.Equal(t, "Jamie", msg.SenderName)

	after, err := store.Messages(seed.ConversationTechInnovatorsId)
	require.NoError(t, err)
	require.Len(t, after, len(before)+1)
	assert.Equal(t, msg.Id, after[len(after)-1].Id)

	conv, err := store.Conversation(seed.ConversationTechInnovatorsId)
	require.NoError(t, err)
	assert.Equal(t, "Count me in!", conv.LastMessage)
	assert.Equal(t, msg.SentAt, conv.LastActivity)
}

func TestSendMessageUnknownConversation(t *testing.T) {
	store := newSeededStore()
	unknown := uuid.New()

	_, err := store.SendMessage(unknown, uuid.New(), "Jamie", "anyone here?")
	assert.ErrorIs(t, err, ErrConversationNotFound)

	// The message must not be recorded anywhere.
	_, err = store.Messages(unknown)
	assert.ErrorIs(t, err, ErrConversationNotFound)
}

func TestMessagesEmptyLogForKnownConversation(t *testing.T) {
	conv := &entity.Conversation{
		Id:   uuid.New(),
		Name: "Quiet Room",
	}
	store := New([]*entity.Conversation{conv}, nil, nil, nopLogger{})

	messages, err := store.Messages(conv.Id)
	require.NoError(t, err)
	assert.Empty(t, messages)
}

func TestSeedingDropsOrphanLogs(t *testing.T) {
	conv := &entity.Conversation{Id: uuid.New(), Name: "Known"}
	orphanId := uuid.New()
	logs := map[uuid.UUID][]*entity.Message{
		orphanId: {{Id: uuid.New(), ConversationId: orphanId, Text: "lost"}},
	}

	store := New([]*entity.Conversation{conv}, logs, nil, nopLogger{})

	_, err := store.Messages(orphanId)
	assert.ErrorIs(t, err, ErrConversationNotFound)
}

func TestMessagesAreCopies(t *testing.T) {
	store := newSeededStore()

	first, err := store.Messages(seed.ConversationTechInnovatorsId)
	require.NoError(t, err)
	first[0].Text = "mutated"

	again, err := store.Messages(seed.ConversationTechInnovatorsId)
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", again[0].Text)
}

func TestUpdatePublishedWithMessageAndSummary(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NewStdLogger(false, false))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	messages, err := pubSub.Subscribe(ctx, TopicUpdates)
	require.NoError(t, err)

	store := New(seed.Conversations(), seed.Messages(), pubSub, nopLogger{})

	sent, err := store.SendMessage(seed.ConversationCodeWarriorsId, uuid.New(), "Jamie", "on my way")
	require.NoError(t, err)

	select {
	case msg := <-messages:
		var update Update
		require.NoError(t, json.Unmarshal(msg.Payload, &update))
		assert.Equal(t, "message_sent", update.Type)
		require.NotNil(t, update.Message)
		require.NotNil(t, update.Conversation)
		assert.Equal(t, sent.Id, update.Message.Id)
		assert.Equal(t, "on my way", update.Conversation.LastMessage)
		msg.Ack()
	case <-time.After(2 * time.Second):
		t.Fatal("expected a chat update to be published")
	}
}
