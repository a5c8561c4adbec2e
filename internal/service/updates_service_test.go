package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"hackteam-be/internal/store/chat"
	"hackteam-be/internal/store/session"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureDelivery struct {
	ch chan []byte
}

func (d *captureDelivery) Broadcast(payload []byte) {
	d.ch <- payload
}

func TestUpdatesServiceForwardsStoreUpdates(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NewStdLogger(false, false))
	delivery := &captureDelivery{ch: make(chan []byte, 4)}
	svc := NewUpdatesService(pubSub, nil, delivery, nopLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, svc.Start(ctx))

	payload := []byte(`{"type":"session_started"}`)
	msg := message.NewMessage(watermill.NewUUID(), payload)
	require.NoError(t, pubSub.Publish(session.TopicUpdates, msg))

	select {
	case framed := <-delivery.ch:
		var env envelope
		require.NoError(t, json.Unmarshal(framed, &env))
		assert.Equal(t, session.TopicUpdates, env.Topic)
		// The store's payload must arrive byte-for-byte inside the frame.
		assert.JSONEq(t, string(payload), string(env.Payload))
	case <-time.After(2 * time.Second):
		t.Fatal("expected the session update to reach the delivery")
	}

	chatPayload := []byte(`{"type":"message_sent"}`)
	require.NoError(t, pubSub.Publish(chat.TopicUpdates, message.NewMessage(watermill.NewUUID(), chatPayload)))

	select {
	case framed := <-delivery.ch:
		var env envelope
		require.NoError(t, json.Unmarshal(framed, &env))
		assert.Equal(t, chat.TopicUpdates, env.Topic)
		assert.JSONEq(t, string(chatPayload), string(env.Payload))
	case <-time.After(2 * time.Second):
		t.Fatal("expected the chat update to reach the delivery")
	}
}
