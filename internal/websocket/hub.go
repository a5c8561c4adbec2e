package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"hackteam-be/internal/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// Hub fans raw update payloads out to every connected client. The app runs
// with a single signed-in user, but that user may hold several connections
// (tabs, devices), so the hub keeps a flat client set.
type Hub struct {
	clients map[*Client]bool

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	// Redis connection for cross-instance fanout; nil when running standalone.
	rdb *redis.Client

	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
		rdb:        rdb,
		logger:     log,
	}
}

func (h *Hub) Run() {
	if h.rdb != nil {
		go h.subscribeToRedis()
	}

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"user_id": client.UserID})

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
				h.logger.Info("Hub", "Client unregistered", map[string]interface{}{"user_id": client.UserID})
			}
			h.mu.Unlock()
		}
	}
}

// Broadcast pushes an already-serialized update to every connected client
// and mirrors it to other instances via Redis when configured.
func (h *Hub) Broadcast(payload []byte) {
	h.sendLocal(payload)

	if h.rdb != nil {
		wrapped, _ := json.Marshal(map[string]interface{}{
			"message": json.RawMessage(payload),
		})
		h.rdb.Publish(context.Background(), "cluster_events", wrapped)
	}
}

func (h *Hub) sendLocal(payload []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.clients {
		select {
		case client.Send <- payload:
		default:
			// Slow consumer; drop the connection rather than block the hub.
			go func(c *Client) { h.unregister <- c }(client)
		}
	}
}

func (h *Hub) subscribeToRedis() {
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, "cluster_events")
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		var payload struct {
			Message json.RawMessage `json:"message"`
		}
		if err := json.Unmarshal([]byte(msg.Payload), &payload); err != nil {
			h.logger.Warn("Hub", "Failed to parse cluster event", map[string]interface{}{"error": err.Error()})
			continue
		}
		h.sendLocal(payload.Message)
	}
}
