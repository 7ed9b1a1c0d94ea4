package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"voicemart-be/internal/pkg/logger"

	"github.com/redis/go-redis/v9"
)

const clusterChannel = "voicemart_session_events"

// Hub fans session state updates out to the display clients watching a
// voice call. Connections are keyed by session id; one session may have
// several watchers (agent dashboard plus customer screen).
type Hub struct {
	clients map[string][]*Client

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	// Optional Redis connection for cross-instance fanout.
	rdb *redis.Client

	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[string][]*Client),
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
			h.clients[client.SessionId] = append(h.clients[client.SessionId], client)
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"session_id": client.SessionId})

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.SessionId]; ok {
				for i, c := range clients {
					if c == client {
						h.clients[client.SessionId] = append(clients[:i], clients[i+1:]...)
						close(client.Send)
						break
					}
				}
				if len(h.clients[client.SessionId]) == 0 {
					delete(h.clients, client.SessionId)
					h.logger.Info("Hub", "Session has no more watchers", map[string]interface{}{"session_id": client.SessionId})
				}
			}
			h.mu.Unlock()
		}
	}
}

// BroadcastState pushes a state event to every watcher of a session,
// then publishes it to Redis so other instances can deliver it to
// watchers connected there.
func (h *Hub) BroadcastState(sessionId string, event string, payload interface{}) {
	data, err := json.Marshal(map[string]interface{}{
		"type": event,
		"data": payload,
	})
	if err != nil {
		h.logger.Error("Hub", "Failed to serialize state event", map[string]interface{}{
			"session_id": sessionId,
			"event":      event,
			"error":      err.Error(),
		})
		return
	}

	h.deliverLocal(sessionId, data)

	if h.rdb != nil {
		envelope, _ := json.Marshal(map[string]interface{}{
			"session_id": sessionId,
			"message":    data,
		})
		h.rdb.Publish(context.Background(), clusterChannel, envelope)
	}
}

func (h *Hub) deliverLocal(sessionId string, data []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients := h.clients[sessionId]
	kept := clients[:0]
	for _, client := range clients {
		select {
		case client.Send <- data:
			kept = append(kept, client)
		default:
			h.logger.Warn("Hub", "Client send buffer full, dropping connection", map[string]interface{}{
				"session_id": sessionId,
			})
			// Removing the client here means the unregister branch will not
			// find it, so Send is closed exactly once.
			close(client.Send)
		}
	}
	if len(kept) == 0 {
		delete(h.clients, sessionId)
	} else {
		h.clients[sessionId] = kept
	}
}

func (h *Hub) subscribeToRedis() {
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, clusterChannel)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		var envelope struct {
			SessionId string          `json:"session_id"`
			Message   json.RawMessage `json:"message"`
		}
		if err := json.Unmarshal([]byte(msg.Payload), &envelope); err != nil {
			h.logger.Warn("Hub", "Failed to parse cluster event", map[string]interface{}{"error": err.Error()})
			continue
		}
		h.deliverLocal(envelope.SessionId, envelope.Message)
	}
}
