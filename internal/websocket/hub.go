package websocket

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"crm-hub-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Hub fans chat snapshots out to connected agents. Payloads are full
// snapshots, never deltas; a client that misses one just renders the next.
type Hub struct {
	// Registered clients map: UserID -> List of Clients (multi-device)
	clients map[uuid.UUID][]*Client

	// Register requests from the clients.
	register chan *Client

	// Unregister requests from clients.
	unregister chan *Client

	// Lock for safe map access
	mu sync.RWMutex

	// Redis connection for cross-instance communication
	rdb *redis.Client

	// Dedicated Logger
	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[uuid.UUID][]*Client),
		rdb:        rdb,
		logger:     log,
	}
}

func (h *Hub) Run() {
	// Start Redis Subscriber if Redis is available
	if h.rdb != nil {
		go h.subscribeToRedis()
	}

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.UserID] = append(h.clients[client.UserID], client)
			h.mu.Unlock()
			h.logger.Info("Hub", "Agent connected", map[string]interface{}{"user_id": client.UserID})

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.UserID]; ok {
				for i, c := range clients {
					if c == client {
						h.clients[client.UserID] = append(clients[:i], clients[i+1:]...)
						close(client.Send)
						break
					}
				}
				if len(h.clients[client.UserID]) == 0 {
					delete(h.clients, client.UserID)
					h.logger.Info("Hub", "Agent fully disconnected", map[string]interface{}{"user_id": client.UserID})
				}
			}
			h.mu.Unlock()
		}
	}
}

// drop queues a slow client for removal. Run owns closing the Send
// channel, and the handoff goes through a goroutine because the caller
// may still hold the read lock the unregister handler needs.
func (h *Hub) drop(client *Client) {
	go func() { h.unregister <- client }()
}

func envelope(messageType string, data interface{}) []byte {
	payload, _ := json.Marshal(map[string]interface{}{
		"type": messageType,
		"data": data,
	})
	return payload
}

// Broadcast sends a snapshot to ALL connected agents.
func (h *Hub) Broadcast(messageType string, data interface{}) {
	payload := envelope(messageType, data)

	h.mu.RLock()
	for _, clients := range h.clients {
		for _, client := range clients {
			select {
			case client.Send <- payload:
			default:
				h.drop(client)
			}
		}
	}
	h.mu.RUnlock()

	// Mirror to Redis for other instances
	if h.rdb != nil {
		wrapped, _ := json.Marshal(map[string]interface{}{
			"target_user_id": "*", // Wildcard for broadcast
			"message":        json.RawMessage(payload),
		})
		h.rdb.Publish(context.Background(), "cluster_events", wrapped)
	}
}

// Send delivers a snapshot to every connection of one agent.
func (h *Hub) Send(userID uuid.UUID, messageType string, data interface{}) {
	payload := envelope(messageType, data)

	h.mu.RLock()
	clients, localFound := h.clients[userID]
	h.mu.RUnlock()

	if localFound {
		for _, client := range clients {
			select {
			case client.Send <- payload:
			default:
				h.logger.Warn("Hub", "Client Send buffer full, dropping message", map[string]interface{}{"user_id": userID})
				h.drop(client)
			}
		}
	}

	// Always publish for multi-instance and multi-device delivery
	if h.rdb != nil {
		wrapped, _ := json.Marshal(map[string]interface{}{
			"target_user_id": userID.String(),
			"message":        json.RawMessage(payload),
		})
		h.rdb.Publish(context.Background(), "cluster_events", wrapped)
	}
}

// SelectedSessions returns the distinct session ids the connected agents
// are currently viewing. The synchronizer refetches messages for these.
func (h *Hub) SelectedSessions() []uuid.UUID {
	h.mu.RLock()
	defer h.mu.RUnlock()

	seen := make(map[uuid.UUID]struct{})
	out := make([]uuid.UUID, 0)
	for _, clients := range h.clients {
		for _, client := range clients {
			if id, ok := client.Selected(); ok {
				if _, dup := seen[id]; !dup {
					seen[id] = struct{}{}
					out = append(out, id)
				}
			}
		}
	}
	return out
}

// SendToSelected delivers a snapshot to every client currently viewing
// the given session.
func (h *Hub) SendToSelected(sessionID uuid.UUID, messageType string, data interface{}) {
	payload := envelope(messageType, data)

	h.mu.RLock()
	for _, clients := range h.clients {
		for _, client := range clients {
			if id, ok := client.Selected(); !ok || id != sessionID {
				continue
			}
			select {
			case client.Send <- payload:
			default:
				h.drop(client)
			}
		}
	}
	h.mu.RUnlock()
}

func (h *Hub) subscribeToRedis() {
	// Every instance subscribes to "cluster_events"; messages carry the
	// target user id and are filtered against the local client map.
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, "cluster_events")
	defer pubsub.Close()

	ch := pubsub.Channel()

	for msg := range ch {
		var payload struct {
			TargetUserID string          `json:"target_user_id"`
			Message      json.RawMessage `json:"message"`
		}
		if err := json.Unmarshal([]byte(msg.Payload), &payload); err != nil {
			log.Printf("Redis msg parse error: %v", err)
			continue
		}

		if payload.TargetUserID == "*" {
			h.mu.RLock()
			for _, clients := range h.clients {
				for _, client := range clients {
					select {
					case client.Send <- payload.Message:
					default:
						h.drop(client)
					}
				}
			}
			h.mu.RUnlock()
			continue
		}

		uid, err := uuid.Parse(payload.TargetUserID)
		if err != nil {
			continue
		}

		h.mu.RLock()
		clients, ok := h.clients[uid]
		h.mu.RUnlock()

		if ok {
			for _, client := range clients {
				select {
				case client.Send <- payload.Message:
				default:
					h.drop(client)
				}
			}
		}
	}
}
