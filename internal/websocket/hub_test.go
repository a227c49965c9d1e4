package websocket

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func (h *Hub) hasClient(userID uuid.UUID) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, ok := h.clients[userID]
	return ok
}

func TestHubBroadcastReachesConnectedClient(t *testing.T) {
	h := NewHub(nil, nopLogger{})
	go h.Run()

	client := &Client{Hub: h, UserID: uuid.New(), Send: make(chan []byte, 4)}
	h.register <- client

	assert.Eventually(t, func() bool {
		return h.hasClient(client.UserID)
	}, time.Second, 5*time.Millisecond)

	h.Broadcast("sessions_snapshot", []string{"s1"})

	select {
	case payload := <-client.Send:
		assert.Contains(t, string(payload), "sessions_snapshot")
	case <-time.After(time.Second):
		t.Fatal("expected a broadcast payload")
	}
	assert.True(t, h.hasClient(client.UserID))
}

func TestHubDropsSlowClientExactlyOnce(t *testing.T) {
	h := NewHub(nil, nopLogger{})
	go h.Run()

	// No buffer and no reader, so every delivery attempt hits the slow path.
	client := &Client{Hub: h, UserID: uuid.New(), Send: make(chan []byte)}
	h.register <- client

	assert.Eventually(t, func() bool {
		return h.hasClient(client.UserID)
	}, time.Second, 5*time.Millisecond)

	// Back-to-back snapshots can both flag the same client for removal
	// before the removal lands. Only the first removal may close Send.
	h.Broadcast("sessions_snapshot", []string{"s1"})
	h.Broadcast("sessions_snapshot", []string{"s2"})

	assert.Eventually(t, func() bool {
		return !h.hasClient(client.UserID)
	}, time.Second, 5*time.Millisecond)

	select {
	case _, open := <-client.Send:
		assert.False(t, open)
	case <-time.After(time.Second):
		t.Fatal("expected the send channel to be closed")
	}
}
