package events

import (
	"time"

	"github.com/google/uuid"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "CHAT_MESSAGE_SENT").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent helps embed common logic if needed,
// strictly creating valid implementations is preferred though.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// Change operations mirrored from the row-level write that produced them.
const (
	OpInsert = "insert"
	OpUpdate = "update"
	OpDelete = "delete"
)

// ChangeEvent announces a committed row-level write on one table. Consumers
// treat it purely as an invalidation signal and refetch; the payload is
// never merged into local state.
type ChangeEvent struct {
	Table      string    `json:"table"`
	Op         string    `json:"op"`
	RowID      uuid.UUID `json:"row_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewChangeEvent(table, op string, rowID uuid.UUID) ChangeEvent {
	return ChangeEvent{
		Table:      table,
		Op:         op,
		RowID:      rowID,
		OccurredAt: time.Now(),
	}
}

func (e ChangeEvent) EventType() string {
	return "TABLE_CHANGED"
}

func (e ChangeEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"table":  e.Table,
		"op":     e.Op,
		"row_id": e.RowID.String(),
	}
}

func (e ChangeEvent) Timestamp() time.Time {
	return e.OccurredAt
}
