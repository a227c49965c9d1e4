package entity

import (
	"time"

	"github.com/google/uuid"
)

type SenderType string

const (
	SenderTypeVisitor SenderType = "visitor"
	SenderTypeAgent   SenderType = "agent"
)

func (t SenderType) Valid() bool {
	return t == SenderTypeVisitor || t == SenderTypeAgent
}

// ChatMessage rows are append-only per session.
type ChatMessage struct {
	Id         uuid.UUID
	SessionId  uuid.UUID
	SenderType SenderType
	SenderName string
	Message    string
	IsRead     bool
	CreatedAt  time.Time
}
