package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BySessionID filters chat messages by their parent session
type BySessionID struct {
	SessionID uuid.UUID
}

func (s BySessionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("session_id = ?", s.SessionID)
}

// BySenderType filters chat messages by sender side (visitor/agent)
type BySenderType struct {
	SenderType string
}

func (s BySenderType) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("sender_type = ?", s.SenderType)
}

// Unread filters messages not yet marked read
type Unread struct{}

func (s Unread) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_read = false")
}
