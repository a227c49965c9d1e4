package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ChatSession struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	VisitorName   string    `gorm:"type:varchar(255);not null"`
	VisitorEmail  string    `gorm:"type:varchar(255)"`
	Status        string    `gorm:"type:varchar(32);not null;default:'waiting';index"`
	StartedAt     time.Time `gorm:"autoCreateTime"`
	EndedAt       *time.Time
	AssignedTo    *uuid.UUID     `gorm:"type:uuid"`
	LastMessage   string         `gorm:"type:text"`
	LastMessageAt *time.Time     `gorm:"index"`
	VisitorInfo   datatypes.JSON `gorm:"type:jsonb"`
}

func (ChatSession) TableName() string {
	return "chat_sessions"
}
