package dto

import (
	"time"

	"github.com/google/uuid"
)

// StartChatRequest opens a session from the visitor widget. No auth.
type StartChatRequest struct {
	VisitorName  string `json:"visitor_name" validate:"required"`
	VisitorEmail string `json:"visitor_email" validate:"omitempty,email"`
	PageURL      string `json:"page_url"`
	Referrer     string `json:"referrer"`
}

type SendMessageRequest struct {
	Message string `json:"message" validate:"required"`
}

type ChatSessionResponse struct {
	Id            uuid.UUID  `json:"id"`
	VisitorName   string     `json:"visitor_name"`
	VisitorEmail  string     `json:"visitor_email"`
	Status        string     `json:"status"`
	StartedAt     time.Time  `json:"started_at"`
	EndedAt       *time.Time `json:"ended_at"`
	AssignedTo    *uuid.UUID `json:"assigned_to"`
	LastMessage   string     `json:"last_message"`
	LastMessageAt *time.Time `json:"last_message_at"`
}

type ChatMessageResponse struct {
	Id         uuid.UUID `json:"id"`
	SessionId  uuid.UUID `json:"session_id"`
	SenderType string    `json:"sender_type"`
	SenderName string    `json:"sender_name"`
	Message    string    `json:"message"`
	IsRead     bool      `json:"is_read"`
	CreatedAt  time.Time `json:"created_at"`
}

type ListSessionsQuery struct {
	Search string
	Status string
}
