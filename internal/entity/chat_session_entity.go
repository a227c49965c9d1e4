package entity

import (
	"time"

	"github.com/google/uuid"
)

type ChatStatus string

const (
	ChatStatusWaiting ChatStatus = "waiting"
	ChatStatusActive  ChatStatus = "active"
	ChatStatusEnded   ChatStatus = "ended"
)

func (s ChatStatus) Valid() bool {
	switch s {
	case ChatStatusWaiting, ChatStatusActive, ChatStatusEnded:
		return true
	}
	return false
}

// CanTransitionTo enforces the one-way session lifecycle:
// waiting -> active -> ended, with ended terminal.
func (s ChatStatus) CanTransitionTo(next ChatStatus) bool {
	if s == ChatStatusEnded {
		return false
	}
	switch next {
	case ChatStatusActive:
		return s == ChatStatusWaiting
	case ChatStatusEnded:
		return s == ChatStatusWaiting || s == ChatStatusActive
	}
	return false
}

// VisitorInfo carries the browsing context captured when the widget opens.
type VisitorInfo struct {
	IpAddress string `json:"ip_address,omitempty"`
	UserAgent string `json:"user_agent,omitempty"`
	PageURL   string `json:"page_url,omitempty"`
	Referrer  string `json:"referrer,omitempty"`
}

type ChatSession struct {
	Id            uuid.UUID
	VisitorName   string
	VisitorEmail  string
	Status        ChatStatus
	StartedAt     time.Time
	EndedAt       *time.Time
	AssignedTo    *uuid.UUID
	LastMessage   string
	LastMessageAt *time.Time
	VisitorInfo   VisitorInfo
}
