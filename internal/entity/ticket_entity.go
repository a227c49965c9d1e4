package entity

import (
	"time"

	"github.com/google/uuid"
)

type TicketStatus string
type TicketPriority string

const (
	TicketStatusOpen       TicketStatus = "open"
	TicketStatusInProgress TicketStatus = "in_progress"
	TicketStatusResolved   TicketStatus = "resolved"
	TicketStatusClosed     TicketStatus = "closed"

	TicketPriorityLow    TicketPriority = "low"
	TicketPriorityMedium TicketPriority = "medium"
	TicketPriorityHigh   TicketPriority = "high"
	TicketPriorityUrgent TicketPriority = "urgent"
)

func (s TicketStatus) Valid() bool {
	switch s {
	case TicketStatusOpen, TicketStatusInProgress, TicketStatusResolved, TicketStatusClosed:
		return true
	}
	return false
}

func (p TicketPriority) Valid() bool {
	switch p {
	case TicketPriorityLow, TicketPriorityMedium, TicketPriorityHigh, TicketPriorityUrgent:
		return true
	}
	return false
}

type Ticket struct {
	Id          uuid.UUID
	Title       string
	Description string
	Status      TicketStatus
	Priority    TicketPriority
	Category    string
	ContactId   *uuid.UUID
	AssignedTo  *uuid.UUID
	CreatedBy   *uuid.UUID
	ResolvedAt  *time.Time
	CreatedAt   time.Time
	UpdatedAt   *time.Time

	// Joined contact display fields, populated on list reads only.
	ContactFirstName string
	ContactLastName  string
}
