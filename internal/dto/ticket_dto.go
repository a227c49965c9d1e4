package dto

import (
	"time"

	"github.com/google/uuid"
)

type UpsertTicketRequest struct {
	Id          uuid.UUID `json:"-"`
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	Category    string    `json:"category"`
	ContactId   string    `json:"contact_id"` // "", "none", or a uuid
}

type ChangeTicketStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type TicketResponse struct {
	Id          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	Category    string     `json:"category"`
	ContactId   *uuid.UUID `json:"contact_id"`
	ContactName string     `json:"contact_name,omitempty"`
	AssignedTo  *uuid.UUID `json:"assigned_to"`
	ResolvedAt  *time.Time `json:"resolved_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

type ListTicketsQuery struct {
	Search   string
	Status   string
	Priority string
}
