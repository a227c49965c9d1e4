package dto

import (
	"time"

	"github.com/google/uuid"
)

// UpsertContactRequest carries the full form state. Create and edit share
// the same shape; edit routes the id from the path.
type UpsertContactRequest struct {
	Id         uuid.UUID `json:"-"`
	FirstName  string    `json:"first_name" validate:"required"`
	LastName   string    `json:"last_name" validate:"required"`
	Email      string    `json:"email" validate:"omitempty,email"`
	Phone      string    `json:"phone"`
	JobTitle   string    `json:"job_title"`
	CompanyId  string    `json:"company_id"` // "", "none", or a uuid
	LeadStatus string    `json:"lead_status"`
	LeadSource string    `json:"lead_source"`
	Notes      string    `json:"notes"`
}

type ContactResponse struct {
	Id          uuid.UUID  `json:"id"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone"`
	JobTitle    string     `json:"job_title"`
	CompanyId   *uuid.UUID `json:"company_id"`
	CompanyName string     `json:"company_name,omitempty"`
	LeadStatus  string     `json:"lead_status"`
	LeadSource  string     `json:"lead_source"`
	Notes       string     `json:"notes"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

type ListContactsQuery struct {
	Search     string
	LeadStatus string
}
