package dto

import (
	"time"

	"github.com/google/uuid"
)

type UpsertDealRequest struct {
	Id          uuid.UUID  `json:"-"`
	Title       string     `json:"title" validate:"required"`
	Amount      string     `json:"amount"` // numeric form string, "" means blank
	Stage       string     `json:"stage"`
	Probability int        `json:"probability" validate:"min=0,max=100"`
	CloseDate   *time.Time `json:"close_date"`
	ContactId   string     `json:"contact_id"` // "", "none", or a uuid
	CompanyId   string     `json:"company_id"`
	Description string     `json:"description"`
}

type ChangeDealStageRequest struct {
	Stage string `json:"stage" validate:"required"`
}

type DealResponse struct {
	Id          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Amount      *float64   `json:"amount"`
	Stage       string     `json:"stage"`
	Probability int        `json:"probability"`
	CloseDate   *time.Time `json:"close_date"`
	ContactId   *uuid.UUID `json:"contact_id"`
	ContactName string     `json:"contact_name,omitempty"`
	CompanyId   *uuid.UUID `json:"company_id"`
	CompanyName string     `json:"company_name,omitempty"`
	AssignedTo  *uuid.UUID `json:"assigned_to"`
	Description string     `json:"description"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

type ListDealsQuery struct {
	Search string
	Stage  string
}

type PipelineBucketResponse struct {
	Stage       string  `json:"stage"`
	Count       int     `json:"count"`
	TotalAmount float64 `json:"total_amount"`
}
