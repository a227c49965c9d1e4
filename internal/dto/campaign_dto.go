package dto

import (
	"time"

	"github.com/google/uuid"
)

type UpsertCampaignRequest struct {
	Id      uuid.UUID `json:"-"`
	Name    string    `json:"name" validate:"required"`
	Subject string    `json:"subject" validate:"required"`
	Content string    `json:"content"`
	Status  string    `json:"status"`
}

type CampaignResponse struct {
	Id              uuid.UUID  `json:"id"`
	Name            string     `json:"name"`
	Subject         string     `json:"subject"`
	Content         string     `json:"content"`
	Status          string     `json:"status"`
	SentAt          *time.Time `json:"sent_at"`
	RecipientsCount int        `json:"recipients_count"`
	OpensCount      int        `json:"opens_count"`
	ClicksCount     int        `json:"clicks_count"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at"`
}

type ListCampaignsQuery struct {
	Search string
	Status string
}
