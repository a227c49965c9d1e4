package entity

import (
	"time"

	"github.com/google/uuid"
)

type CampaignStatus string

const (
	CampaignStatusDraft     CampaignStatus = "draft"
	CampaignStatusScheduled CampaignStatus = "scheduled"
	CampaignStatusSent      CampaignStatus = "sent"
	CampaignStatusPaused    CampaignStatus = "paused"
)

func (s CampaignStatus) Valid() bool {
	switch s {
	case CampaignStatusDraft, CampaignStatusScheduled, CampaignStatusSent, CampaignStatusPaused:
		return true
	}
	return false
}

// EmailCampaign counters are monotonic once the campaign is sent.
type EmailCampaign struct {
	Id              uuid.UUID
	Name            string
	Subject         string
	Content         string
	Status          CampaignStatus
	SentAt          *time.Time
	RecipientsCount int
	OpensCount      int
	ClicksCount     int
	CreatedBy       *uuid.UUID
	CreatedAt       time.Time
	UpdatedAt       *time.Time
}
