package model

import (
	"time"

	"github.com/google/uuid"
)

type EmailCampaign struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name            string    `gorm:"type:varchar(255);not null"`
	Subject         string    `gorm:"type:varchar(255);not null"`
	Content         string    `gorm:"type:text"`
	Status          string    `gorm:"type:varchar(32);not null;default:'draft';index"`
	SentAt          *time.Time
	RecipientsCount int        `gorm:"not null;default:0"`
	OpensCount      int        `gorm:"not null;default:0"`
	ClicksCount     int        `gorm:"not null;default:0"`
	CreatedBy       *uuid.UUID `gorm:"type:uuid"`
	CreatedAt       time.Time  `gorm:"autoCreateTime"`
	UpdatedAt       time.Time  `gorm:"autoUpdateTime"`
}

func (EmailCampaign) TableName() string {
	return "email_campaigns"
}
