package model

import (
	"time"

	"github.com/google/uuid"
)

type Contact struct {
	Id         uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FirstName  string     `gorm:"type:varchar(255);not null"`
	LastName   string     `gorm:"type:varchar(255);not null"`
	Email      string     `gorm:"type:varchar(255)"`
	Phone      string     `gorm:"type:varchar(64)"`
	JobTitle   string     `gorm:"type:varchar(255)"`
	CompanyId  *uuid.UUID `gorm:"type:uuid;index"`
	LeadStatus string     `gorm:"type:varchar(32);not null;default:'new';index"`
	LeadSource string     `gorm:"type:varchar(255)"`
	Notes      string     `gorm:"type:text"`
	CreatedBy  *uuid.UUID `gorm:"type:uuid"`
	CreatedAt  time.Time  `gorm:"autoCreateTime"`
	UpdatedAt  time.Time  `gorm:"autoUpdateTime"`

	Company *Company `gorm:"foreignKey:CompanyId"`
}

func (Contact) TableName() string {
	return "contacts"
}
