package model

import (
	"time"

	"github.com/google/uuid"
)

type Deal struct {
	Id          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title       string     `gorm:"type:varchar(255);not null"`
	Amount      *float64   `gorm:"type:numeric(14,2)"`
	Stage       string     `gorm:"type:varchar(32);not null;default:'prospecting';index"`
	Probability int        `gorm:"not null;default:0"`
	CloseDate   *time.Time `gorm:"type:date"`
	ContactId   *uuid.UUID `gorm:"type:uuid;index"`
	CompanyId   *uuid.UUID `gorm:"type:uuid;index"`
	AssignedTo  *uuid.UUID `gorm:"type:uuid"`
	Description string     `gorm:"type:text"`
	CreatedBy   *uuid.UUID `gorm:"type:uuid"`
	CreatedAt   time.Time  `gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime"`

	Contact *Contact `gorm:"foreignKey:ContactId"`
	Company *Company `gorm:"foreignKey:CompanyId"`
}

func (Deal) TableName() string {
	return "deals"
}
