package model

import (
	"time"

	"github.com/google/uuid"
)

type Ticket struct {
	Id          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title       string     `gorm:"type:varchar(255);not null"`
	Description string     `gorm:"type:text"`
	Status      string     `gorm:"type:varchar(32);not null;default:'open';index"`
	Priority    string     `gorm:"type:varchar(32);not null;default:'medium';index"`
	Category    string     `gorm:"type:varchar(255)"`
	ContactId   *uuid.UUID `gorm:"type:uuid;index"`
	AssignedTo  *uuid.UUID `gorm:"type:uuid"`
	CreatedBy   *uuid.UUID `gorm:"type:uuid"`
	ResolvedAt  *time.Time
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`

	Contact *Contact `gorm:"foreignKey:ContactId"`
}

func (Ticket) TableName() string {
	return "tickets"
}
