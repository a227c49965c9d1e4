package model

import (
	"time"

	"github.com/google/uuid"
)

type Company struct {
	Id          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string     `gorm:"type:varchar(255);not null"`
	Domain      string     `gorm:"type:varchar(255)"`
	Industry    string     `gorm:"type:varchar(255);index"`
	Size        string     `gorm:"type:varchar(64)"`
	Phone       string     `gorm:"type:varchar(64)"`
	Address     string     `gorm:"type:varchar(255)"`
	City        string     `gorm:"type:varchar(255)"`
	State       string     `gorm:"type:varchar(255)"`
	Country     string     `gorm:"type:varchar(255)"`
	PostalCode  string     `gorm:"type:varchar(32)"`
	Description string     `gorm:"type:text"`
	CreatedBy   *uuid.UUID `gorm:"type:uuid"`
	CreatedAt   time.Time  `gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime"`
}

func (Company) TableName() string {
	return "companies"
}
