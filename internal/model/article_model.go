package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type KBArticle struct {
	Id        uuid.UUID                      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title     string                         `gorm:"type:varchar(255);not null"`
	Content   string                         `gorm:"type:text"`
	Category  string                         `gorm:"type:varchar(255);index"`
	Tags      datatypes.JSONSlice[string]    `gorm:"type:jsonb"`
	Status    string                         `gorm:"type:varchar(32);not null;default:'draft';index"`
	Views     int                            `gorm:"not null;default:0"`
	IsPublic  bool                           `gorm:"not null;default:true"`
	CreatedBy *uuid.UUID                     `gorm:"type:uuid"`
	CreatedAt time.Time                      `gorm:"autoCreateTime"`
	UpdatedAt time.Time                      `gorm:"autoUpdateTime"`
}

func (KBArticle) TableName() string {
	return "kb_articles"
}
