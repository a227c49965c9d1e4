package entity

import (
	"time"

	"github.com/google/uuid"
)

type ArticleStatus string

const (
	ArticleStatusDraft     ArticleStatus = "draft"
	ArticleStatusPublished ArticleStatus = "published"
	ArticleStatusArchived  ArticleStatus = "archived"
)

func (s ArticleStatus) Valid() bool {
	switch s {
	case ArticleStatusDraft, ArticleStatusPublished, ArticleStatusArchived:
		return true
	}
	return false
}

type KBArticle struct {
	Id        uuid.UUID
	Title     string
	Content   string
	Category  string
	Tags      []string
	Status    ArticleStatus
	Views     int
	IsPublic  bool
	CreatedBy *uuid.UUID
	CreatedAt time.Time
	UpdatedAt *time.Time
}
