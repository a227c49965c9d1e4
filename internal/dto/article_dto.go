package dto

import (
	"time"

	"github.com/google/uuid"
)

type UpsertArticleRequest struct {
	Id       uuid.UUID `json:"-"`
	Title    string    `json:"title" validate:"required"`
	Content  string    `json:"content"`
	Category string    `json:"category"`
	Tags     []string  `json:"tags"`
	Status   string    `json:"status"`
	IsPublic bool      `json:"is_public"`
}

type ChangeArticleStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type ArticleResponse struct {
	Id        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Category  string     `json:"category"`
	Tags      []string   `json:"tags"`
	Status    string     `json:"status"`
	Views     int        `json:"views"`
	IsPublic  bool       `json:"is_public"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

type ListArticlesQuery struct {
	Search   string
	Category string
	Status   string
}
