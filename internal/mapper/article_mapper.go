package mapper

import (
	"time"

	"crm-hub-be/internal/entity"
	"crm-hub-be/internal/model"

	"gorm.io/datatypes"
)

type ArticleMapper struct{}

func NewArticleMapper() *ArticleMapper {
	return &ArticleMapper{}
}

func (m *ArticleMapper) ToEntity(a *model.KBArticle) *entity.KBArticle {
	if a == nil {
		return nil
	}

	var updatedAt *time.Time
	if !a.UpdatedAt.IsZero() {
		t := a.UpdatedAt
		updatedAt = &t
	}

	tags := make([]string, len(a.Tags))
	copy(tags, a.Tags)

	return &entity.KBArticle{
		Id:        a.Id,
		Title:     a.Title,
		Content:   a.Content,
		Category:  a.Category,
		Tags:      tags,
		Status:    entity.ArticleStatus(a.Status),
		Views:     a.Views,
		IsPublic:  a.IsPublic,
		CreatedBy: a.CreatedBy,
		CreatedAt: a.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *ArticleMapper) ToModel(e *entity.KBArticle) *model.KBArticle {
	if e == nil {
		return nil
	}

	var updatedAt time.Time
	if e.UpdatedAt != nil {
		updatedAt = *e.UpdatedAt
	}

	return &model.KBArticle{
		Id:        e.Id,
		Title:     e.Title,
		Content:   e.Content,
		Category:  e.Category,
		Tags:      datatypes.NewJSONSlice(e.Tags),
		Status:    string(e.Status),
		Views:     e.Views,
		IsPublic:  e.IsPublic,
		CreatedBy: e.CreatedBy,
		CreatedAt: e.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *ArticleMapper) ToEntities(models []*model.KBArticle) []*entity.KBArticle {
	entities := make([]*entity.KBArticle, len(models))
	for i, a := range models {
		entities[i] = m.ToEntity(a)
	}
	return entities
}
