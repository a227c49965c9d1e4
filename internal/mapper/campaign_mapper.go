package mapper

import (
	"time"

	"crm-hub-be/internal/entity"
	"crm-hub-be/internal/model"
)

type CampaignMapper struct{}

func NewCampaignMapper() *CampaignMapper {
	return &CampaignMapper{}
}

func (m *CampaignMapper) ToEntity(c *model.EmailCampaign) *entity.EmailCampaign {
	if c == nil {
		return nil
	}

	var updatedAt *time.Time
	if !c.UpdatedAt.IsZero() {
		t := c.UpdatedAt
		updatedAt = &t
	}

	return &entity.EmailCampaign{
		Id:              c.Id,
		Name:            c.Name,
		Subject:         c.Subject,
		Content:         c.Content,
		Status:          entity.CampaignStatus(c.Status),
		SentAt:          c.SentAt,
		RecipientsCount: c.RecipientsCount,
		OpensCount:      c.OpensCount,
		ClicksCount:     c.ClicksCount,
		CreatedBy:       c.CreatedBy,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       updatedAt,
	}
}

func (m *CampaignMapper) ToModel(e *entity.EmailCampaign) *model.EmailCampaign {
	if e == nil {
		return nil
	}

	var updatedAt time.Time
	if e.UpdatedAt != nil {
		updatedAt = *e.UpdatedAt
	}

	return &model.EmailCampaign{
		Id:              e.Id,
		Name:            e.Name,
		Subject:         e.Subject,
		Content:         e.Content,
		Status:          string(e.Status),
		SentAt:          e.SentAt,
		RecipientsCount: e.RecipientsCount,
		OpensCount:      e.OpensCount,
		ClicksCount:     e.ClicksCount,
		CreatedBy:       e.CreatedBy,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       updatedAt,
	}
}

func (m *CampaignMapper) ToEntities(models []*model.EmailCampaign) []*entity.EmailCampaign {
	entities := make([]*entity.EmailCampaign, len(models))
	for i, c := range models {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
