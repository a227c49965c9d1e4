package mapper

import (
	"time"

	"crm-hub-be/internal/entity"
	"crm-hub-be/internal/model"
)

type ContactMapper struct{}

func NewContactMapper() *ContactMapper {
	return &ContactMapper{}
}

func (m *ContactMapper) ToEntity(c *model.Contact) *entity.Contact {
	if c == nil {
		return nil
	}

	var updatedAt *time.Time
	if !c.UpdatedAt.IsZero() {
		t := c.UpdatedAt
		updatedAt = &t
	}

	e := &entity.Contact{
		Id:         c.Id,
		FirstName:  c.FirstName,
		LastName:   c.LastName,
		Email:      c.Email,
		Phone:      c.Phone,
		JobTitle:   c.JobTitle,
		CompanyId:  c.CompanyId,
		LeadStatus: entity.LeadStatus(c.LeadStatus),
		LeadSource: c.LeadSource,
		Notes:      c.Notes,
		CreatedBy:  c.CreatedBy,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  updatedAt,
	}
	if c.Company != nil {
		e.CompanyName = c.Company.Name
	}
	return e
}

func (m *ContactMapper) ToModel(e *entity.Contact) *model.Contact {
	if e == nil {
		return nil
	}

	var updatedAt time.Time
	if e.UpdatedAt != nil {
		updatedAt = *e.UpdatedAt
	}

	return &model.Contact{
		Id:         e.Id,
		FirstName:  e.FirstName,
		LastName:   e.LastName,
		Email:      e.Email,
		Phone:      e.Phone,
		JobTitle:   e.JobTitle,
		CompanyId:  e.CompanyId,
		LeadStatus: string(e.LeadStatus),
		LeadSource: e.LeadSource,
		Notes:      e.Notes,
		CreatedBy:  e.CreatedBy,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  updatedAt,
	}
}

func (m *ContactMapper) ToEntities(models []*model.Contact) []*entity.Contact {
	entities := make([]*entity.Contact, len(models))
	for i, c := range models {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
