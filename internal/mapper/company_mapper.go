package mapper

import (
	"time"

	"crm-hub-be/internal/entity"
	"crm-hub-be/internal/model"
)

type CompanyMapper struct{}

func NewCompanyMapper() *CompanyMapper {
	return &CompanyMapper{}
}

func (m *CompanyMapper) ToEntity(c *model.Company) *entity.Company {
	if c == nil {
		return nil
	}

	var updatedAt *time.Time
	if !c.UpdatedAt.IsZero() {
		t := c.UpdatedAt
		updatedAt = &t
	}

	return &entity.Company{
		Id:          c.Id,
		Name:        c.Name,
		Domain:      c.Domain,
		Industry:    c.Industry,
		Size:        c.Size,
		Phone:       c.Phone,
		Address:     c.Address,
		City:        c.City,
		State:       c.State,
		Country:     c.Country,
		PostalCode:  c.PostalCode,
		Description: c.Description,
		CreatedBy:   c.CreatedBy,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *CompanyMapper) ToModel(e *entity.Company) *model.Company {
	if e == nil {
		return nil
	}

	var updatedAt time.Time
	if e.UpdatedAt != nil {
		updatedAt = *e.UpdatedAt
	}

	return &model.Company{
		Id:          e.Id,
		Name:        e.Name,
		Domain:      e.Domain,
		Industry:    e.Industry,
		Size:        e.Size,
		Phone:       e.Phone,
		Address:     e.Address,
		City:        e.City,
		State:       e.State,
		Country:     e.Country,
		PostalCode:  e.PostalCode,
		Description: e.Description,
		CreatedBy:   e.CreatedBy,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *CompanyMapper) ToEntities(models []*model.Company) []*entity.Company {
	entities := make([]*entity.Company, len(models))
	for i, c := range models {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
