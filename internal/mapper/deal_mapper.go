package mapper

import (
	"time"

	"crm-hub-be/internal/entity"
	"crm-hub-be/internal/model"
)

type DealMapper struct{}

func NewDealMapper() *DealMapper {
	return &DealMapper{}
}

func (m *DealMapper) ToEntity(d *model.Deal) *entity.Deal {
	if d == nil {
		return nil
	}

	var updatedAt *time.Time
	if !d.UpdatedAt.IsZero() {
		t := d.UpdatedAt
		updatedAt = &t
	}

	e := &entity.Deal{
		Id:          d.Id,
		Title:       d.Title,
		Amount:      d.Amount,
		Stage:       entity.DealStage(d.Stage),
		Probability: d.Probability,
		CloseDate:   d.CloseDate,
		ContactId:   d.ContactId,
		CompanyId:   d.CompanyId,
		AssignedTo:  d.AssignedTo,
		Description: d.Description,
		CreatedBy:   d.CreatedBy,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   updatedAt,
	}
	if d.Contact != nil {
		e.ContactName = d.Contact.FirstName + " " + d.Contact.LastName
	}
	if d.Company != nil {
		e.CompanyName = d.Company.Name
	}
	return e
}

func (m *DealMapper) ToModel(e *entity.Deal) *model.Deal {
	if e == nil {
		return nil
	}

	var updatedAt time.Time
	if e.UpdatedAt != nil {
		updatedAt = *e.UpdatedAt
	}

	return &model.Deal{
		Id:          e.Id,
		Title:       e.Title,
		Amount:      e.Amount,
		Stage:       string(e.Stage),
		Probability: e.Probability,
		CloseDate:   e.CloseDate,
		ContactId:   e.ContactId,
		CompanyId:   e.CompanyId,
		AssignedTo:  e.AssignedTo,
		Description: e.Description,
		CreatedBy:   e.CreatedBy,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *DealMapper) ToEntities(models []*model.Deal) []*entity.Deal {
	entities := make([]*entity.Deal, len(models))
	for i, d := range models {
		entities[i] = m.ToEntity(d)
	}
	return entities
}
