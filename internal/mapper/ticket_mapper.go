package mapper

import (
	"time"

	"crm-hub-be/internal/entity"
	"crm-hub-be/internal/model"
)

type TicketMapper struct{}

func NewTicketMapper() *TicketMapper {
	return &TicketMapper{}
}

func (m *TicketMapper) ToEntity(t *model.Ticket) *entity.Ticket {
	if t == nil {
		return nil
	}

	var updatedAt *time.Time
	if !t.UpdatedAt.IsZero() {
		u := t.UpdatedAt
		updatedAt = &u
	}

	e := &entity.Ticket{
		Id:          t.Id,
		Title:       t.Title,
		Description: t.Description,
		Status:      entity.TicketStatus(t.Status),
		Priority:    entity.TicketPriority(t.Priority),
		Category:    t.Category,
		ContactId:   t.ContactId,
		AssignedTo:  t.AssignedTo,
		CreatedBy:   t.CreatedBy,
		ResolvedAt:  t.ResolvedAt,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   updatedAt,
	}
	if t.Contact != nil {
		e.ContactFirstName = t.Contact.FirstName
		e.ContactLastName = t.Contact.LastName
	}
	return e
}

func (m *TicketMapper) ToModel(e *entity.Ticket) *model.Ticket {
	if e == nil {
		return nil
	}

	var updatedAt time.Time
	if e.UpdatedAt != nil {
		updatedAt = *e.UpdatedAt
	}

	return &model.Ticket{
		Id:          e.Id,
		Title:       e.Title,
		Description: e.Description,
		Status:      string(e.Status),
		Priority:    string(e.Priority),
		Category:    e.Category,
		ContactId:   e.ContactId,
		AssignedTo:  e.AssignedTo,
		CreatedBy:   e.CreatedBy,
		ResolvedAt:  e.ResolvedAt,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *TicketMapper) ToEntities(models []*model.Ticket) []*entity.Ticket {
	entities := make([]*entity.Ticket, len(models))
	for i, t := range models {
		entities[i] = m.ToEntity(t)
	}
	return entities
}
