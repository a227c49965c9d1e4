package service

import (
	"context"
	"log"
	"time"

	"crm-hub-be/internal/dto"
	"crm-hub-be/internal/entity"
	"crm-hub-be/internal/listview"
	"crm-hub-be/internal/pkg/serverutils"
	"crm-hub-be/internal/repository/specification"
	"crm-hub-be/internal/repository/unitofwork"
	"crm-hub-be/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IContactService interface {
	List(ctx context.Context, q *dto.ListContactsQuery) ([]dto.ContactResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.ContactResponse, error)
	Create(ctx context.Context, userId uuid.UUID, req *dto.UpsertContactRequest) (*dto.ContactResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpsertContactRequest) (*dto.ContactResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type contactService struct {
	uowFactory unitofwork.RepositoryFactory
	snapshots  *store.SnapshotStore[*entity.Contact]
}

func NewContactService(uowFactory unitofwork.RepositoryFactory) IContactService {
	return &contactService{
		uowFactory: uowFactory,
		snapshots:  store.NewSnapshotStore[*entity.Contact](),
	}
}

var contactOrder = specification.OrderBy{Field: "created_at", Desc: true}

func contactToResponse(c *entity.Contact) dto.ContactResponse {
	return dto.ContactResponse{
		Id:          c.Id,
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		Email:       c.Email,
		Phone:       c.Phone,
		JobTitle:    c.JobTitle,
		CompanyId:   c.CompanyId,
		CompanyName: c.CompanyName,
		LeadStatus:  string(c.LeadStatus),
		LeadSource:  c.LeadSource,
		Notes:       c.Notes,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// load refetches the full collection and installs it as the new snapshot.
// A failed load keeps the prior snapshot so the page degrades to stale.
func (s *contactService) load(ctx context.Context) ([]*entity.Contact, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	seq := s.snapshots.Begin()
	contacts, err := uow.ContactRepository().FindAll(ctx, contactOrder)
	if err != nil {
		s.snapshots.Fail(seq)
		return nil, err
	}
	s.snapshots.Apply(seq, contacts)
	return contacts, nil
}

// refresh reloads the snapshot after a write. The write already landed,
// so a failed reload only leaves the snapshot stale until the next read.
func (s *contactService) refresh(ctx context.Context) {
	if _, err := s.load(ctx); err != nil {
		log.Printf("[WARN] Contact snapshot refresh failed: %v", err)
	}
}

func (s *contactService) List(ctx context.Context, q *dto.ListContactsQuery) ([]dto.ContactResponse, error) {
	contacts, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	visible := listview.Visible(contacts, q.Search, listview.ContactSearchFields,
		listview.ContactStatusFacet(q.LeadStatus),
	)

	result := make([]dto.ContactResponse, 0, len(visible))
	for _, c := range visible {
		result = append(result, contactToResponse(c))
	}
	return result, nil
}

func (s *contactService) Show(ctx context.Context, id uuid.UUID) (*dto.ContactResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	contact, err := uow.ContactRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "contact not found")
	}
	res := contactToResponse(contact)
	return &res, nil
}

func (s *contactService) buildContact(req *dto.UpsertContactRequest) (*entity.Contact, error) {
	companyId, err := serverutils.NullableUUID(req.CompanyId)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "invalid company reference")
	}

	status := entity.LeadStatus(req.LeadStatus)
	if req.LeadStatus == "" {
		status = entity.LeadStatusNew
	} else if !status.Valid() {
		return nil, fiber.NewError(fiber.StatusBadRequest, "invalid lead status")
	}

	return &entity.Contact{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Phone:      req.Phone,
		JobTitle:   req.JobTitle,
		CompanyId:  companyId,
		LeadStatus: status,
		LeadSource: req.LeadSource,
		Notes:      req.Notes,
	}, nil
}

func (s *contactService) Create(ctx context.Context, userId uuid.UUID, req *dto.UpsertContactRequest) (*dto.ContactResponse, error) {
	contact, err := s.buildContact(req)
	if err != nil {
		return nil, err
	}
	contact.Id = uuid.New()
	contact.CreatedBy = &userId
	contact.CreatedAt = time.Now()

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ContactRepository().Create(ctx, contact); err != nil {
		return nil, err
	}

	s.refresh(ctx)
	res := contactToResponse(contact)
	return &res, nil
}

func (s *contactService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpsertContactRequest) (*dto.ContactResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.ContactRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "contact not found")
	}

	contact, err := s.buildContact(req)
	if err != nil {
		return nil, err
	}

	// Full-row upsert: the form always submits the complete state.
	now := time.Now()
	contact.Id = existing.Id
	contact.CreatedBy = existing.CreatedBy
	contact.CreatedAt = existing.CreatedAt
	contact.UpdatedAt = &now

	if err := uow.ContactRepository().Update(ctx, contact); err != nil {
		return nil, err
	}

	s.refresh(ctx)
	res := contactToResponse(contact)
	return &res, nil
}

func (s *contactService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ContactRepository().Delete(ctx, id); err != nil {
		return err
	}
	s.refresh(ctx)
	return nil
}
