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

type ITicketService interface {
	List(ctx context.Context, q *dto.ListTicketsQuery) ([]dto.TicketResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.TicketResponse, error)
	Create(ctx context.Context, userId uuid.UUID, req *dto.UpsertTicketRequest) (*dto.TicketResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpsertTicketRequest) (*dto.TicketResponse, error)
	ChangeStatus(ctx context.Context, id uuid.UUID, req *dto.ChangeTicketStatusRequest) (*dto.TicketResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ticketService struct {
	uowFactory unitofwork.RepositoryFactory
	snapshots  *store.SnapshotStore[*entity.Ticket]
}

func NewTicketService(uowFactory unitofwork.RepositoryFactory) ITicketService {
	return &ticketService{
		uowFactory: uowFactory,
		snapshots:  store.NewSnapshotStore[*entity.Ticket](),
	}
}

var ticketOrder = specification.OrderBy{Field: "created_at", Desc: true}

func ticketToResponse(t *entity.Ticket) dto.TicketResponse {
	contactName := ""
	if t.ContactFirstName != "" || t.ContactLastName != "" {
		contactName = t.ContactFirstName + " " + t.ContactLastName
	}
	return dto.TicketResponse{
		Id:          t.Id,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		Priority:    string(t.Priority),
		Category:    t.Category,
		ContactId:   t.ContactId,
		ContactName: contactName,
		AssignedTo:  t.AssignedTo,
		ResolvedAt:  t.ResolvedAt,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func (s *ticketService) load(ctx context.Context) ([]*entity.Ticket, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	seq := s.snapshots.Begin()
	tickets, err := uow.TicketRepository().FindAll(ctx, ticketOrder)
	if err != nil {
		s.snapshots.Fail(seq)
		return nil, err
	}
	s.snapshots.Apply(seq, tickets)
	return tickets, nil
}

func (s *ticketService) refresh(ctx context.Context) {
	if _, err := s.load(ctx); err != nil {
		log.Printf("[WARN] Ticket snapshot refresh failed: %v", err)
	}
}

func (s *ticketService) List(ctx context.Context, q *dto.ListTicketsQuery) ([]dto.TicketResponse, error) {
	tickets, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	visible := listview.Visible(tickets, q.Search, listview.TicketSearchFields,
		listview.TicketStatusFacet(q.Status),
		listview.TicketPriorityFacet(q.Priority),
	)

	result := make([]dto.TicketResponse, 0, len(visible))
	for _, t := range visible {
		result = append(result, ticketToResponse(t))
	}
	return result, nil
}

func (s *ticketService) Show(ctx context.Context, id uuid.UUID) (*dto.TicketResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	ticket, err := uow.TicketRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "ticket not found")
	}
	res := ticketToResponse(ticket)
	return &res, nil
}

func buildTicket(req *dto.UpsertTicketRequest) (*entity.Ticket, error) {
	contactId, err := serverutils.NullableUUID(req.ContactId)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "invalid contact reference")
	}

	status := entity.TicketStatus(req.Status)
	if req.Status == "" {
		status = entity.TicketStatusOpen
	} else if !status.Valid() {
		return nil, fiber.NewError(fiber.StatusBadRequest, "invalid ticket status")
	}

	priority := entity.TicketPriority(req.Priority)
	if req.Priority == "" {
		priority = entity.TicketPriorityMedium
	} else if !priority.Valid() {
		return nil, fiber.NewError(fiber.StatusBadRequest, "invalid ticket priority")
	}

	return &entity.Ticket{
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
		Priority:    priority,
		Category:    req.Category,
		ContactId:   contactId,
	}, nil
}

func (s *ticketService) Create(ctx context.Context, userId uuid.UUID, req *dto.UpsertTicketRequest) (*dto.TicketResponse, error) {
	ticket, err := buildTicket(req)
	if err != nil {
		return nil, err
	}
	ticket.Id = uuid.New()
	ticket.CreatedBy = &userId
	ticket.AssignedTo = &userId
	ticket.CreatedAt = time.Now()

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.TicketRepository().Create(ctx, ticket); err != nil {
		return nil, err
	}

	s.refresh(ctx)
	res := ticketToResponse(ticket)
	return &res, nil
}

func (s *ticketService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpsertTicketRequest) (*dto.TicketResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.TicketRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "ticket not found")
	}

	now := time.Now()
	ticket, err := buildTicket(req)
	if err != nil {
		return nil, err
	}
	ticket.Id = existing.Id
	ticket.CreatedBy = existing.CreatedBy
	ticket.AssignedTo = existing.AssignedTo
	ticket.ResolvedAt = existing.ResolvedAt
	ticket.CreatedAt = existing.CreatedAt
	ticket.UpdatedAt = &now

	if ticket.Status == entity.TicketStatusResolved && ticket.ResolvedAt == nil {
		ticket.ResolvedAt = &now
	}

	if err := uow.TicketRepository().Update(ctx, ticket); err != nil {
		return nil, err
	}

	s.refresh(ctx)
	res := ticketToResponse(ticket)
	return &res, nil
}

// ChangeStatus rewrites just the status, stamping resolved_at the first
// time a ticket reaches resolved.
func (s *ticketService) ChangeStatus(ctx context.Context, id uuid.UUID, req *dto.ChangeTicketStatusRequest) (*dto.TicketResponse, error) {
	status := entity.TicketStatus(req.Status)
	if !status.Valid() {
		return nil, fiber.NewError(fiber.StatusBadRequest, "invalid ticket status")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	ticket, err := uow.TicketRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "ticket not found")
	}

	now := time.Now()
	ticket.Status = status
	ticket.UpdatedAt = &now
	if status == entity.TicketStatusResolved && ticket.ResolvedAt == nil {
		ticket.ResolvedAt = &now
	}

	if err := uow.TicketRepository().Update(ctx, ticket); err != nil {
		return nil, err
	}

	s.refresh(ctx)
	res := ticketToResponse(ticket)
	return &res, nil
}

func (s *ticketService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.TicketRepository().Delete(ctx, id); err != nil {
		return err
	}
	s.refresh(ctx)
	return nil
}
