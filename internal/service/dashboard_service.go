package service

import (
	"context"
	"time"

	"crm-hub-be/internal/dto"
	"crm-hub-be/internal/entity"
	"crm-hub-be/internal/repository/memory"
	"crm-hub-be/internal/repository/specification"
	"crm-hub-be/internal/repository/unitofwork"
)

type IDashboardService interface {
	Summary(ctx context.Context) (*dto.DashboardResponse, error)
	Invalidate()
}

type dashboardService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *memory.DashboardCache
}

func NewDashboardService(uowFactory unitofwork.RepositoryFactory, cache *memory.DashboardCache) IDashboardService {
	return &dashboardService{
		uowFactory: uowFactory,
		cache:      cache,
	}
}

const recentLimit = 5

// Summary serves the cached snapshot when fresh, otherwise rebuilds it
// from the stores. Staleness within the cache TTL is acceptable here.
func (s *dashboardService) Summary(ctx context.Context) (*dto.DashboardResponse, error) {
	if summary, found := s.cache.Get(); found {
		return summaryToResponse(summary), nil
	}

	summary, err := s.build(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Save(summary)

	return summaryToResponse(summary), nil
}

func (s *dashboardService) Invalidate() {
	s.cache.Invalidate()
}

func (s *dashboardService) build(ctx context.Context) (*entity.DashboardSummary, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	contactCount, err := uow.ContactRepository().Count(ctx)
	if err != nil {
		return nil, err
	}
	companyCount, err := uow.CompanyRepository().Count(ctx)
	if err != nil {
		return nil, err
	}
	dealCount, err := uow.DealRepository().Count(ctx)
	if err != nil {
		return nil, err
	}
	ticketCount, err := uow.TicketRepository().Count(ctx)
	if err != nil {
		return nil, err
	}
	openTickets, err := uow.TicketRepository().Count(ctx, specification.Filter("status", string(entity.TicketStatusOpen)))
	if err != nil {
		return nil, err
	}
	activeChats, err := uow.ChatSessionRepository().Count(ctx, specification.Filter("status", string(entity.ChatStatusActive)))
	if err != nil {
		return nil, err
	}

	deals, err := uow.DealRepository().FindAll(ctx, dealOrder)
	if err != nil {
		return nil, err
	}

	recentContacts, err := uow.ContactRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: recentLimit},
	)
	if err != nil {
		return nil, err
	}

	recentDeals := deals
	if len(recentDeals) > recentLimit {
		recentDeals = recentDeals[:recentLimit]
	}

	return &entity.DashboardSummary{
		ContactCount:   contactCount,
		CompanyCount:   companyCount,
		DealCount:      dealCount,
		TicketCount:    ticketCount,
		OpenTickets:    openTickets,
		ActiveChats:    activeChats,
		Pipeline:       BuildPipeline(deals),
		RecentContacts: recentContacts,
		RecentDeals:    recentDeals,
		GeneratedAt:    time.Now(),
	}, nil
}

func summaryToResponse(s *entity.DashboardSummary) *dto.DashboardResponse {
	pipeline := make([]dto.PipelineBucketResponse, 0, len(s.Pipeline))
	for _, b := range s.Pipeline {
		pipeline = append(pipeline, dto.PipelineBucketResponse{
			Stage:       string(b.Stage),
			Count:       b.Count,
			TotalAmount: b.TotalAmount,
		})
	}

	contacts := make([]dto.ContactResponse, 0, len(s.RecentContacts))
	for _, c := range s.RecentContacts {
		contacts = append(contacts, contactToResponse(c))
	}

	deals := make([]dto.DealResponse, 0, len(s.RecentDeals))
	for _, d := range s.RecentDeals {
		deals = append(deals, dealToResponse(d))
	}

	return &dto.DashboardResponse{
		ContactCount:   s.ContactCount,
		CompanyCount:   s.CompanyCount,
		DealCount:      s.DealCount,
		TicketCount:    s.TicketCount,
		OpenTickets:    s.OpenTickets,
		ActiveChats:    s.ActiveChats,
		Pipeline:       pipeline,
		RecentContacts: contacts,
		RecentDeals:    deals,
		GeneratedAt:    s.GeneratedAt,
	}
}
