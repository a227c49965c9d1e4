package service

import (
	"context"
	"log"
	"time"

	"crm-hub-be/internal/dto"
	"crm-hub-be/internal/entity"
	"crm-hub-be/internal/listview"
	"crm-hub-be/internal/repository/specification"
	"crm-hub-be/internal/repository/unitofwork"
	"crm-hub-be/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ICompanyService interface {
	List(ctx context.Context, q *dto.ListCompaniesQuery) ([]dto.CompanyResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.CompanyResponse, error)
	Create(ctx context.Context, userId uuid.UUID, req *dto.UpsertCompanyRequest) (*dto.CompanyResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpsertCompanyRequest) (*dto.CompanyResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type companyService struct {
	uowFactory unitofwork.RepositoryFactory
	snapshots  *store.SnapshotStore[*entity.Company]
}

func NewCompanyService(uowFactory unitofwork.RepositoryFactory) ICompanyService {
	return &companyService{
		uowFactory: uowFactory,
		snapshots:  store.NewSnapshotStore[*entity.Company](),
	}
}

// Companies are a lookup list, so they sort by name rather than recency.
var companyOrder = specification.OrderBy{Field: "name", Desc: false}

func companyToResponse(c *entity.Company) dto.CompanyResponse {
	return dto.CompanyResponse{
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
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func (s *companyService) load(ctx context.Context) ([]*entity.Company, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	seq := s.snapshots.Begin()
	companies, err := uow.CompanyRepository().FindAll(ctx, companyOrder)
	if err != nil {
		s.snapshots.Fail(seq)
		return nil, err
	}
	s.snapshots.Apply(seq, companies)
	return companies, nil
}

func (s *companyService) refresh(ctx context.Context) {
	if _, err := s.load(ctx); err != nil {
		log.Printf("[WARN] Company snapshot refresh failed: %v", err)
	}
}

func (s *companyService) List(ctx context.Context, q *dto.ListCompaniesQuery) ([]dto.CompanyResponse, error) {
	companies, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	visible := listview.Visible(companies, q.Search, listview.CompanySearchFields,
		listview.CompanyIndustryFacet(q.Industry),
		listview.CompanySizeFacet(q.Size),
	)

	result := make([]dto.CompanyResponse, 0, len(visible))
	for _, c := range visible {
		result = append(result, companyToResponse(c))
	}
	return result, nil
}

func (s *companyService) Show(ctx context.Context, id uuid.UUID) (*dto.CompanyResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	company, err := uow.CompanyRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "company not found")
	}
	res := companyToResponse(company)
	return &res, nil
}

func buildCompany(req *dto.UpsertCompanyRequest) *entity.Company {
	return &entity.Company{
		Name:        req.Name,
		Domain:      req.Domain,
		Industry:    req.Industry,
		Size:        req.Size,
		Phone:       req.Phone,
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
		Country:     req.Country,
		PostalCode:  req.PostalCode,
		Description: req.Description,
	}
}

func (s *companyService) Create(ctx context.Context, userId uuid.UUID, req *dto.UpsertCompanyRequest) (*dto.CompanyResponse, error) {
	company := buildCompany(req)
	company.Id = uuid.New()
	company.CreatedBy = &userId
	company.CreatedAt = time.Now()

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.CompanyRepository().Create(ctx, company); err != nil {
		return nil, err
	}

	s.refresh(ctx)
	res := companyToResponse(company)
	return &res, nil
}

func (s *companyService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpsertCompanyRequest) (*dto.CompanyResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.CompanyRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "company not found")
	}

	now := time.Now()
	company := buildCompany(req)
	company.Id = existing.Id
	company.CreatedBy = existing.CreatedBy
	company.CreatedAt = existing.CreatedAt
	company.UpdatedAt = &now

	if err := uow.CompanyRepository().Update(ctx, company); err != nil {
		return nil, err
	}

	s.refresh(ctx)
	res := companyToResponse(company)
	return &res, nil
}

func (s *companyService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.CompanyRepository().Delete(ctx, id); err != nil {
		return err
	}
	s.refresh(ctx)
	return nil
}
