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

type IDealService interface {
	List(ctx context.Context, q *dto.ListDealsQuery) ([]dto.DealResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.DealResponse, error)
	Create(ctx context.Context, userId uuid.UUID, req *dto.UpsertDealRequest) (*dto.DealResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpsertDealRequest) (*dto.DealResponse, error)
	ChangeStage(ctx context.Context, id uuid.UUID, req *dto.ChangeDealStageRequest) (*dto.DealResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Pipeline(ctx context.Context) ([]dto.PipelineBucketResponse, error)
}

type dealService struct {
	uowFactory unitofwork.RepositoryFactory
	snapshots  *store.SnapshotStore[*entity.Deal]
}

func NewDealService(uowFactory unitofwork.RepositoryFactory) IDealService {
	return &dealService{
		uowFactory: uowFactory,
		snapshots:  store.NewSnapshotStore[*entity.Deal](),
	}
}

var dealOrder = specification.OrderBy{Field: "created_at", Desc: true}

func dealToResponse(d *entity.Deal) dto.DealResponse {
	return dto.DealResponse{
		Id:          d.Id,
		Title:       d.Title,
		Amount:      d.Amount,
		Stage:       string(d.Stage),
		Probability: d.Probability,
		CloseDate:   d.CloseDate,
		ContactId:   d.ContactId,
		ContactName: d.ContactName,
		CompanyId:   d.CompanyId,
		CompanyName: d.CompanyName,
		AssignedTo:  d.AssignedTo,
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// BuildPipeline buckets deals by stage in display order, counting them
// and summing their amounts. Deals without an amount count but add zero.
func BuildPipeline(deals []*entity.Deal) []entity.PipelineBucket {
	buckets := make([]entity.PipelineBucket, 0, len(entity.DealStages))
	for _, stage := range entity.DealStages {
		bucket := entity.PipelineBucket{Stage: stage}
		for _, d := range deals {
			if d.Stage != stage {
				continue
			}
			bucket.Count++
			if d.Amount != nil {
				bucket.TotalAmount += *d.Amount
			}
		}
		buckets = append(buckets, bucket)
	}
	return buckets
}

func (s *dealService) load(ctx context.Context) ([]*entity.Deal, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	seq := s.snapshots.Begin()
	deals, err := uow.DealRepository().FindAll(ctx, dealOrder)
	if err != nil {
		s.snapshots.Fail(seq)
		return nil, err
	}
	s.snapshots.Apply(seq, deals)
	return deals, nil
}

func (s *dealService) refresh(ctx context.Context) {
	if _, err := s.load(ctx); err != nil {
		log.Printf("[WARN] Deal snapshot refresh failed: %v", err)
	}
}

func (s *dealService) List(ctx context.Context, q *dto.ListDealsQuery) ([]dto.DealResponse, error) {
	deals, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	visible := listview.Visible(deals, q.Search, listview.DealSearchFields,
		listview.DealStageFacet(q.Stage),
	)

	result := make([]dto.DealResponse, 0, len(visible))
	for _, d := range visible {
		result = append(result, dealToResponse(d))
	}
	return result, nil
}

func (s *dealService) Show(ctx context.Context, id uuid.UUID) (*dto.DealResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	deal, err := uow.DealRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if deal == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "deal not found")
	}
	res := dealToResponse(deal)
	return &res, nil
}

func buildDeal(req *dto.UpsertDealRequest) (*entity.Deal, error) {
	amount, err := serverutils.NullableAmount(req.Amount)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "invalid amount")
	}
	contactId, err := serverutils.NullableUUID(req.ContactId)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "invalid contact reference")
	}
	companyId, err := serverutils.NullableUUID(req.CompanyId)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "invalid company reference")
	}

	stage := entity.DealStage(req.Stage)
	if req.Stage == "" {
		stage = entity.DealStageProspecting
	} else if !stage.Valid() {
		return nil, fiber.NewError(fiber.StatusBadRequest, "invalid deal stage")
	}

	return &entity.Deal{
		Title:       req.Title,
		Amount:      amount,
		Stage:       stage,
		Probability: req.Probability,
		CloseDate:   req.CloseDate,
		ContactId:   contactId,
		CompanyId:   companyId,
		Description: req.Description,
	}, nil
}

func (s *dealService) Create(ctx context.Context, userId uuid.UUID, req *dto.UpsertDealRequest) (*dto.DealResponse, error) {
	deal, err := buildDeal(req)
	if err != nil {
		return nil, err
	}
	deal.Id = uuid.New()
	deal.CreatedBy = &userId
	deal.AssignedTo = &userId
	deal.CreatedAt = time.Now()

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.DealRepository().Create(ctx, deal); err != nil {
		return nil, err
	}

	s.refresh(ctx)
	res := dealToResponse(deal)
	return &res, nil
}

func (s *dealService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpsertDealRequest) (*dto.DealResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.DealRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "deal not found")
	}

	now := time.Now()
	deal, err := buildDeal(req)
	if err != nil {
		return nil, err
	}
	deal.Id = existing.Id
	deal.CreatedBy = existing.CreatedBy
	deal.AssignedTo = existing.AssignedTo
	deal.CreatedAt = existing.CreatedAt
	deal.UpdatedAt = &now

	if err := uow.DealRepository().Update(ctx, deal); err != nil {
		return nil, err
	}

	s.refresh(ctx)
	res := dealToResponse(deal)
	return &res, nil
}

// ChangeStage is a status-only mutation: it rewrites the stage and
// updated_at, leaving the rest of the row as stored.
func (s *dealService) ChangeStage(ctx context.Context, id uuid.UUID, req *dto.ChangeDealStageRequest) (*dto.DealResponse, error) {
	stage := entity.DealStage(req.Stage)
	if !stage.Valid() {
		return nil, fiber.NewError(fiber.StatusBadRequest, "invalid deal stage")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	deal, err := uow.DealRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if deal == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "deal not found")
	}

	now := time.Now()
	deal.Stage = stage
	deal.UpdatedAt = &now

	if err := uow.DealRepository().Update(ctx, deal); err != nil {
		return nil, err
	}

	s.refresh(ctx)
	res := dealToResponse(deal)
	return &res, nil
}

func (s *dealService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.DealRepository().Delete(ctx, id); err != nil {
		return err
	}
	s.refresh(ctx)
	return nil
}

func (s *dealService) Pipeline(ctx context.Context) ([]dto.PipelineBucketResponse, error) {
	deals, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	buckets := BuildPipeline(deals)
	result := make([]dto.PipelineBucketResponse, 0, len(buckets))
	for _, b := range buckets {
		result = append(result, dto.PipelineBucketResponse{
			Stage:       string(b.Stage),
			Count:       b.Count,
			TotalAmount: b.TotalAmount,
		})
	}
	return result, nil
}
