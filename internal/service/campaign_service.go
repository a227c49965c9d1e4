package service

import (
	"context"
	"time"

	"crm-hub-be/internal/dto"
	"crm-hub-be/internal/entity"
	"crm-hub-be/internal/listview"
	"crm-hub-be/internal/pkg/logger"
	"crm-hub-be/internal/pkg/mailer"
	"crm-hub-be/internal/repository/specification"
	"crm-hub-be/internal/repository/unitofwork"
	"crm-hub-be/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ICampaignService interface {
	List(ctx context.Context, q *dto.ListCampaignsQuery) ([]dto.CampaignResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.CampaignResponse, error)
	Create(ctx context.Context, userId uuid.UUID, req *dto.UpsertCampaignRequest) (*dto.CampaignResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpsertCampaignRequest) (*dto.CampaignResponse, error)
	Send(ctx context.Context, id uuid.UUID) (*dto.CampaignResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type campaignService struct {
	uowFactory   unitofwork.RepositoryFactory
	emailService mailer.IEmailService
	logger       logger.ILogger
	snapshots    *store.SnapshotStore[*entity.EmailCampaign]
}

func NewCampaignService(
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
	log logger.ILogger,
) ICampaignService {
	return &campaignService{
		uowFactory:   uowFactory,
		emailService: emailService,
		logger:       log,
		snapshots:    store.NewSnapshotStore[*entity.EmailCampaign](),
	}
}

var campaignOrder = specification.OrderBy{Field: "created_at", Desc: true}

func campaignToResponse(c *entity.EmailCampaign) dto.CampaignResponse {
	return dto.CampaignResponse{
		Id:              c.Id,
		Name:            c.Name,
		Subject:         c.Subject,
		Content:         c.Content,
		Status:          string(c.Status),
		SentAt:          c.SentAt,
		RecipientsCount: c.RecipientsCount,
		OpensCount:      c.OpensCount,
		ClicksCount:     c.ClicksCount,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

func (s *campaignService) load(ctx context.Context) ([]*entity.EmailCampaign, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	seq := s.snapshots.Begin()
	campaigns, err := uow.CampaignRepository().FindAll(ctx, campaignOrder)
	if err != nil {
		s.snapshots.Fail(seq)
		return nil, err
	}
	s.snapshots.Apply(seq, campaigns)
	return campaigns, nil
}

func (s *campaignService) refresh(ctx context.Context) {
	if _, err := s.load(ctx); err != nil {
		s.logger.Warn("Campaign", "Snapshot refresh failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

func (s *campaignService) List(ctx context.Context, q *dto.ListCampaignsQuery) ([]dto.CampaignResponse, error) {
	campaigns, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	visible := listview.Visible(campaigns, q.Search, listview.CampaignSearchFields,
		listview.CampaignStatusFacet(q.Status),
	)

	result := make([]dto.CampaignResponse, 0, len(visible))
	for _, c := range visible {
		result = append(result, campaignToResponse(c))
	}
	return result, nil
}

func (s *campaignService) Show(ctx context.Context, id uuid.UUID) (*dto.CampaignResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	campaign, err := uow.CampaignRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "campaign not found")
	}
	res := campaignToResponse(campaign)
	return &res, nil
}

func buildCampaign(req *dto.UpsertCampaignRequest) (*entity.EmailCampaign, error) {
	status := entity.CampaignStatus(req.Status)
	if req.Status == "" {
		status = entity.CampaignStatusDraft
	} else if !status.Valid() {
		return nil, fiber.NewError(fiber.StatusBadRequest, "invalid campaign status")
	}

	return &entity.EmailCampaign{
		Name:    req.Name,
		Subject: req.Subject,
		Content: req.Content,
		Status:  status,
	}, nil
}

func (s *campaignService) Create(ctx context.Context, userId uuid.UUID, req *dto.UpsertCampaignRequest) (*dto.CampaignResponse, error) {
	campaign, err := buildCampaign(req)
	if err != nil {
		return nil, err
	}
	campaign.Id = uuid.New()
	campaign.CreatedBy = &userId
	campaign.CreatedAt = time.Now()

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.CampaignRepository().Create(ctx, campaign); err != nil {
		return nil, err
	}

	s.refresh(ctx)
	res := campaignToResponse(campaign)
	return &res, nil
}

func (s *campaignService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpsertCampaignRequest) (*dto.CampaignResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.CampaignRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "campaign not found")
	}
	if existing.Status == entity.CampaignStatusSent {
		return nil, fiber.NewError(fiber.StatusConflict, "sent campaigns cannot be edited")
	}

	now := time.Now()
	campaign, err := buildCampaign(req)
	if err != nil {
		return nil, err
	}
	campaign.Id = existing.Id
	campaign.SentAt = existing.SentAt
	campaign.RecipientsCount = existing.RecipientsCount
	campaign.OpensCount = existing.OpensCount
	campaign.ClicksCount = existing.ClicksCount
	campaign.CreatedBy = existing.CreatedBy
	campaign.CreatedAt = existing.CreatedAt
	campaign.UpdatedAt = &now

	if err := uow.CampaignRepository().Update(ctx, campaign); err != nil {
		return nil, err
	}

	s.refresh(ctx)
	res := campaignToResponse(campaign)
	return &res, nil
}

// Send flips the campaign to sent with a sent_at stamp, then delivers the
// content to every contact with an email address in the background. The
// recipients counter reflects the addresses targeted, not confirmed opens.
func (s *campaignService) Send(ctx context.Context, id uuid.UUID) (*dto.CampaignResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	campaign, err := uow.CampaignRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "campaign not found")
	}
	if campaign.Status == entity.CampaignStatusSent {
		return nil, fiber.NewError(fiber.StatusConflict, "campaign already sent")
	}

	contacts, err := uow.ContactRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	recipients := make([]string, 0, len(contacts))
	for _, c := range contacts {
		if c.Email != "" {
			recipients = append(recipients, c.Email)
		}
	}

	now := time.Now()
	campaign.Status = entity.CampaignStatusSent
	campaign.SentAt = &now
	campaign.RecipientsCount = len(recipients)
	campaign.UpdatedAt = &now

	if err := uow.CampaignRepository().Update(ctx, campaign); err != nil {
		return nil, err
	}

	go s.deliver(campaign.Subject, campaign.Content, recipients)

	s.refresh(ctx)
	res := campaignToResponse(campaign)
	return &res, nil
}

func (s *campaignService) deliver(subject, content string, recipients []string) {
	for _, email := range recipients {
		if err := s.emailService.SendCampaign(email, subject, content); err != nil {
			s.logger.Warn("Campaign", "Delivery failed for recipient", map[string]interface{}{
				"recipient": email,
				"error":     err.Error(),
			})
		}
	}
	s.logger.Info("Campaign", "Delivery pass finished", map[string]interface{}{
		"recipients": len(recipients),
	})
}

func (s *campaignService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.CampaignRepository().Delete(ctx, id); err != nil {
		return err
	}
	s.refresh(ctx)
	return nil
}
