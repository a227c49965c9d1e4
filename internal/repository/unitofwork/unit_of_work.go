package unitofwork

import (
	"context"

	"crm-hub-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	ContactRepository() contract.ContactRepository
	CompanyRepository() contract.CompanyRepository
	DealRepository() contract.DealRepository
	TicketRepository() contract.TicketRepository
	CampaignRepository() contract.CampaignRepository
	ArticleRepository() contract.ArticleRepository
	ChatSessionRepository() contract.ChatSessionRepository
	ChatMessageRepository() contract.ChatMessageRepository
}
