package contract

import (
	"context"

	"crm-hub-be/internal/entity"
	"crm-hub-be/internal/repository/specification"

	"github.com/google/uuid"
)

type CampaignRepository interface {
	Create(ctx context.Context, campaign *entity.EmailCampaign) error
	Update(ctx context.Context, campaign *entity.EmailCampaign) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.EmailCampaign, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.EmailCampaign, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
