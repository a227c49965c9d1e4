package contract

import (
	"context"

	"crm-hub-be/internal/entity"
	"crm-hub-be/internal/repository/specification"

	"github.com/google/uuid"
)

type DealRepository interface {
	Create(ctx context.Context, deal *entity.Deal) error
	Update(ctx context.Context, deal *entity.Deal) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Deal, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Deal, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
