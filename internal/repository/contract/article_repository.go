package contract

import (
	"context"

	"crm-hub-be/internal/entity"
	"crm-hub-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ArticleRepository interface {
	Create(ctx context.Context, article *entity.KBArticle) error
	Update(ctx context.Context, article *entity.KBArticle) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.KBArticle, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.KBArticle, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// IncrementViews bumps the monotonic view counter without a full-row write.
	IncrementViews(ctx context.Context, id uuid.UUID) error
}
