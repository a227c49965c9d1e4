package contract

import (
	"context"

	"crm-hub-be/internal/entity"
	"crm-hub-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ChatMessageRepository interface {
	Create(ctx context.Context, message *entity.ChatMessage) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatMessage, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// LastBySession returns the newest message of a session, or nil when empty.
	LastBySession(ctx context.Context, sessionId uuid.UUID) (*entity.ChatMessage, error)
	// MarkReadBySession marks every visitor message of a session as read.
	MarkReadBySession(ctx context.Context, sessionId uuid.UUID) error
}
