package contract

import (
	"context"

	"ai-mindsupport-be/internal/entity"
	"ai-mindsupport-be/internal/repository/specification"
)

// ConversationRepository is append-only: turns are never updated or deleted.
type ConversationRepository interface {
	Create(ctx context.Context, conversation *entity.Conversation) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Conversation, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Conversation, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
