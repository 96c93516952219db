package contract

import (
	"context"

	"ai-mindsupport-be/internal/entity"
	"ai-mindsupport-be/internal/repository/specification"
)

// MoodEntryRepository is append-only, like ConversationRepository.
type MoodEntryRepository interface {
	Create(ctx context.Context, entry *entity.MoodEntry) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.MoodEntry, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
