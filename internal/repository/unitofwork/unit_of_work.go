package unitofwork

import (
	"context"

	"ai-mindsupport-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	ChatSessionRepository() contract.ChatSessionRepository
	ConversationRepository() contract.ConversationRepository
	MoodEntryRepository() contract.MoodEntryRepository
}
