package history

import (
	"context"

	"ai-mindsupport-be/internal/entity"
	"ai-mindsupport-be/internal/repository/specification"
	"ai-mindsupport-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// WindowSize is the hard bound on how many prior turns the loader returns.
const WindowSize = 10

// Loader fetches the bounded conversation window used as generation context.
type Loader struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewLoader(uowFactory unitofwork.RepositoryFactory) *Loader {
	return &Loader{
		uowFactory: uowFactory,
	}
}

// LoadWindow returns up to WindowSize turns for the session, newest first.
// A session with no history yields an empty slice, not an error.
func (l *Loader) LoadWindow(ctx context.Context, sessionId uuid.UUID) ([]*entity.Conversation, error) {
	uow := l.uowFactory.NewUnitOfWork(ctx)

	turns, err := uow.ConversationRepository().FindAll(ctx,
		specification.BySessionID{SessionID: sessionId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Take{Limit: WindowSize},
	)
	if err != nil {
		return nil, err
	}

	return turns, nil
}
