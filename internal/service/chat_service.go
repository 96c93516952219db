package service

import (
	"context"
	"encoding/json"
	"time"

	"ai-mindsupport-be/internal/constant"
	"ai-mindsupport-be/internal/dto"
	"ai-mindsupport-be/internal/entity"
	"ai-mindsupport-be/internal/pkg/serverutils"
	"ai-mindsupport-be/internal/repository/specification"
	"ai-mindsupport-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// HistoryPageSize bounds how many turns one history read returns.
const HistoryPageSize = 50

type IChatService interface {
	CreateSession(ctx context.Context, userId uuid.UUID, req *dto.CreateSessionRequest) (*dto.CreateSessionResponse, error)
	GetAllSessions(ctx context.Context, userId uuid.UUID) ([]*dto.GetAllSessionsResponse, error)
	GetChatHistory(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) ([]*dto.ConversationResponse, error)
	SendMessage(ctx context.Context, userId uuid.UUID, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error)
}

type chatService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
) IChatService {
	return &chatService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
	}
}

func (c *chatService) CreateSession(ctx context.Context, userId uuid.UUID, req *dto.CreateSessionRequest) (*dto.CreateSessionResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	title := req.Title
	if title == "" {
		title = constant.DefaultSessionTitle
	}

	session := entity.ChatSession{
		Id:        uuid.New(),
		UserId:    userId,
		Title:     title,
		CreatedAt: time.Now(),
	}

	if err := uow.ChatSessionRepository().Create(ctx, &session); err != nil {
		return nil, err
	}

	return &dto.CreateSessionResponse{
		Id: session.Id,
	}, nil
}

func (c *chatService) GetAllSessions(ctx context.Context, userId uuid.UUID) ([]*dto.GetAllSessionsResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	sessions, err := uow.ChatSessionRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.GetAllSessionsResponse, 0, len(sessions))
	for _, session := range sessions {
		result = append(result, &dto.GetAllSessionsResponse{
			Id:        session.Id,
			Title:     session.Title,
			CreatedAt: session.CreatedAt,
		})
	}

	return result, nil
}

func (c *chatService) GetChatHistory(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) ([]*dto.ConversationResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	// Ownership check first. A missing session and someone else's session are
	// indistinguishable to the caller.
	session, err := uow.ChatSessionRepository().FindOne(ctx,
		specification.ByID{ID: sessionId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, serverutils.ErrNotFound
	}

	turns, err := uow.ConversationRepository().FindAll(ctx,
		specification.BySessionID{SessionID: sessionId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Take{Limit: HistoryPageSize},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ConversationResponse, 0, len(turns))
	for _, turn := range turns {
		result = append(result, &dto.ConversationResponse{
			Id:        turn.Id,
			SessionId: turn.SessionId,
			Message:   turn.Message,
			Response:  turn.Response,
			Sentiment: dto.SentimentDTO{
				Score:      turn.Sentiment.Score,
				Label:      turn.Sentiment.Label,
				Confidence: turn.Sentiment.Confidence,
			},
			AudioTranscript: turn.AudioTranscript,
			CreatedAt:       turn.CreatedAt,
		})
	}

	return result, nil
}

func (c *chatService) SendMessage(ctx context.Context, userId uuid.UUID, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.ChatSessionRepository().FindOne(ctx,
		specification.ByID{ID: req.SessionId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, serverutils.ErrNotFound
	}

	// The turn is processed off the request path. Scoring, context assembly
	// and generation all happen in the worker; the caller polls history or
	// listens on the websocket for the reply.
	msgPayload := dto.ProcessTurnMessage{
		UserId:          userId,
		SessionId:       req.SessionId,
		Message:         req.Message,
		AudioTranscript: req.AudioTranscript,
	}
	msgJson, _ := json.Marshal(msgPayload)

	if err := c.publisherService.Publish(ctx, msgJson); err != nil {
		return nil, err
	}

	return &dto.SendMessageResponse{
		SessionId: req.SessionId,
		Queued:    true,
	}, nil
}
