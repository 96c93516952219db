package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"ai-mindsupport-be/internal/dto"
	"ai-mindsupport-be/internal/entity"
	"ai-mindsupport-be/internal/repository/unitofwork"
	"ai-mindsupport-be/internal/websocket"
	chatevents "ai-mindsupport-be/pkg/chat/events"
	"ai-mindsupport-be/pkg/chat/history"
	"ai-mindsupport-be/pkg/chat/prompt"
	"ai-mindsupport-be/pkg/chat/response"
	"ai-mindsupport-be/pkg/sentiment"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

// TurnDelivery pushes real-time turn updates to connected clients.
// Implemented by the websocket hub.
type TurnDelivery interface {
	SendTurnCompleted(userID uuid.UUID, event websocket.TurnEvent)
}

type ITurnWorkerService interface {
	Consume(ctx context.Context) error
}

type turnWorkerService struct {
	pubSub         *gochannel.GoChannel
	topicName      string
	uowFactory     unitofwork.RepositoryFactory
	scorer         *sentiment.Scorer
	historyLoader  *history.Loader
	promptBuilder  *prompt.Builder
	generator      *response.Generator
	eventPublisher chatevents.Publisher
	delivery       TurnDelivery
}

func NewTurnWorkerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	scorer *sentiment.Scorer,
	historyLoader *history.Loader,
	promptBuilder *prompt.Builder,
	generator *response.Generator,
	eventPublisher chatevents.Publisher,
	delivery TurnDelivery,
) ITurnWorkerService {
	return &turnWorkerService{
		pubSub:         pubSub,
		topicName:      topicName,
		uowFactory:     uowFactory,
		scorer:         scorer,
		historyLoader:  historyLoader,
		promptBuilder:  promptBuilder,
		generator:      generator,
		eventPublisher: eventPublisher,
		delivery:       delivery,
	}
}

func (ts *turnWorkerService) Consume(ctx context.Context) error {
	messages, err := ts.pubSub.Subscribe(ctx, ts.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			ts.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (ts *turnWorkerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.ProcessTurnMessage
	err := json.Unmarshal(msg.Payload, &payload)
	if err != nil {
		log.Printf("[ERROR] Failed to unmarshal turn message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Processing turn for SessionId: %s", payload.SessionId)

	// 1. Score the message. Pure and local; cannot fail.
	score := ts.scorer.Score(payload.Message)

	// 2. Load the bounded context window (newest first).
	window, err := ts.historyLoader.LoadWindow(ctx, payload.SessionId)
	if err != nil {
		log.Printf("[ERROR] Failed to load context window for session %s: %v", payload.SessionId, err)
		msg.Nack() // Nack for retriable errors
		return
	}

	// 3. Assemble the prompt and call the model. Generation failures never
	// kill the turn; they resolve to a supportive fallback reply.
	messages := ts.promptBuilder.Build(score, window, payload.Message)
	result := ts.generator.Generate(ctx, messages)

	if result.Outcome != response.OutcomeOk {
		detail := ""
		if result.Err != nil {
			detail = result.Err.Error()
		}
		log.Printf("[WARN] Generation degraded (%s) for session %s: %s", result.Outcome, payload.SessionId, detail)
		ts.eventPublisher.PublishTurnGenerationFailed(ctx, payload.UserId, payload.SessionId, result.Outcome.String(), detail)
	}

	// 4. Persist the turn. Append-only, single insert.
	uow := ts.uowFactory.NewUnitOfWork(ctx)
	turn := entity.Conversation{
		Id:        uuid.New(),
		UserId:    payload.UserId,
		SessionId: payload.SessionId,
		Message:   payload.Message,
		Response:  result.Reply(),
		Sentiment: entity.Sentiment{
			Score:      score.Score,
			Label:      score.Label,
			Confidence: score.Confidence,
		},
		AudioTranscript: payload.AudioTranscript,
		CreatedAt:       time.Now(),
	}

	if err := uow.ConversationRepository().Create(ctx, &turn); err != nil {
		log.Printf("[ERROR] Failed to persist turn for session %s: %v", payload.SessionId, err)
		msg.Nack()
		return
	}

	// 5. Notify. Best effort; the turn is already durable.
	ts.eventPublisher.PublishTurnCompleted(ctx, turn.Id, turn.UserId, turn.SessionId, turn.Sentiment.Label)
	if ts.delivery != nil {
		ts.delivery.SendTurnCompleted(turn.UserId, websocket.TurnEvent{
			TurnId:         turn.Id,
			SessionId:      turn.SessionId,
			SentimentLabel: turn.Sentiment.Label,
			CreatedAt:      turn.CreatedAt,
		})
	}

	log.Printf("[SUCCESS] Turn processed for session %s (outcome: %s)", payload.SessionId, result.Outcome)
	msg.Ack()
}
