package events

import (
	"context"
	"time"

	"ai-mindsupport-be/internal/pkg/logger"
	pkgEvents "ai-mindsupport-be/pkg/events"
	pktNats "ai-mindsupport-be/pkg/nats"

	"github.com/google/uuid"
)

// Publisher abstracts turn-lifecycle event publishing. Generation failures are
// the one condition worth observing: the user sees a supportive fallback, so
// these events are the only trace of a broken upstream.
type Publisher interface {
	PublishTurnCompleted(ctx context.Context, turnId, userId, sessionId uuid.UUID, sentimentLabel string)
	PublishTurnGenerationFailed(ctx context.Context, userId, sessionId uuid.UUID, reason, detail string)
}

// NatsPublisher implements Publisher using NATS. A nil underlying publisher
// turns every publish into a no-op so the worker runs without a bus.
type NatsPublisher struct {
	publisher *pktNats.Publisher
	logger    logger.ILogger
}

func NewNatsPublisher(publisher *pktNats.Publisher, logger logger.ILogger) *NatsPublisher {
	return &NatsPublisher{
		publisher: publisher,
		logger:    logger,
	}
}

// PublishTurnCompleted emits TURN_COMPLETED after the turn row is persisted.
func (p *NatsPublisher) PublishTurnCompleted(ctx context.Context, turnId, userId, sessionId uuid.UUID, sentimentLabel string) {
	if p.publisher == nil {
		return
	}

	evt := pkgEvents.BaseEvent{
		Type: "TURN_COMPLETED",
		Data: map[string]interface{}{
			"turn_id":         turnId,
			"user_id":         userId,
			"session_id":      sessionId,
			"sentiment_label": sentimentLabel,
		},
		OccurredAt: time.Now(),
	}

	if err := p.publisher.Publish(ctx, evt); err != nil {
		p.logger.Error("CHAT", "Failed to publish TURN_COMPLETED event", map[string]interface{}{"error": err.Error()})
	}
}

// PublishTurnGenerationFailed emits TURN_GENERATION_FAILED. reason is the
// outcome tag ("empty_result" or "call_failed"); detail carries the provider
// error when there is one.
func (p *NatsPublisher) PublishTurnGenerationFailed(ctx context.Context, userId, sessionId uuid.UUID, reason, detail string) {
	if p.publisher == nil {
		return
	}

	evt := pkgEvents.BaseEvent{
		Type: "TURN_GENERATION_FAILED",
		Data: map[string]interface{}{
			"user_id":    userId,
			"session_id": sessionId,
			"reason":     reason,
			"detail":     detail,
		},
		OccurredAt: time.Now(),
	}

	if err := p.publisher.Publish(ctx, evt); err != nil {
		p.logger.Error("CHAT", "Failed to publish TURN_GENERATION_FAILED event", map[string]interface{}{"error": err.Error()})
	}
}
