package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"ai-mindsupport-be/internal/constant"
	"ai-mindsupport-be/internal/dto"
	"ai-mindsupport-be/internal/entity"
	"ai-mindsupport-be/internal/repository/contract"
	"ai-mindsupport-be/internal/repository/specification"
	"ai-mindsupport-be/internal/repository/unitofwork"
	"ai-mindsupport-be/internal/websocket"
	"ai-mindsupport-be/pkg/chat/history"
	"ai-mindsupport-be/pkg/chat/prompt"
	"ai-mindsupport-be/pkg/chat/response"
	"ai-mindsupport-be/pkg/llm"
	"ai-mindsupport-be/pkg/sentiment"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Fakes ---

type fakeConversationRepo struct {
	window  []*entity.Conversation
	created []*entity.Conversation
	findErr error
}

func (r *fakeConversationRepo) Create(ctx context.Context, c *entity.Conversation) error {
	r.created = append(r.created, c)
	return nil
}

func (r *fakeConversationRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Conversation, error) {
	return nil, nil
}

func (r *fakeConversationRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Conversation, error) {
	return r.window, r.findErr
}

func (r *fakeConversationRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.window)), nil
}

type fakeUow struct {
	conversations *fakeConversationRepo
}

func (u *fakeUow) Begin(ctx context.Context) error { return nil }
func (u *fakeUow) Commit() error                   { return nil }
func (u *fakeUow) Rollback() error                 { return nil }

func (u *fakeUow) UserRepository() contract.UserRepository { return nil }

func (u *fakeUow) ChatSessionRepository() contract.ChatSessionRepository { return nil }
func (u *fakeUow) ConversationRepository() contract.ConversationRepository {
	return u.conversations
}
func (u *fakeUow) MoodEntryRepository() contract.MoodEntryRepository { return nil }

type fakeFactory struct {
	uow *fakeUow
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

type stubProvider struct {
	text string
	err  error
}

func (s *stubProvider) Chat(ctx context.Context, h []llm.Message, options ...llm.Option) (string, error) {
	return s.text, s.err
}

type recordingEventPublisher struct {
	completed []uuid.UUID
	failures  []string
}

func (p *recordingEventPublisher) PublishTurnCompleted(ctx context.Context, turnId, userId, sessionId uuid.UUID, sentimentLabel string) {
	p.completed = append(p.completed, turnId)
}

func (p *recordingEventPublisher) PublishTurnGenerationFailed(ctx context.Context, userId, sessionId uuid.UUID, reason, detail string) {
	p.failures = append(p.failures, reason)
}

type recordingDelivery struct {
	events []websocket.TurnEvent
}

func (d *recordingDelivery) SendTurnCompleted(userID uuid.UUID, event websocket.TurnEvent) {
	d.events = append(d.events, event)
}

// --- Helpers ---

type workerFixture struct {
	worker    *turnWorkerService
	repo      *fakeConversationRepo
	events    *recordingEventPublisher
	delivery  *recordingDelivery
	userId    uuid.UUID
	sessionId uuid.UUID
}

func newWorkerFixture(t *testing.T, provider llm.LLMProvider, window []*entity.Conversation, findErr error) *workerFixture {
	t.Helper()

	repo := &fakeConversationRepo{window: window, findErr: findErr}
	factory := &fakeFactory{uow: &fakeUow{conversations: repo}}
	events := &recordingEventPublisher{}
	delivery := &recordingDelivery{}

	svc := NewTurnWorkerService(
		nil,
		"PROCESS_CHAT_TURN",
		factory,
		sentiment.NewScorer(sentiment.DefaultLexicon()),
		history.NewLoader(factory),
		prompt.NewBuilder(),
		response.NewGenerator(provider),
		events,
		delivery,
	)

	worker, ok := svc.(*turnWorkerService)
	require.True(t, ok)

	return &workerFixture{
		worker:    worker,
		repo:      repo,
		events:    events,
		delivery:  delivery,
		userId:    uuid.New(),
		sessionId: uuid.New(),
	}
}

func (f *workerFixture) turnMessage(t *testing.T, text string) *message.Message {
	t.Helper()
	payload, err := json.Marshal(dto.ProcessTurnMessage{
		UserId:    f.userId,
		SessionId: f.sessionId,
		Message:   text,
	})
	require.NoError(t, err)
	return message.NewMessage(watermill.NewUUID(), payload)
}

func assertAcked(t *testing.T, msg *message.Message) {
	t.Helper()
	select {
	case <-msg.Acked():
	default:
		t.Fatal("message was not acked")
	}
}

func assertNacked(t *testing.T, msg *message.Message) {
	t.Helper()
	select {
	case <-msg.Nacked():
	default:
		t.Fatal("message was not nacked")
	}
}

// --- Tests ---

func TestProcessMessagePersistsTurn(t *testing.T) {
	f := newWorkerFixture(t, &stubProvider{text: "That sounds really hard. I'm here with you."}, nil, nil)

	msg := f.turnMessage(t, "I feel sad and worried")
	f.worker.processMessage(context.Background(), msg)

	assertAcked(t, msg)
	require.Len(t, f.repo.created, 1)

	turn := f.repo.created[0]
	assert.Equal(t, f.userId, turn.UserId)
	assert.Equal(t, f.sessionId, turn.SessionId)
	assert.Equal(t, "I feel sad and worried", turn.Message)
	assert.Equal(t, "That sounds really hard. I'm here with you.", turn.Response)
	assert.Equal(t, -1.0, turn.Sentiment.Score)
	assert.Equal(t, "negative", turn.Sentiment.Label)
	assert.Equal(t, 1.0, turn.Sentiment.Confidence)

	assert.Equal(t, []uuid.UUID{turn.Id}, f.events.completed)
	assert.Empty(t, f.events.failures)

	require.Len(t, f.delivery.events, 1)
	assert.Equal(t, turn.Id, f.delivery.events[0].TurnId)
	assert.Equal(t, "negative", f.delivery.events[0].SentimentLabel)
}

func TestProcessMessageProviderErrorFallsBack(t *testing.T) {
	f := newWorkerFixture(t, &stubProvider{err: errors.New("upstream down")}, nil, nil)

	msg := f.turnMessage(t, "hello")
	f.worker.processMessage(context.Background(), msg)

	// The turn is still persisted and acked; the user sees the fallback.
	assertAcked(t, msg)
	require.Len(t, f.repo.created, 1)
	assert.Equal(t, constant.FallbackReplyCallFailed, f.repo.created[0].Response)

	assert.Equal(t, []string{"call_failed"}, f.events.failures)
	assert.Len(t, f.events.completed, 1)
}

func TestProcessMessageEmptyOutputFallsBack(t *testing.T) {
	f := newWorkerFixture(t, &stubProvider{text: "  "}, nil, nil)

	msg := f.turnMessage(t, "hello")
	f.worker.processMessage(context.Background(), msg)

	assertAcked(t, msg)
	require.Len(t, f.repo.created, 1)
	assert.Equal(t, constant.FallbackReplyEmptyResult, f.repo.created[0].Response)
	assert.Equal(t, []string{"empty_result"}, f.events.failures)
}

func TestProcessMessageMalformedPayloadAcked(t *testing.T) {
	f := newWorkerFixture(t, &stubProvider{text: "ok"}, nil, nil)

	msg := message.NewMessage(watermill.NewUUID(), []byte("not json"))
	f.worker.processMessage(context.Background(), msg)

	// Poison messages are acked, never retried.
	assertAcked(t, msg)
	assert.Empty(t, f.repo.created)
	assert.Empty(t, f.events.completed)
}

func TestProcessMessageHistoryFailureNacked(t *testing.T) {
	f := newWorkerFixture(t, &stubProvider{text: "ok"}, nil, errors.New("db unavailable"))

	msg := f.turnMessage(t, "hello")
	f.worker.processMessage(context.Background(), msg)

	assertNacked(t, msg)
	assert.Empty(t, f.repo.created)
	assert.Empty(t, f.events.completed)
}

func TestProcessMessageUsesContextWindow(t *testing.T) {
	window := []*entity.Conversation{
		{Id: uuid.New(), Message: "earlier message", Response: "earlier reply"},
	}

	captured := &capturingProvider{}
	f := newWorkerFixture(t, captured, window, nil)

	msg := f.turnMessage(t, "and today?")
	f.worker.processMessage(context.Background(), msg)

	assertAcked(t, msg)
	require.Len(t, captured.history, 4) // system + 1 exchange + current
	assert.Equal(t, "earlier message", captured.history[1].Content)
	assert.Equal(t, "earlier reply", captured.history[2].Content)
	assert.Equal(t, "and today?", captured.history[3].Content)
}

type capturingProvider struct {
	history []llm.Message
}

func (c *capturingProvider) Chat(ctx context.Context, h []llm.Message, options ...llm.Option) (string, error) {
	c.history = append([]llm.Message(nil), h...)
	return "noted", nil
}
