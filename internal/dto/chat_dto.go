package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateSessionRequest struct {
	Title string `json:"title,omitempty"`
}

type CreateSessionResponse struct {
	Id uuid.UUID `json:"id"`
}

type GetAllSessionsResponse struct {
	Id        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

type SendMessageRequest struct {
	SessionId       uuid.UUID `json:"session_id" validate:"required"`
	Message         string    `json:"message" validate:"required"`
	AudioTranscript *string   `json:"audio_transcript,omitempty"`
}

// SendMessageResponse acknowledges acceptance only. The reply shows up in the
// session history once the worker persists the turn.
type SendMessageResponse struct {
	SessionId uuid.UUID `json:"session_id"`
	Queued    bool      `json:"queued"`
}

type SentimentDTO struct {
	Score      float64 `json:"score"`
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

type ConversationResponse struct {
	Id              uuid.UUID    `json:"id"`
	SessionId       uuid.UUID    `json:"session_id"`
	Message         string       `json:"message"`
	Response        string       `json:"response"`
	Sentiment       SentimentDTO `json:"sentiment"`
	AudioTranscript *string      `json:"audio_transcript,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
}

// ProcessTurnMessage is the queue payload between the accept path and the
// turn worker.
type ProcessTurnMessage struct {
	UserId          uuid.UUID `json:"user_id"`
	SessionId       uuid.UUID `json:"session_id"`
	Message         string    `json:"message"`
	AudioTranscript *string   `json:"audio_transcript,omitempty"`
}
