package entity

import (
	"time"

	"github.com/google/uuid"
)

type ChatSession struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Title     string
	CreatedAt time.Time
}

// Sentiment is the valence annotation attached to every turn.
// Label is always derivable from Score; it is stored alongside it so history
// queries never have to re-derive it.
type Sentiment struct {
	Score      float64
	Label      string
	Confidence float64
}

// Conversation is one user-message/assistant-reply exchange. Rows are
// append-only: they are written once by the turn worker and never updated.
type Conversation struct {
	Id              uuid.UUID
	UserId          uuid.UUID
	SessionId       uuid.UUID
	Message         string
	Response        string
	Sentiment       Sentiment
	AudioTranscript *string
	CreatedAt       time.Time
}
