package model

import (
	"time"

	"github.com/google/uuid"
)

// Conversation rows are append-only; there is no UpdatedAt or DeletedAt on
// purpose. Sentiment is flattened into columns so stats queries stay plain SQL.
type Conversation struct {
	Id                  uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId              uuid.UUID `gorm:"type:uuid;not null;index"`
	SessionId           uuid.UUID `gorm:"type:uuid;not null;index"`
	Message             string    `gorm:"type:text;not null"`
	Response            string    `gorm:"type:text;not null"`
	SentimentScore      float64   `gorm:"not null"`
	SentimentLabel      string    `gorm:"type:varchar(20);not null"`
	SentimentConfidence float64   `gorm:"not null"`
	AudioTranscript     *string   `gorm:"type:text"`
	CreatedAt           time.Time `gorm:"autoCreateTime;index"`
}

func (Conversation) TableName() string {
	return "conversations"
}
