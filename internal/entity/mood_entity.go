package entity

import (
	"time"

	"github.com/google/uuid"
)

// MoodEntry is a self-reported emotional state sample. Intensity follows the
// 1-10 UI convention but is stored exactly as the caller supplied it.
type MoodEntry struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Mood      string
	Intensity float64
	Notes     *string
	Triggers  []string
	CreatedAt time.Time
}
