package dto

import (
	"time"

	"github.com/google/uuid"

	"ai-mindsupport-be/pkg/mood"
)

// LogMoodRequest does not bound intensity: the 1-10 scale is a UI convention,
// and out-of-range values are stored verbatim.
type LogMoodRequest struct {
	Mood      string   `json:"mood" validate:"required"`
	Intensity float64  `json:"intensity" validate:"required"`
	Notes     *string  `json:"notes,omitempty"`
	Triggers  []string `json:"triggers,omitempty"`
}

type MoodEntryResponse struct {
	Id        uuid.UUID `json:"id"`
	Mood      string    `json:"mood"`
	Intensity float64   `json:"intensity"`
	Notes     *string   `json:"notes,omitempty"`
	Triggers  []string  `json:"triggers,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// MoodStatsResponse is nil-able: no entries means no stats, not an error.
type MoodStatsResponse = mood.Summary
