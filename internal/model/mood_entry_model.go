package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type MoodEntry struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID      `gorm:"type:uuid;not null;index"`
	Mood      string         `gorm:"type:varchar(100);not null"`
	Intensity float64        `gorm:"not null"` // 1-10 by convention, stored verbatim
	Notes     *string        `gorm:"type:text"`
	Triggers  datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt time.Time      `gorm:"autoCreateTime;index"`
}

func (MoodEntry) TableName() string {
	return "mood_entries"
}
