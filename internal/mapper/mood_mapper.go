package mapper

import (
	"encoding/json"

	"ai-mindsupport-be/internal/entity"
	"ai-mindsupport-be/internal/model"

	"gorm.io/datatypes"
)

type MoodMapper struct{}

func NewMoodMapper() *MoodMapper {
	return &MoodMapper{}
}

func (m *MoodMapper) MoodEntryToEntity(e *model.MoodEntry) *entity.MoodEntry {
	if e == nil {
		return nil
	}

	var triggers []string
	if len(e.Triggers) > 0 {
		// Malformed JSONB leaves triggers nil rather than failing the read.
		_ = json.Unmarshal(e.Triggers, &triggers)
	}

	return &entity.MoodEntry{
		Id:        e.Id,
		UserId:    e.UserId,
		Mood:      e.Mood,
		Intensity: e.Intensity,
		Notes:     e.Notes,
		Triggers:  triggers,
		CreatedAt: e.CreatedAt,
	}
}

func (m *MoodMapper) MoodEntryToModel(e *entity.MoodEntry) *model.MoodEntry {
	if e == nil {
		return nil
	}

	var triggers datatypes.JSON
	if e.Triggers != nil {
		raw, err := json.Marshal(e.Triggers)
		if err == nil {
			triggers = datatypes.JSON(raw)
		}
	}

	return &model.MoodEntry{
		Id:        e.Id,
		UserId:    e.UserId,
		Mood:      e.Mood,
		Intensity: e.Intensity,
		Notes:     e.Notes,
		Triggers:  triggers,
		CreatedAt: e.CreatedAt,
	}
}
