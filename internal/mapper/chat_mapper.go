package mapper

import (
	"ai-mindsupport-be/internal/entity"
	"ai-mindsupport-be/internal/model"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

// Session Mappers

func (m *ChatMapper) ChatSessionToEntity(s *model.ChatSession) *entity.ChatSession {
	if s == nil {
		return nil
	}

	return &entity.ChatSession{
		Id:        s.Id,
		UserId:    s.UserId,
		Title:     s.Title,
		CreatedAt: s.CreatedAt,
	}
}

func (m *ChatMapper) ChatSessionToModel(s *entity.ChatSession) *model.ChatSession {
	if s == nil {
		return nil
	}

	return &model.ChatSession{
		Id:        s.Id,
		UserId:    s.UserId,
		Title:     s.Title,
		CreatedAt: s.CreatedAt,
	}
}

// Conversation Mappers

func (m *ChatMapper) ConversationToEntity(c *model.Conversation) *entity.Conversation {
	if c == nil {
		return nil
	}

	return &entity.Conversation{
		Id:        c.Id,
		UserId:    c.UserId,
		SessionId: c.SessionId,
		Message:   c.Message,
		Response:  c.Response,
		Sentiment: entity.Sentiment{
			Score:      c.SentimentScore,
			Label:      c.SentimentLabel,
			Confidence: c.SentimentConfidence,
		},
		AudioTranscript: c.AudioTranscript,
		CreatedAt:       c.CreatedAt,
	}
}

func (m *ChatMapper) ConversationToModel(c *entity.Conversation) *model.Conversation {
	if c == nil {
		return nil
	}

	return &model.Conversation{
		Id:                  c.Id,
		UserId:              c.UserId,
		SessionId:           c.SessionId,
		Message:             c.Message,
		Response:            c.Response,
		SentimentScore:      c.Sentiment.Score,
		SentimentLabel:      c.Sentiment.Label,
		SentimentConfidence: c.Sentiment.Confidence,
		AudioTranscript:     c.AudioTranscript,
		CreatedAt:           c.CreatedAt,
	}
}
