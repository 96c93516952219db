package prompt

import (
	"fmt"
	"math"

	"ai-mindsupport-be/internal/constant"
	"ai-mindsupport-be/internal/entity"
	"ai-mindsupport-be/pkg/llm"
	"ai-mindsupport-be/pkg/sentiment"
)

// HistoryExchanges is how many prior turns are projected into the prompt.
// The window itself is fetched newest-first and bounded at 10; the prompt uses
// the newest 5, reversed to chronological order so the model reads history
// oldest-to-newest.
const HistoryExchanges = 5

// Builder assembles the message list for one generation call.
type Builder struct{}

func NewBuilder() *Builder {
	return &Builder{}
}

// SystemPrompt interpolates the scored sentiment into the fixed supportive,
// non-diagnostic persona instructions.
func (b *Builder) SystemPrompt(s sentiment.Sentiment) string {
	confidencePct := int(math.Round(s.Confidence * 100))
	return fmt.Sprintf(constant.SupportSystemPromptTemplate, s.Label, confidencePct)
}

// Build projects the context window and the new message into a chat history.
// window must be ordered newest first, as returned by the history loader.
func (b *Builder) Build(s sentiment.Sentiment, window []*entity.Conversation, message string) []llm.Message {
	recent := window
	if len(recent) > HistoryExchanges {
		recent = recent[:HistoryExchanges]
	}

	messages := make([]llm.Message, 0, 2+2*len(recent))
	messages = append(messages, llm.Message{
		Role:    constant.ChatRoleSystem,
		Content: b.SystemPrompt(s),
	})

	// Reverse to chronological order; each prior turn becomes a two-message
	// exchange (what the user said, what the assistant replied).
	for i := len(recent) - 1; i >= 0; i-- {
		turn := recent[i]
		messages = append(messages,
			llm.Message{Role: constant.ChatRoleUser, Content: turn.Message},
			llm.Message{Role: constant.ChatRoleAssistant, Content: turn.Response},
		)
	}

	messages = append(messages, llm.Message{
		Role:    constant.ChatRoleUser,
		Content: message,
	})

	return messages
}
