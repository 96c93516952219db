package prompt

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"ai-mindsupport-be/internal/constant"
	"ai-mindsupport-be/internal/entity"
	"ai-mindsupport-be/pkg/sentiment"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func windowOf(n int) []*entity.Conversation {
	// Newest first, like the history loader returns.
	turns := make([]*entity.Conversation, 0, n)
	now := time.Now()
	for i := 0; i < n; i++ {
		turns = append(turns, &entity.Conversation{
			Id:        uuid.New(),
			Message:   fmt.Sprintf("user msg %d", i),
			Response:  fmt.Sprintf("assistant reply %d", i),
			CreatedAt: now.Add(-time.Duration(i) * time.Minute),
		})
	}
	return turns
}

func TestSystemPromptInterpolation(t *testing.T) {
	b := NewBuilder()

	got := b.SystemPrompt(sentiment.Sentiment{Score: 0.82, Label: "positive", Confidence: 0.82})

	assert.Contains(t, got, "Current user sentiment: positive (confidence: 82%)")
	assert.Contains(t, got, "compassionate AI mental health support assistant")
}

func TestSystemPromptConfidenceRounding(t *testing.T) {
	b := NewBuilder()

	got := b.SystemPrompt(sentiment.Sentiment{Label: "neutral", Confidence: 0.005})

	// Half-up to a whole percentage.
	assert.Contains(t, got, "(confidence: 1%)")
}

func TestBuildEmptyWindow(t *testing.T) {
	b := NewBuilder()

	messages := b.Build(sentiment.Sentiment{Label: "neutral", Confidence: 0.5}, nil, "hello")

	assert.Len(t, messages, 2)
	assert.Equal(t, constant.ChatRoleSystem, messages[0].Role)
	assert.Equal(t, constant.ChatRoleUser, messages[1].Role)
	assert.Equal(t, "hello", messages[1].Content)
}

func TestBuildTruncatesAndReverses(t *testing.T) {
	b := NewBuilder()
	window := windowOf(8)

	messages := b.Build(sentiment.Sentiment{Label: "neutral", Confidence: 0.5}, window, "how do I cope?")

	// system + 5 exchanges * 2 + current message
	assert.Len(t, messages, 12)

	// Only the 5 newest turns survive, re-ordered oldest to newest: the first
	// history message is turn index 4, the last exchange is turn index 0.
	assert.Equal(t, "user msg 4", messages[1].Content)
	assert.Equal(t, "assistant reply 4", messages[2].Content)
	assert.Equal(t, "user msg 0", messages[9].Content)
	assert.Equal(t, "assistant reply 0", messages[10].Content)

	// Roles alternate user/assistant across history.
	for i := 1; i < 11; i += 2 {
		assert.Equal(t, constant.ChatRoleUser, messages[i].Role)
		assert.Equal(t, constant.ChatRoleAssistant, messages[i+1].Role)
	}

	last := messages[len(messages)-1]
	assert.Equal(t, constant.ChatRoleUser, last.Role)
	assert.Equal(t, "how do I cope?", last.Content)
}

func TestBuildSmallWindowKeepsAllTurns(t *testing.T) {
	b := NewBuilder()
	window := windowOf(2)

	messages := b.Build(sentiment.Sentiment{Label: "negative", Confidence: 1}, window, "still here")

	assert.Len(t, messages, 6)
	assert.True(t, strings.HasPrefix(messages[0].Content, "You are a compassionate"))
	assert.Equal(t, "user msg 1", messages[1].Content)
	assert.Equal(t, "user msg 0", messages[3].Content)
}
