package response

import (
	"context"
	"errors"
	"testing"

	"ai-mindsupport-be/internal/constant"
	"ai-mindsupport-be/pkg/llm"

	"github.com/stretchr/testify/assert"
)

type stubProvider struct {
	text string
	err  error
}

func (s *stubProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	return s.text, s.err
}

func TestGenerateOk(t *testing.T) {
	g := NewGenerator(&stubProvider{text: "You are doing great."})

	result := g.Generate(context.Background(), nil)

	assert.Equal(t, OutcomeOk, result.Outcome)
	assert.Equal(t, "You are doing great.", result.Reply())
	assert.NoError(t, result.Err)
}

func TestGenerateEmptyResult(t *testing.T) {
	g := NewGenerator(&stubProvider{text: "   \n\t "})

	result := g.Generate(context.Background(), nil)

	assert.Equal(t, OutcomeEmptyResult, result.Outcome)
	assert.Equal(t, constant.FallbackReplyEmptyResult, result.Reply())
	assert.NoError(t, result.Err)
}

func TestGenerateCallFailed(t *testing.T) {
	providerErr := errors.New("connection refused")
	g := NewGenerator(&stubProvider{err: providerErr})

	result := g.Generate(context.Background(), nil)

	assert.Equal(t, OutcomeCallFailed, result.Outcome)
	assert.Equal(t, constant.FallbackReplyCallFailed, result.Reply())
	assert.ErrorIs(t, result.Err, providerErr)
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "ok", OutcomeOk.String())
	assert.Equal(t, "empty_result", OutcomeEmptyResult.String())
	assert.Equal(t, "call_failed", OutcomeCallFailed.String())
}
