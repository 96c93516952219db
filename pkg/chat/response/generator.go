package response

import (
	"context"
	"strings"

	"ai-mindsupport-be/internal/constant"
	"ai-mindsupport-be/pkg/llm"
)

// Outcome tags the three ways a generation call can end. Empty output and an
// outright call failure resolve to different fallback replies and must stay
// distinguishable for telemetry.
type Outcome int

const (
	OutcomeOk Outcome = iota
	OutcomeEmptyResult
	OutcomeCallFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOk:
		return "ok"
	case OutcomeEmptyResult:
		return "empty_result"
	case OutcomeCallFailed:
		return "call_failed"
	default:
		return "unknown"
	}
}

// Result carries the raw outcome of one generation call. Err is set only for
// OutcomeCallFailed.
type Result struct {
	Outcome Outcome
	Text    string
	Err     error
}

// Reply resolves the result to user-visible text. Failures never surface as
// errors on the conversational path.
func (r Result) Reply() string {
	switch r.Outcome {
	case OutcomeOk:
		return r.Text
	case OutcomeEmptyResult:
		return constant.FallbackReplyEmptyResult
	default:
		return constant.FallbackReplyCallFailed
	}
}

// Generator wraps the LLM provider call and classifies its outcome.
type Generator struct {
	llmProvider llm.LLMProvider
}

func NewGenerator(llmProvider llm.LLMProvider) *Generator {
	return &Generator{
		llmProvider: llmProvider,
	}
}

func (g *Generator) Generate(ctx context.Context, messages []llm.Message) Result {
	text, err := g.llmProvider.Chat(ctx, messages)
	if err != nil {
		return Result{Outcome: OutcomeCallFailed, Err: err}
	}
	if strings.TrimSpace(text) == "" {
		return Result{Outcome: OutcomeEmptyResult}
	}
	return Result{Outcome: OutcomeOk, Text: text}
}
