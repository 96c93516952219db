package openai

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"ai-mindsupport-be/pkg/llm"

	openaigo "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

// requestTimeout bounds individual completion calls so a stuck upstream does
// not pin a worker forever.
const requestTimeout = 60 * time.Second

type OpenAIProvider struct {
	client    openaigo.Client
	modelName string
}

var _ llm.LLMProvider = &OpenAIProvider{}

func NewOpenAIProvider(apiKey, modelName string) *OpenAIProvider {
	client := openaigo.NewClient(
		option.WithAPIKey(apiKey),
		option.WithHTTPClient(&http.Client{Timeout: requestTimeout}),
	)
	return &OpenAIProvider{
		client:    client,
		modelName: modelName,
	}
}

func (o *OpenAIProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	options := &llm.Options{
		Temperature: 0.7, // Default
	}
	for _, opt := range opts {
		opt(options)
	}

	messages := make([]openaigo.ChatCompletionMessageParamUnion, 0, len(history))
	for _, msg := range history {
		switch msg.Role {
		case "system":
			messages = append(messages, openaigo.SystemMessage(msg.Content))
		case "assistant", "model":
			messages = append(messages, openaigo.AssistantMessage(msg.Content))
		default:
			messages = append(messages, openaigo.UserMessage(msg.Content))
		}
	}

	model := o.modelName
	if options.Model != "" {
		model = options.Model
	}

	params := openaigo.ChatCompletionNewParams{
		Model:       shared.ChatModel(model),
		Messages:    messages,
		Temperature: openaigo.Float(options.Temperature),
	}
	if options.MaxTokens > 0 {
		params.MaxTokens = openaigo.Int(int64(options.MaxTokens))
	}

	resp, err := o.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("openai request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}
