package factory

import (
	"fmt"

	"ai-mindsupport-be/pkg/llm"
	"ai-mindsupport-be/pkg/llm/ollama"
	"ai-mindsupport-be/pkg/llm/openai"
)

// NewLLMProvider selects the generation backend from config.
func NewLLMProvider(providerName, modelName, ollamaBaseURL, openAIKey string) (llm.LLMProvider, error) {
	switch providerName {
	case "ollama":
		return ollama.NewOllamaProvider(ollamaBaseURL, modelName), nil
	case "openai":
		if openAIKey == "" {
			return nil, fmt.Errorf("openai provider requires OPENAI_API_KEY")
		}
		return openai.NewOpenAIProvider(openAIKey, modelName), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s", providerName)
	}
}
