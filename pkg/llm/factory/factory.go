package factory

import (
	"fmt"

	"hadith-voice-be/pkg/llm"
	"hadith-voice-be/pkg/llm/ollama"
	"hadith-voice-be/pkg/llm/openai"
)

func NewLLMProvider(providerType, modelName, baseURL, openaiApiKey string) (llm.LLMProvider, error) {
	switch providerType {
	case "openai":
		if openaiApiKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required for the openai provider")
		}
		return openai.NewOpenAIProvider(openaiApiKey, modelName), nil
	case "ollama":
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(baseURL, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
