package llm

import (
	"fmt"
	"strings"

	"github.com/arunmaroon/avinci-main-sub006/internal/config"
)

// NewClientFromConfig resuelve el proveedor a partir de AI_PROVIDER. El modo
// claude reusa un cliente OpenAI solo para embeddings.
func NewClientFromConfig(cfg *config.Config) (Client, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.AIProvider)) {
	case "", "openai":
		return NewOpenAIClient(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.EmbeddingModel), nil
	case "grok":
		return NewOpenAIClient(cfg.GrokBaseURL, cfg.GrokAPIKey, cfg.GrokModel, cfg.EmbeddingModel), nil
	case "claude":
		embedding := NewOpenAIClient(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.EmbeddingModel)
		return NewAnthropicClient(cfg.AnthropicAPIKey, cfg.AnthropicModel, embedding), nil
	}
	return nil, fmt.Errorf("unknown AI provider %q", cfg.AIProvider)
}
