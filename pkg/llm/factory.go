package llm

import (
	"fmt"
	"os"

	"github.com/100percenttuna/undertow/pkg/config"
)

// NewProviderFromConfig builds the adapter for a configured provider.
// The API key is resolved from the environment at construction time; a
// missing key is not an error here — the router treats the provider as
// unavailable instead.
func NewProviderFromConfig(name string, cfg *config.LLMProviderConfig) (Provider, error) {
	apiKey := os.Getenv(cfg.APIKeyEnv)

	switch cfg.Type {
	case config.LLMProviderTypeAnthropic:
		return NewAnthropicProvider(name, apiKey, cfg.BaseURL), nil
	case config.LLMProviderTypeOpenAI, config.LLMProviderTypeOpenAICompatible:
		return NewOpenAIProvider(name, apiKey, cfg.BaseURL, cfg.EmbeddingModel), nil
	default:
		return nil, fmt.Errorf("unsupported provider type %q for %s", cfg.Type, name)
	}
}
