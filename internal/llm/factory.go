package llm

import (
	"fmt"
	"strings"

	"github.com/ppiankov/pantrymap/internal/model"
)

// DefaultOllamaURL is the OpenAI-compatible endpoint of a local Ollama
const DefaultOllamaURL = "http://localhost:11434/v1"

// NewProvider creates a new LLM provider based on configuration
func NewProvider(config Config) (Provider, error) {
	switch strings.ToLower(config.Provider) {
	case "openai":
		return NewOpenAIProvider(config)

	case "ollama":
		// Ollama speaks the OpenAI chat API and ignores the key
		if config.BaseURL == "" {
			config.BaseURL = DefaultOllamaURL
		}
		if config.APIKey == "" {
			config.APIKey = "ollama"
		}
		p, err := NewOpenAIProvider(config)
		if err != nil {
			return nil, err
		}
		p.name = "ollama"
		return p, nil

	case "":
		// No provider configured - return nil (LLM disabled)
		return nil, nil

	default:
		return nil, fmt.Errorf("unknown LLM provider: %s (supported: openai, ollama)", config.Provider)
	}
}

// ConfigFromModel converts model config to llm.Config
func ConfigFromModel(llmConfig model.LLMConfig, fetch model.FetchConfig) Config {
	cfg := DefaultConfig()
	cfg.Provider = llmConfig.Provider
	cfg.Model = llmConfig.Model
	cfg.APIKey = llmConfig.APIKey
	cfg.BaseURL = llmConfig.BaseURL
	if llmConfig.Timeout > 0 {
		cfg.Timeout = llmConfig.Timeout
	}
	cfg.HTTPProxy = fetch.HTTPProxy
	cfg.HTTPSProxy = fetch.HTTPSProxy
	cfg.NoProxy = fetch.NoProxy
	return cfg
}
