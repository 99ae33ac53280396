package llm

import (
	"fmt"

	"github.com/averille/explain/internal/config"
)

// NewProvider builds the provider selected by backend, falling back to the
// configured default. The model argument, when non-empty, overrides the
// configured model for that backend.
func NewProvider(cfg *config.Config, backend, model string) (Provider, error) {
	if backend == "" {
		backend = cfg.Backend
	}

	switch backend {
	case "openai":
		if model == "" {
			model = cfg.OpenAI.Model
		}
		return NewOpenAIProvider(cfg.OpenAI.APIKey, model)
	case "ollama":
		if model == "" {
			model = cfg.Ollama.Model
		}
		return NewOllamaProvider(cfg.Ollama.Host, model), nil
	default:
		return nil, fmt.Errorf("unknown backend %q (expected \"openai\" or \"ollama\")", backend)
	}
}
