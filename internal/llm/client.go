package llm

import (
	"context"
	"fmt"

	"github.com/primary-workspace/asha-ai-techx/internal/config"
)

// Result is the outcome of a single generation attempt. A failed attempt is
// reported through Success and ErrorDetail rather than an error value, so
// callers are forced to handle degradation as an ordinary branch.
type Result struct {
	Text        string `json:"response"`
	Success     bool   `json:"success"`
	ErrorDetail string `json:"error,omitempty"`
}

// Client issues one bounded-timeout call to a text-generation backend per
// Generate invocation. Implementations never panic and never retry; a
// transport or protocol failure comes back as Success=false.
type Client interface {
	Generate(ctx context.Context, prompt string) Result
}

// New selects a generation backend from configuration.
func New(cfg *config.Config) (Client, error) {
	switch cfg.LLMProvider {
	case "hosted":
		return NewHostedClient(cfg.GeminiAPIURL), nil
	case "openai":
		return NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel), nil
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", cfg.LLMProvider)
	}
}
