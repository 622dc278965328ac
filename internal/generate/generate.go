// Package generate abstracts the text-generation capability behind a single
// call shape. The summarization pipeline depends only on the Client
// interface; provider specifics (endpoints, auth, retry) live in the
// adapters here.
package generate

import (
	"context"
	"fmt"
)

// Finish reasons reported alongside generated text.
const (
	FinishComplete  = "finished"
	FinishMaxOutput = "max_output_reached"
)

// Result is the outcome of one generation call.
type Result struct {
	Text         string
	FinishReason string
}

// Client is the generation capability consumed by the summarizer. Prompts
// are complete and self-contained; there is no streaming or multi-turn
// state.
type Client interface {
	// Generate sends a prompt and returns the generated text.
	Generate(ctx context.Context, prompt string) (Result, error)

	// Model returns the model identifier being used.
	Model() string
}

// NewClient creates a provider adapter by name using the given model,
// sampling temperature and output token cap.
func NewClient(provider, model string, temperature float64, maxTokens int) (Client, error) {
	switch provider {
	case "gemini":
		return NewGeminiClient(model, temperature, maxTokens)
	case "openai":
		return NewOpenAIClient(model, temperature, maxTokens)
	default:
		return nil, fmt.Errorf("unknown provider: %s", provider)
	}
}
