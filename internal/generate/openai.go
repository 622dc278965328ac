package generate

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/responses"
	"github.com/openai/openai-go/v3/shared"
)

// OpenAIClient implements Client using the OpenAI Responses API.
type OpenAIClient struct {
	client      openai.Client
	model       string
	temperature float64
	maxTokens   int
}

// NewOpenAIClient creates an OpenAI adapter. The API key is read from
// OPENAI_API_KEY.
func NewOpenAIClient(model string, temperature float64, maxTokens int) (*OpenAIClient, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
	}
	return &OpenAIClient{
		client:      openai.NewClient(option.WithAPIKey(apiKey)),
		model:       model,
		temperature: temperature,
		maxTokens:   maxTokens,
	}, nil
}

// Model returns the model identifier.
func (c *OpenAIClient) Model() string {
	return c.model
}

// Generate sends a prompt and returns the generated text.
func (c *OpenAIClient) Generate(ctx context.Context, prompt string) (Result, error) {
	params := responses.ResponseNewParams{
		Model: shared.ResponsesModel(c.model),
		Input: responses.ResponseNewParamsInputUnion{OfString: openai.String(prompt)},
	}
	if c.temperature > 0 {
		params.Temperature = openai.Float(c.temperature)
	}
	if c.maxTokens > 0 {
		params.MaxOutputTokens = openai.Int(int64(c.maxTokens))
	}

	resp, err := c.client.Responses.New(ctx, params)
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusTooManyRequests {
			return Result{}, &RateLimitError{Op: "openai request", Err: err}
		}
		return Result{}, Classify("openai request", err)
	}

	finish := FinishComplete
	if resp.IncompleteDetails.Reason == "max_output_tokens" {
		finish = FinishMaxOutput
	}
	return Result{Text: resp.OutputText(), FinishReason: finish}, nil
}
