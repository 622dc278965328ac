package generate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const geminiEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent"

// GeminiClient implements Client against the Google Generative Language API.
type GeminiClient struct {
	apiKey      string
	model       string
	temperature float64
	maxTokens   int
	httpClient  *http.Client
	endpoint    string
}

// geminiRequest is the request body for the generateContent endpoint.
type geminiRequest struct {
	Contents         []geminiContent `json:"contents"`
	GenerationConfig geminiGenConfig `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
}

// geminiResponse is the response body for the generateContent endpoint.
type geminiResponse struct {
	Candidates []struct {
		Content      geminiContent `json:"content"`
		FinishReason string        `json:"finishReason"`
	} `json:"candidates"`
	Error *geminiError `json:"error,omitempty"`
}

type geminiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// NewGeminiClient creates a Gemini adapter. The API key is read from
// GOOGLE_API_KEY or GEMINI_API_KEY.
func NewGeminiClient(model string, temperature float64, maxTokens int) (*GeminiClient, error) {
	apiKey := os.Getenv("GOOGLE_API_KEY")
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("GOOGLE_API_KEY or GEMINI_API_KEY environment variable not set")
	}
	return &GeminiClient{
		apiKey:      apiKey,
		model:       model,
		temperature: temperature,
		maxTokens:   maxTokens,
		httpClient:  &http.Client{Timeout: 120 * time.Second},
		endpoint:    fmt.Sprintf(geminiEndpoint, model),
	}, nil
}

// Model returns the model identifier.
func (c *GeminiClient) Model() string {
	return c.model
}

// Generate sends a prompt and returns the generated text.
func (c *GeminiClient) Generate(ctx context.Context, prompt string) (Result, error) {
	req := geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
		GenerationConfig: geminiGenConfig{
			Temperature:     c.temperature,
			MaxOutputTokens: c.maxTokens,
		},
	}

	body, err := json.Marshal(req)
	if err != nil {
		return Result{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.endpoint, bytes.NewReader(body))
	if err != nil {
		return Result{}, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return Result{}, &Error{Op: "gemini request", Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, &Error{Op: "gemini response", Err: err}
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return Result{}, &RateLimitError{
			Op:  "gemini request",
			Err: fmt.Errorf("API error (status 429): %s", string(respBody)),
		}
	}
	if resp.StatusCode != http.StatusOK {
		apiErr := fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(respBody))
		return Result{}, Classify("gemini request", apiErr)
	}

	var gemResp geminiResponse
	if err := json.Unmarshal(respBody, &gemResp); err != nil {
		return Result{}, &Error{Op: "gemini response", Err: fmt.Errorf("failed to parse response: %w", err)}
	}
	if gemResp.Error != nil {
		return Result{}, Classify("gemini request", fmt.Errorf("API error: %s", gemResp.Error.Message))
	}
	if len(gemResp.Candidates) == 0 {
		return Result{}, &Error{Op: "gemini response", Err: fmt.Errorf("no candidates in response")}
	}

	candidate := gemResp.Candidates[0]
	var text string
	for _, part := range candidate.Content.Parts {
		text += part.Text
	}

	finish := FinishComplete
	if candidate.FinishReason == "MAX_TOKENS" {
		finish = FinishMaxOutput
	}
	return Result{Text: text, FinishReason: finish}, nil
}
