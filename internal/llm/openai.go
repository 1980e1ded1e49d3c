package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/brunnokenzokillaruna/careertrackpro-sub000/internal/types"
)

const openAIEndpoint = "https://api.openai.com/v1/chat/completions"

// openAIClient talks to an OpenAI-style chat completions endpoint.
type openAIClient struct {
	apiKey     string
	model      string
	endpoint   string
	httpClient *http.Client
}

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIRequest struct {
	Model       string          `json:"model"`
	Messages    []openAIMessage `json:"messages"`
	Temperature float32         `json:"temperature"`
	MaxTokens   int             `json:"max_tokens,omitempty"`
}

type openAIResponse struct {
	Choices []struct {
		Message openAIMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

func newOpenAIClient(apiKey string, opts Options) *openAIClient {
	c := &openAIClient{
		apiKey:     apiKey,
		model:      opts.Model,
		endpoint:   opts.BaseURL,
		httpClient: opts.HTTPClient,
	}
	if c.model == "" {
		c.model = DefaultOpenAIModel
	}
	if c.endpoint == "" {
		c.endpoint = openAIEndpoint
	}
	if c.httpClient == nil {
		c.httpClient = http.DefaultClient
	}
	return c
}

func (c *openAIClient) Class() types.ProviderClass {
	return types.ProviderOpenAI
}

// Complete issues a single chat completion call and extracts the first
// choice's message content.
func (c *openAIClient) Complete(ctx context.Context, system, prompt string) (string, error) {
	body, err := json.Marshal(openAIRequest{
		Model: c.model,
		Messages: []openAIMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: prompt},
		},
		Temperature: 0.7,
		MaxTokens:   maxCompletionTokens,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &ProviderError{Class: c.Class(), Message: "request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &ProviderError{Class: c.Class(), Status: resp.StatusCode, Message: "failed to read response", Cause: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &ProviderError{
			Class:   c.Class(),
			Status:  resp.StatusCode,
			Message: errorSnippet(data),
		}
	}

	var parsed openAIResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", &ProviderError{Class: c.Class(), Status: resp.StatusCode, Message: "malformed response envelope", Cause: err}
	}
	if parsed.Error != nil {
		return "", &ProviderError{Class: c.Class(), Status: resp.StatusCode, Message: parsed.Error.Message}
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return "", &ProviderError{Class: c.Class(), Status: resp.StatusCode, Message: "no completion in response"}
	}
	return parsed.Choices[0].Message.Content, nil
}

// errorSnippet extracts a short diagnostic from an error response body.
func errorSnippet(data []byte) string {
	var envelope struct {
		Error *struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(data, &envelope); err == nil && envelope.Error != nil && envelope.Error.Message != "" {
		return envelope.Error.Message
	}
	s := strings.TrimSpace(string(data))
	if len(s) > 200 {
		s = s[:200]
	}
	if s == "" {
		s = "request rejected"
	}
	return s
}
