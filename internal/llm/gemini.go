package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/brunnokenzokillaruna/careertrackpro-sub000/internal/types"
)

// geminiClient talks to the Gemini generateContent API.
type geminiClient struct {
	client *genai.Client
	model  string
}

func newGeminiClient(ctx context.Context, apiKey string, opts Options) (*geminiClient, error) {
	clientOpts := []option.ClientOption{option.WithAPIKey(apiKey)}
	if opts.BaseURL != "" {
		clientOpts = append(clientOpts, option.WithEndpoint(opts.BaseURL))
	}
	if opts.HTTPClient != nil {
		clientOpts = append(clientOpts, option.WithHTTPClient(opts.HTTPClient))
	}
	client, err := genai.NewClient(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	model := opts.Model
	if model == "" {
		model = DefaultGeminiModel
	}
	return &geminiClient{client: client, model: model}, nil
}

func (c *geminiClient) Class() types.ProviderClass {
	return types.ProviderGemini
}

// Complete issues a single generateContent call and joins the text
// parts of the first candidate.
func (c *geminiClient) Complete(ctx context.Context, system, prompt string) (string, error) {
	model := c.client.GenerativeModel(c.model)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(system)},
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		perr := &ProviderError{Class: c.Class(), Message: "request failed", Cause: err}
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) {
			perr.Status = apiErr.Code
			perr.Message = "request rejected"
		}
		return "", perr
	}

	text, err := extractText(resp)
	if err != nil {
		return "", &ProviderError{Class: c.Class(), Message: err.Error()}
	}
	return text, nil
}

// extractText pulls the completion text out of the Gemini response
// envelope.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", errors.New("no candidates in response")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", errors.New("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}
	if len(parts) == 0 {
		return "", errors.New("no text parts in response")
	}
	return strings.Join(parts, ""), nil
}
