package llm

import (
	"context"
	"errors"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/brunnokenzokillaruna/careertrackpro-sub000/internal/types"
)

// anthropicClient talks to the Anthropic Messages API.
type anthropicClient struct {
	client anthropic.Client
	model  anthropic.Model
}

func newAnthropicClient(apiKey string, opts Options) *anthropicClient {
	reqOpts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if opts.BaseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(opts.BaseURL))
	}
	if opts.HTTPClient != nil {
		reqOpts = append(reqOpts, option.WithHTTPClient(opts.HTTPClient))
	}
	model := anthropic.Model(opts.Model)
	if opts.Model == "" {
		model = anthropic.Model(DefaultAnthropicModel)
	}
	return &anthropicClient{
		client: anthropic.NewClient(reqOpts...),
		model:  model,
	}
}

func (c *anthropicClient) Class() types.ProviderClass {
	return types.ProviderAnthropic
}

// Complete issues a single Messages API call and extracts the first
// text block of the response.
func (c *anthropicClient) Complete(ctx context.Context, system, prompt string) (string, error) {
	message, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: maxCompletionTokens,
		System: []anthropic.TextBlockParam{
			{Text: system},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		perr := &ProviderError{Class: c.Class(), Message: "request failed", Cause: err}
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) {
			perr.Status = apiErr.StatusCode
			perr.Message = "request rejected"
		}
		return "", perr
	}

	for _, block := range message.Content {
		if text := block.AsText().Text; text != "" {
			return text, nil
		}
	}
	return "", &ProviderError{Class: c.Class(), Message: "no text block in response"}
}
