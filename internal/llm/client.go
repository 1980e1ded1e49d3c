package llm

import (
	"context"
	"net/http"

	"github.com/brunnokenzokillaruna/careertrackpro-sub000/internal/types"
)

// Default model identifiers per provider class.
const (
	DefaultOpenAIModel    = "gpt-4o-mini"
	DefaultAnthropicModel = "claude-3-7-sonnet-latest"
	DefaultGeminiModel    = "gemini-2.5-flash"
)

// maxCompletionTokens bounds a single document completion.
const maxCompletionTokens = 4096

// Client is the uniform interface over the completion providers. One
// call produces one document; there are no retries and no timeout
// beyond the transport default.
type Client interface {
	// Complete sends the system instruction and prompt to the provider
	// and returns the single completion text.
	Complete(ctx context.Context, system, prompt string) (string, error)
	// Class returns the provider class this client talks to.
	Class() types.ProviderClass
}

// Options adjust client construction. The zero value uses the real
// provider endpoints and default models; tests point BaseURL at a
// local fake.
type Options struct {
	BaseURL    string
	Model      string
	HTTPClient *http.Client
}

// NewClient resolves the credential's provider class and constructs
// the matching adapter.
func NewClient(ctx context.Context, cred types.CredentialRef, opts Options) (Client, error) {
	switch cred.Class() {
	case types.ProviderAnthropic:
		return newAnthropicClient(cred.Secret, opts), nil
	case types.ProviderGemini:
		return newGeminiClient(ctx, cred.Secret, opts)
	default:
		return newOpenAIClient(cred.Secret, opts), nil
	}
}
