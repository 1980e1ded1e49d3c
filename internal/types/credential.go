package types

import (
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

// ProviderClass identifies which provider API shape a credential
// belongs to. It is derived from the secret, never stored.
type ProviderClass string

// Supported provider classes.
const (
	ProviderOpenAI    ProviderClass = "openai"
	ProviderAnthropic ProviderClass = "anthropic"
	ProviderGemini    ProviderClass = "gemini"
)

// CredentialRef is a stored API credential. The provider class is
// resolved once at credential-selection time via Class; adapters never
// re-inspect the secret.
type CredentialRef struct {
	ID          uuid.UUID `json:"id"`
	DisplayName string    `json:"display_name"`
	Secret      string    `json:"-"`
}

// Class sniffs the provider class from the secret prefix. Order
// matters: Anthropic and Gemini prefixes are checked before defaulting
// to OpenAI, so an unknown prefix (including a plain "sk-") resolves
// to the OpenAI class.
func (c CredentialRef) Class() ProviderClass {
	switch {
	case strings.HasPrefix(c.Secret, "sk-ant-"):
		return ProviderAnthropic
	case strings.HasPrefix(c.Secret, "AIza"):
		return ProviderGemini
	default:
		return ProviderOpenAI
	}
}

// LogValue keeps credential secrets out of log output.
func (c CredentialRef) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("id", c.ID.String()),
		slog.String("display_name", c.DisplayName),
		slog.String("class", string(c.Class())),
	)
}
