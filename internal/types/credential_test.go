package types

import (
	"strings"
	"testing"
)

func TestCredentialClass(t *testing.T) {
	tests := []struct {
		name     string
		secret   string
		expected ProviderClass
	}{
		{name: "anthropic prefix", secret: "sk-ant-api03-abc123", expected: ProviderAnthropic},
		{name: "gemini prefix", secret: "AIzaSyD-abc123", expected: ProviderGemini},
		{name: "openai prefix", secret: "sk-proj-abc123", expected: ProviderOpenAI},
		{name: "bare sk prefix", secret: "sk-abc123", expected: ProviderOpenAI},
		{name: "no prefix", secret: "some-random-token", expected: ProviderOpenAI},
		{name: "empty secret", secret: "", expected: ProviderOpenAI},
		{name: "anthropic wins over sk", secret: "sk-ant-", expected: ProviderAnthropic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cred := CredentialRef{Secret: tt.secret}
			if got := cred.Class(); got != tt.expected {
				t.Errorf("Class() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestCredentialLogValueOmitsSecret(t *testing.T) {
	cred := CredentialRef{DisplayName: "work key", Secret: "sk-ant-super-secret"}
	v := cred.LogValue().String()
	if strings.Contains(v, "super-secret") {
		t.Fatalf("LogValue leaked secret: %s", v)
	}
}
