package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brunnokenzokillaruna/careertrackpro-sub000/internal/types"
)

func TestOpenAICompleteSuccess(t *testing.T) {
	var gotAuth string
	var gotReq openAIRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&gotReq)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "# Resume"}},
			},
		})
	}))
	defer srv.Close()

	client := newOpenAIClient("sk-test", Options{BaseURL: srv.URL})
	out, err := client.Complete(context.Background(), SystemInstruction, "write it")
	require.NoError(t, err)
	assert.Equal(t, "# Resume", out)
	assert.Equal(t, "Bearer sk-test", gotAuth)
	require.Len(t, gotReq.Messages, 2)
	assert.Equal(t, "system", gotReq.Messages[0].Role)
	assert.Equal(t, DefaultOpenAIModel, gotReq.Model)
}

func TestOpenAICompleteNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error": {"message": "overloaded"}}`))
	}))
	defer srv.Close()

	client := newOpenAIClient("sk-test", Options{BaseURL: srv.URL})
	_, err := client.Complete(context.Background(), "sys", "prompt")
	require.Error(t, err)

	var perr *ProviderError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, types.ProviderOpenAI, perr.Class)
	assert.Equal(t, http.StatusInternalServerError, perr.Status)
	assert.Equal(t, "overloaded", perr.Message)
}

func TestOpenAICompleteEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices": []}`))
	}))
	defer srv.Close()

	client := newOpenAIClient("sk-test", Options{BaseURL: srv.URL})
	_, err := client.Complete(context.Background(), "sys", "prompt")

	var perr *ProviderError
	require.True(t, errors.As(err, &perr))
	assert.Contains(t, perr.Message, "no completion")
}

func TestNewClientResolvesClassFromCredential(t *testing.T) {
	ctx := context.Background()

	openai, err := NewClient(ctx, types.CredentialRef{Secret: "sk-plain"}, Options{})
	require.NoError(t, err)
	assert.Equal(t, types.ProviderOpenAI, openai.Class())

	claude, err := NewClient(ctx, types.CredentialRef{Secret: "sk-ant-xyz"}, Options{})
	require.NoError(t, err)
	assert.Equal(t, types.ProviderAnthropic, claude.Class())

	gemini, err := NewClient(ctx, types.CredentialRef{Secret: "AIzaXyz"}, Options{})
	require.NoError(t, err)
	assert.Equal(t, types.ProviderGemini, gemini.Class())
}
