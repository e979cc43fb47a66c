package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shepstack/supportai/config"
	"github.com/shepstack/supportai/services/providers"
)

func testConfig(baseURL string) config.OpenAIConfig {
	return config.OpenAIConfig{
		APIKey:  "test-key",
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
	}
}

func chatReply(text string) chatResponse {
	return chatResponse{
		Choices: []chatChoice{{Message: chatMessage{Role: "assistant", Content: text}}},
	}
}

func TestAdapter_Complete(t *testing.T) {
	var captured chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(chatReply("negative"))
	}))
	defer server.Close()

	adapter := NewAdapter(testConfig(server.URL))
	text, err := adapter.Complete(context.Background(), "classify sentiment", `{"body":"terrible"}`)
	require.NoError(t, err)
	assert.Equal(t, "negative", text)

	assert.Equal(t, "gpt-3.5-turbo", captured.Model)
	assert.Equal(t, 1024, captured.MaxTokens)
	require.Len(t, captured.Messages, 1)
	assert.Equal(t, "user", captured.Messages[0].Role)
	assert.Equal(t, "classify sentiment\n\nContext: {\"body\":\"terrible\"}", captured.Messages[0].Content)
}

func TestAdapter_Complete_EmptyContextSendsPromptVerbatim(t *testing.T) {
	var captured chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		_ = json.NewEncoder(w).Encode(chatReply("ok"))
	}))
	defer server.Close()

	adapter := NewAdapter(testConfig(server.URL))
	_, err := adapter.Complete(context.Background(), "summarize in one sentence", "")
	require.NoError(t, err)

	require.Len(t, captured.Messages, 1)
	assert.Equal(t, "summarize in one sentence", captured.Messages[0].Content)
}

func TestAdapter_Complete_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"code":"invalid_api_key"}}`))
	}))
	defer server.Close()

	adapter := NewAdapter(testConfig(server.URL))
	_, err := adapter.Complete(context.Background(), "p", "")
	require.Error(t, err)

	provErr, ok := providers.IsProviderError(err)
	require.True(t, ok)
	assert.Equal(t, "openai", provErr.Provider)
	assert.Equal(t, providers.ErrCodeStatus, provErr.Code)
	assert.Equal(t, http.StatusUnauthorized, provErr.StatusCode)
	assert.Contains(t, provErr.Message, "API error (status 401)")
}

func TestAdapter_Complete_MalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>gateway error</html>"))
	}))
	defer server.Close()

	adapter := NewAdapter(testConfig(server.URL))
	_, err := adapter.Complete(context.Background(), "p", "")

	provErr, ok := providers.IsProviderError(err)
	require.True(t, ok)
	assert.Equal(t, providers.ErrCodeDecode, provErr.Code)
}

func TestAdapter_Complete_NoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	adapter := NewAdapter(testConfig(server.URL))
	_, err := adapter.Complete(context.Background(), "p", "")

	provErr, ok := providers.IsProviderError(err)
	require.True(t, ok)
	assert.Equal(t, providers.ErrCodeEmpty, provErr.Code)
}

func TestAdapter_Complete_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_ = json.NewEncoder(w).Encode(chatReply("late"))
	}))
	defer server.Close()

	cfg := testConfig(server.URL)
	cfg.Timeout = 20 * time.Millisecond
	adapter := NewAdapter(cfg)

	_, err := adapter.Complete(context.Background(), "p", "")
	require.Error(t, err)

	provErr, ok := providers.IsProviderError(err)
	require.True(t, ok)
	assert.Equal(t, providers.ErrCodeTimeout, provErr.Code)
}

func TestAdapter_Complete_SingleAttempt(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	adapter := NewAdapter(testConfig(server.URL))
	_, err := adapter.Complete(context.Background(), "p", "")
	require.Error(t, err)

	// Failures are not retried
	assert.Equal(t, 1, calls)
}

func TestNewAdapter_Defaults(t *testing.T) {
	adapter := NewAdapter(config.OpenAIConfig{APIKey: "k"})

	assert.Equal(t, "https://api.openai.com/v1", adapter.config.BaseURL)
	assert.Equal(t, 30*time.Second, adapter.httpClient.Timeout)
	assert.Equal(t, "openai", adapter.Name())
}
