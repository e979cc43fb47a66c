package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shepstack/supportai/services/ai"
	"github.com/shepstack/supportai/services/providers"
)

type stubInvocationService struct {
	last     ai.Request
	text     string
	err      error
	provider string
}

func (s *stubInvocationService) Invoke(_ context.Context, req ai.Request) (string, error) {
	s.last = req
	if s.err != nil {
		return "", s.err
	}
	return s.text, nil
}

func (s *stubInvocationService) Provider() string {
	if s.provider == "" {
		return "claude"
	}
	return s.provider
}

func postJSON(t *testing.T, handler http.HandlerFunc, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestAIHandler_HandleComplete(t *testing.T) {
	service := &stubInvocationService{text: "a summary"}
	handler := NewAIHandler(service, zap.NewNop())

	rec := postJSON(t, handler.HandleComplete, "/api/v1/ai/complete",
		`{"prompt":"summarize","context":"{\"body\":\"hi\"}","cache_hint":"h1"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data CompleteResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "a summary", resp.Data.Text)
	assert.Equal(t, "claude", resp.Data.Provider)

	assert.Equal(t, "summarize", service.last.Prompt)
	assert.Equal(t, `{"body":"hi"}`, service.last.Context)
	assert.Equal(t, "h1", service.last.CacheHint)
}

func TestAIHandler_HandleComplete_MissingPrompt(t *testing.T) {
	handler := NewAIHandler(&stubInvocationService{}, zap.NewNop())

	rec := postJSON(t, handler.HandleComplete, "/api/v1/ai/complete", `{"context":"c"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAIHandler_HandleComplete_InvalidBody(t *testing.T) {
	handler := NewAIHandler(&stubInvocationService{}, zap.NewNop())

	rec := postJSON(t, handler.HandleComplete, "/api/v1/ai/complete", "not json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAIHandler_HandleComplete_ProviderError(t *testing.T) {
	service := &stubInvocationService{
		err: providers.NewError("claude", providers.ErrCodeStatus, "API error (status 500)", 500, nil),
	}
	handler := NewAIHandler(service, zap.NewNop())

	rec := postJSON(t, handler.HandleComplete, "/api/v1/ai/complete", `{"prompt":"p"}`)
	require.Equal(t, http.StatusBadGateway, rec.Code)

	var resp struct {
		Error   string                 `json:"error"`
		Details map[string]interface{} `json:"details"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "bad_gateway", resp.Error)
	assert.Equal(t, "claude", resp.Details["provider"])
	assert.Equal(t, "status", resp.Details["code"])
	assert.Equal(t, float64(500), resp.Details["status_code"])
}
