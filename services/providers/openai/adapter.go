// Package openai implements the Provider interface for OpenAI's chat
// completions API.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shepstack/supportai/config"
	"github.com/shepstack/supportai/services/providers"
)

const (
	defaultBaseURL  = "https://api.openai.com/v1"
	completionsPath = "/chat/completions"

	// Fixed adapter-level settings, not caller-supplied.
	model          = "gpt-3.5-turbo"
	maxTokens      = 1024
	defaultTimeout = 30 * time.Second
)

// Adapter implements the Provider interface for OpenAI
type Adapter struct {
	config     config.OpenAIConfig
	httpClient *http.Client
}

// NewAdapter creates a new OpenAI adapter. The API key is read from
// configuration here, once; a missing key is only rejected by the
// backend when a request is actually made.
func NewAdapter(cfg config.OpenAIConfig) *Adapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}
	return &Adapter{
		config:     cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// Name returns the provider name
func (a *Adapter) Name() string {
	return "openai"
}

// Complete sends a single chat completion request and extracts the
// reply text. One attempt per call; failures surface as *providers.Error.
func (a *Adapter) Complete(ctx context.Context, prompt, contextText string) (string, error) {
	body := chatRequest{
		Model: model,
		Messages: []chatMessage{
			{Role: "user", Content: providers.UserContent(prompt, contextText)},
		},
		MaxTokens: maxTokens,
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", providers.NewError(a.Name(), providers.ErrCodeTransport, "marshaling request", 0, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, a.config.BaseURL+completionsPath, bytes.NewReader(payload))
	if err != nil {
		return "", providers.NewError(a.Name(), providers.ErrCodeTransport, "creating request", 0, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+a.config.APIKey)

	httpResp, err := a.httpClient.Do(httpReq)
	if err != nil {
		return "", providers.TransportError(a.Name(), err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return "", providers.NewError(a.Name(), providers.ErrCodeTransport, "reading response", httpResp.StatusCode, err)
	}

	if httpResp.StatusCode != http.StatusOK {
		msg := fmt.Sprintf("API error (status %d): %s", httpResp.StatusCode, respBody)
		return "", providers.NewError(a.Name(), providers.ErrCodeStatus, msg, httpResp.StatusCode, nil)
	}

	var result chatResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", providers.NewError(a.Name(), providers.ErrCodeDecode, "parsing response", httpResp.StatusCode, err)
	}

	if len(result.Choices) == 0 {
		return "", providers.NewError(a.Name(), providers.ErrCodeEmpty, "response has no choices", httpResp.StatusCode, nil)
	}

	return result.Choices[0].Message.Content, nil
}

// Wire types for the chat completions API

type chatRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []chatChoice `json:"choices"`
}

type chatChoice struct {
	Index   int         `json:"index"`
	Message chatMessage `json:"message"`
}
