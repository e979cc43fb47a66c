// Package claude implements the Provider interface for Anthropic's
// messages API.
package claude

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
	defaultBaseURL = "https://api.anthropic.com"
	messagesPath   = "/v1/messages"
	apiVersion     = "2023-06-01"

	// Fixed adapter-level settings, not caller-supplied.
	model          = "claude-3-haiku-20240307"
	maxTokens      = 1024
	defaultTimeout = 30 * time.Second
)

// Adapter implements the Provider interface for Claude
type Adapter struct {
	config     config.ClaudeConfig
	httpClient *http.Client
}

// NewAdapter creates a new Claude adapter. The API key is read from
// configuration here, once; a missing key is only rejected by the
// backend when a request is actually made.
func NewAdapter(cfg config.ClaudeConfig) *Adapter {
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
	return "claude"
}

// Complete sends a single messages request and extracts the reply text.
// One attempt per call; failures surface as *providers.Error.
func (a *Adapter) Complete(ctx context.Context, prompt, contextText string) (string, error) {
	body := messagesRequest{
		Model:     model,
		MaxTokens: maxTokens,
		Messages: []message{
			{Role: "user", Content: providers.UserContent(prompt, contextText)},
		},
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", providers.NewError(a.Name(), providers.ErrCodeTransport, "marshaling request", 0, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, a.config.BaseURL+messagesPath, bytes.NewReader(payload))
	if err != nil {
		return "", providers.NewError(a.Name(), providers.ErrCodeTransport, "creating request", 0, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", a.config.APIKey)
	httpReq.Header.Set("anthropic-version", apiVersion)

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

	var result messagesResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", providers.NewError(a.Name(), providers.ErrCodeDecode, "parsing response", httpResp.StatusCode, err)
	}

	if len(result.Content) == 0 {
		return "", providers.NewError(a.Name(), providers.ErrCodeEmpty, "response has no content blocks", httpResp.StatusCode, nil)
	}
	block := result.Content[0]
	if block.Type != "text" {
		return "", providers.NewError(a.Name(), providers.ErrCodeEmpty,
			fmt.Sprintf("first content block is %q, not text", block.Type), httpResp.StatusCode, nil)
	}

	return block.Text, nil
}

// Wire types for the messages API

type messagesRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	Messages  []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesResponse struct {
	Content []contentBlock `json:"content"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}
