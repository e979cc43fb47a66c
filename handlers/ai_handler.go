package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/shepstack/supportai/services/ai"
	"github.com/shepstack/supportai/utils"
)

// CompleteRequest is the raw invocation request body
type CompleteRequest struct {
	Prompt    string `json:"prompt" validate:"required"`
	Context   string `json:"context,omitempty"`
	CacheHint string `json:"cache_hint,omitempty"`
}

// CompleteResponse is the raw invocation response body
type CompleteResponse struct {
	Text     string `json:"text"`
	Provider string `json:"provider"`
}

// InvocationService defines the interface for raw invocations
type InvocationService interface {
	Invoke(ctx context.Context, req ai.Request) (string, error)
	Provider() string
}

// AIHandler handles raw invocation HTTP requests
type AIHandler struct {
	service InvocationService
	logger  *zap.Logger
}

// NewAIHandler creates a new AIHandler
func NewAIHandler(service InvocationService, logger *zap.Logger) *AIHandler {
	return &AIHandler{
		service: service,
		logger:  logger,
	}
}

// HandleComplete handles POST /api/v1/ai/complete
func (h *AIHandler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	var req CompleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("failed to parse request body", zap.Error(err))
		_ = utils.WriteBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		HandleValidationError(w, err, h.logger)
		return
	}

	text, err := h.service.Invoke(r.Context(), ai.Request{
		Prompt:    req.Prompt,
		Context:   req.Context,
		CacheHint: req.CacheHint,
	})
	if err != nil {
		HandleServiceError(w, err, h.logger)
		return
	}

	_ = utils.WriteOK(w, CompleteResponse{
		Text:     text,
		Provider: h.service.Provider(),
	})
}
