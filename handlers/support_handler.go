package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/shepstack/supportai/utils"
)

// DeriveRequest carries the message data a field is derived from
type DeriveRequest struct {
	Data map[string]interface{} `json:"data" validate:"required"`
}

// FieldResponse is the result of a field derivation
type FieldResponse struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// RuleRequest carries the message content a rule is evaluated against
type RuleRequest struct {
	Content string `json:"content" validate:"required"`
}

// RuleResponse is the result of a rule evaluation
type RuleResponse struct {
	Rule   string `json:"rule"`
	Result bool   `json:"result"`
}

// FlowRequest carries the optional flow context for a step
type FlowRequest struct {
	Context map[string]interface{} `json:"context,omitempty"`
}

// FlowResponse is the result of running a flow step
type FlowResponse struct {
	Step   string `json:"step"`
	Result string `json:"result"`
}

// SupportService defines the AI-derived operations exposed over HTTP
type SupportService interface {
	MessageSentiment(ctx context.Context, data any) (string, error)
	MessageSummary(ctx context.Context, data any) (string, error)
	SoundsFrustrated(ctx context.Context, messageContent string) (bool, error)
	LooksLikeSpam(ctx context.Context, messageContent string) (bool, error)
	FlowStep(ctx context.Context, step string, flowContext any) (string, error)
}

// SupportHandler handles derived-field, rule, and flow HTTP requests
type SupportHandler struct {
	service SupportService
	logger  *zap.Logger
}

// NewSupportHandler creates a new SupportHandler
func NewSupportHandler(service SupportService, logger *zap.Logger) *SupportHandler {
	return &SupportHandler{
		service: service,
		logger:  logger,
	}
}

// HandleSentiment handles POST /api/v1/derive/sentiment
func (h *SupportHandler) HandleSentiment(w http.ResponseWriter, r *http.Request) {
	h.handleDerive(w, r, "sentiment", h.service.MessageSentiment)
}

// HandleSummary handles POST /api/v1/derive/summary
func (h *SupportHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	h.handleDerive(w, r, "summary", h.service.MessageSummary)
}

func (h *SupportHandler) handleDerive(w http.ResponseWriter, r *http.Request, field string, derive func(context.Context, any) (string, error)) {
	var req DeriveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = utils.WriteBadRequest(w, "Invalid request body", nil)
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		HandleValidationError(w, err, h.logger)
		return
	}

	value, err := derive(r.Context(), req.Data)
	if err != nil {
		HandleServiceError(w, err, h.logger)
		return
	}

	_ = utils.WriteOK(w, FieldResponse{Field: field, Value: value})
}

// HandleFrustration handles POST /api/v1/rules/frustration
func (h *SupportHandler) HandleFrustration(w http.ResponseWriter, r *http.Request) {
	h.handleRule(w, r, "frustration", h.service.SoundsFrustrated)
}

// HandleSpam handles POST /api/v1/rules/spam
func (h *SupportHandler) HandleSpam(w http.ResponseWriter, r *http.Request) {
	h.handleRule(w, r, "spam", h.service.LooksLikeSpam)
}

func (h *SupportHandler) handleRule(w http.ResponseWriter, r *http.Request, rule string, evaluate func(context.Context, string) (bool, error)) {
	var req RuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = utils.WriteBadRequest(w, "Invalid request body", nil)
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		HandleValidationError(w, err, h.logger)
		return
	}

	result, err := evaluate(r.Context(), req.Content)
	if err != nil {
		HandleServiceError(w, err, h.logger)
		return
	}

	_ = utils.WriteOK(w, RuleResponse{Rule: rule, Result: result})
}

// HandleFlowStep handles POST /api/v1/flows/{step}
func (h *SupportHandler) HandleFlowStep(w http.ResponseWriter, r *http.Request) {
	step := chi.URLParam(r, "step")

	var req FlowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = utils.WriteBadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.service.FlowStep(r.Context(), step, req.Context)
	if err != nil {
		HandleServiceError(w, err, h.logger)
		return
	}

	_ = utils.WriteOK(w, FlowResponse{Step: step, Result: result})
}
