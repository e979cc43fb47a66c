package handlers

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/shepstack/supportai/services/providers"
	"github.com/shepstack/supportai/services/support"
	"github.com/shepstack/supportai/utils"
)

// HandleServiceError maps service errors to HTTP responses
func HandleServiceError(w http.ResponseWriter, err error, logger *zap.Logger) {
	if err == nil {
		return
	}

	var unknownStep *support.ErrUnknownFlowStep
	if errors.As(err, &unknownStep) {
		if werr := utils.WriteNotFound(w, err.Error()); werr != nil {
			logger.Error("failed to write not found response", zap.Error(werr))
		}
		return
	}

	// Provider failures are mapped to 502 Bad Gateway
	if provErr, ok := providers.IsProviderError(err); ok {
		details := map[string]interface{}{
			"provider": provErr.Provider,
			"code":     provErr.Code,
		}
		if provErr.StatusCode != 0 {
			details["status_code"] = provErr.StatusCode
		}
		if werr := utils.WriteBadGateway(w, "provider call failed", details); werr != nil {
			logger.Error("failed to write bad gateway response", zap.Error(werr))
		}
		return
	}

	logger.Error("internal server error", zap.Error(err))
	if werr := utils.WriteInternalServerError(w, "An internal error occurred"); werr != nil {
		logger.Error("failed to write internal error response", zap.Error(werr))
	}
}

// HandleValidationError handles validation errors from request parsing
func HandleValidationError(w http.ResponseWriter, err error, logger *zap.Logger) {
	if utils.IsValidationError(err) {
		fields := utils.GetValidationFields(err)
		details := make(map[string]interface{}, len(fields))
		for k, v := range fields {
			details[k] = v
		}
		if werr := utils.WriteBadRequest(w, "Validation failed", details); werr != nil {
			logger.Error("failed to write validation error response", zap.Error(werr))
		}
		return
	}

	if werr := utils.WriteBadRequest(w, err.Error(), nil); werr != nil {
		logger.Error("failed to write validation error response", zap.Error(werr))
	}
}
