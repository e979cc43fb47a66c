// Package providers defines the capability interface implemented by
// every LLM backend, plus the error type they surface. The rest of the
// system works against these types and never sees a backend's wire
// format.
package providers

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// Provider is the abstraction over an LLM backend. Exactly one
// implementation is selected at startup from configuration.
type Provider interface {
	// Name returns the provider identifier, e.g. "claude" or "openai"
	Name() string

	// Complete sends the prompt (plus optional context text) to the
	// backend and returns the plain text of the reply
	Complete(ctx context.Context, prompt, contextText string) (string, error)
}

// UserContent combines the prompt and context into the single user
// message sent to a backend. When contextText is empty the prompt is
// sent verbatim. Cached responses depend on these exact bytes, so the
// separator must never change.
func UserContent(prompt, contextText string) string {
	if contextText == "" {
		return prompt
	}
	return prompt + "\n\nContext: " + contextText
}

// Error codes
const (
	ErrCodeTransport = "transport" // connection failure
	ErrCodeTimeout   = "timeout"   // deadline exceeded or caller cancelled
	ErrCodeStatus    = "status"    // non-2xx HTTP status
	ErrCodeDecode    = "decode"    // response body not in the expected shape
	ErrCodeEmpty     = "empty"     // response missing the text field
)

// Error represents a failure from a provider backend. It is the only
// error kind the invocation layer surfaces.
type Error struct {
	// Provider that generated the error
	Provider string

	// Code is one of the ErrCode constants
	Code string

	// StatusCode is the HTTP status code (if applicable)
	StatusCode int

	// Message is the error message
	Message string

	// Cause is the underlying error
	Cause error
}

// Error implements the error interface
func (e *Error) Error() string {
	msg := fmt.Sprintf("%s provider: %s", e.Provider, e.Message)
	if e.Cause != nil {
		return msg + ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap implements error unwrapping
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new provider error
func NewError(provider, code, message string, statusCode int, cause error) *Error {
	return &Error{
		Provider:   provider,
		Code:       code,
		StatusCode: statusCode,
		Message:    message,
		Cause:      cause,
	}
}

// TransportError classifies a failed HTTP round trip as a timeout or a
// plain transport failure. Caller cancellation counts as a timeout: the
// in-flight call is abandoned either way.
func TransportError(provider string, err error) *Error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled) ||
		(errors.As(err, &netErr) && netErr.Timeout()) {
		return NewError(provider, ErrCodeTimeout, "request timed out", 0, err)
	}
	return NewError(provider, ErrCodeTransport, "request failed", 0, err)
}

// IsProviderError reports whether err is a provider error, returning it
func IsProviderError(err error) (*Error, bool) {
	var provErr *Error
	if errors.As(err, &provErr) {
		return provErr, true
	}
	return nil, false
}

// IsTimeout reports whether err is a provider timeout
func IsTimeout(err error) bool {
	if provErr, ok := IsProviderError(err); ok {
		return provErr.Code == ErrCodeTimeout
	}
	return false
}
