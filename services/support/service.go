// Package support holds the AI-derived features of the SupportAI
// application: derived message fields, rule conditions, and flow
// steps. Each helper is a thin caller of the invocation layer with a
// fixed literal prompt and a fixed cache hint.
package support

import (
	"encoding/json"
	"fmt"

	"github.com/shepstack/supportai/services/ai"
)

// Service exposes the AI-derived operations
type Service struct {
	invoker ai.Invoker
}

// NewService creates a new support service on top of the invocation layer
func NewService(invoker ai.Invoker) *Service {
	return &Service{invoker: invoker}
}

// serializeContext renders a data value as the context text for an
// invocation. Map keys marshal in sorted order, so equal values always
// produce equal context bytes (and therefore equal cache keys).
func serializeContext(data any) (string, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("serializing context: %w", err)
	}
	return string(raw), nil
}

// contextHint builds a cache hint from a prefix and the serialized
// context, using a stable digest so the hint survives restarts.
func contextHint(prefix, contextText string) string {
	if contextText == "" {
		return prefix + "empty"
	}
	return prefix + ai.ShortDigest(contextText)
}
