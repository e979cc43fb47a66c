// Package ai is the invocation-and-caching layer over the configured
// LLM provider. All AI-derived features in the application go through
// Client.Invoke: it normalizes the request, consults the response
// cache, dispatches to exactly one provider, and fills the cache on
// the way back.
package ai

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shepstack/supportai/services/providers"
)

// Request is one logical request for text completion
type Request struct {
	// Prompt is the instruction text; always present and non-empty
	Prompt string

	// Context is optional supporting text. When empty it contributes
	// nothing to the provider payload.
	Context string

	// CacheHint keys the response cache together with prompt and
	// context. An empty hint disables caching for this call.
	CacheHint string
}

// Invoker is the invocation contract consumed by the generated
// helpers (field derivation, rule conditions, flow steps)
type Invoker interface {
	Invoke(ctx context.Context, req Request) (string, error)
}

// Client dispatches invocations to the configured provider and is the
// sole reader and writer of the response cache.
type Client struct {
	provider providers.Provider
	cache    *Cache
	logger   *zap.Logger
}

// NewClient creates a new invocation client. The provider is selected
// once from configuration before this point, not re-resolved per call.
func NewClient(provider providers.Provider, cache *Cache, logger *zap.Logger) *Client {
	return &Client{
		provider: provider,
		cache:    cache,
		logger:   logger,
	}
}

// Invoke performs one invocation. A cache hit returns the stored text
// without any network activity. On a miss (or when no cache hint is
// given) exactly one provider call is made; provider failures
// propagate unmodified and leave the cache untouched.
func (c *Client) Invoke(ctx context.Context, req Request) (string, error) {
	invocationID := uuid.New().String()
	start := time.Now()

	var key string
	if req.CacheHint != "" {
		key = DeriveKey(req.CacheHint, req.Prompt, req.Context)
		if text, ok := c.cache.Get(key); ok {
			c.logger.Debug("cache hit",
				zap.String("invocation_id", invocationID),
				zap.String("cache_hint", req.CacheHint))
			return text, nil
		}
	}

	text, err := c.provider.Complete(ctx, req.Prompt, req.Context)
	if err != nil {
		c.logger.Warn("provider call failed",
			zap.String("invocation_id", invocationID),
			zap.String("provider", c.provider.Name()),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		return "", err
	}

	if key != "" {
		c.cache.Put(key, text)
	}

	c.logger.Info("invocation completed",
		zap.String("invocation_id", invocationID),
		zap.String("provider", c.provider.Name()),
		zap.Bool("cached", key != ""),
		zap.Duration("elapsed", time.Since(start)))

	return text, nil
}

// Provider returns the name of the configured provider
func (c *Client) Provider() string {
	return c.provider.Name()
}

// CacheStats exposes response cache statistics
func (c *Client) CacheStats() CacheStats {
	return c.cache.Stats()
}
