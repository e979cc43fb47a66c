package app

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/shepstack/supportai/config"
	"github.com/shepstack/supportai/handlers"
	"github.com/shepstack/supportai/services/ai"
	"github.com/shepstack/supportai/services/providers"
	"github.com/shepstack/supportai/services/providers/claude"
	"github.com/shepstack/supportai/services/providers/openai"
	"github.com/shepstack/supportai/services/support"
)

// Dependencies holds all application dependencies. This is the central
// wiring point: config selects the provider exactly once, the response
// cache is constructed here and owned by the AI client for the
// lifetime of the process.
type Dependencies struct {
	// Infrastructure
	Config *config.Config
	Logger *zap.Logger

	// Services
	Provider providers.Provider
	Cache    *ai.Cache
	AIClient *ai.Client
	Support  *support.Service

	// Handlers
	AIHandler      *handlers.AIHandler
	SupportHandler *handlers.SupportHandler
}

// NewDependencies creates and wires up all application dependencies
func NewDependencies(cfg *config.Config, logger *zap.Logger) (*Dependencies, error) {
	provider, err := newProvider(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize provider: %w", err)
	}

	cache := ai.NewCache()
	client := ai.NewClient(provider, cache, logger)
	supportService := support.NewService(client)

	deps := &Dependencies{
		Config:         cfg,
		Logger:         logger,
		Provider:       provider,
		Cache:          cache,
		AIClient:       client,
		Support:        supportService,
		AIHandler:      handlers.NewAIHandler(client, logger),
		SupportHandler: handlers.NewSupportHandler(supportService, logger),
	}

	logger.Info("all dependencies initialized",
		zap.String("provider", provider.Name()))
	return deps, nil
}

// newProvider builds the single provider adapter named by configuration
func newProvider(cfg *config.Config) (providers.Provider, error) {
	switch cfg.AI.Provider {
	case "claude":
		return claude.NewAdapter(cfg.Providers.Claude), nil
	case "openai":
		return openai.NewAdapter(cfg.Providers.OpenAI), nil
	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.AI.Provider)
	}
}
