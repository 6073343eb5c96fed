package prompt_fx

import (
	"fmt"
	"strings"

	"darwinplanner/internal/config"
	"darwinplanner/internal/services"
	"darwinplanner/pkg/logger"
	"darwinplanner/pkg/utils"
	"go.uber.org/fx"
)

var Module = fx.Provide(
	ProvideGenerationClient,
	ProvidePlanOrchestrator)

// ProvideGenerationClient builds the configured model client behind the
// shared rate limiter.
func ProvideGenerationClient(lc fx.Lifecycle, cfg *config.Config, log *logger.Logger) (utils.GenerationClientInterface, error) {
	gen := cfg.Generation
	log.Info("initializing generation client", "provider", gen.Provider, "model", gen.Model,
		"requests_per_minute", gen.RequestsPerMinute)

	var client utils.GenerationClientInterface
	switch strings.ToLower(gen.Provider) {
	case "openai":
		client = utils.NewOpenAIGenerationClient(gen.APIKey, gen.Model, gen.BaseURL)
	case "gemini":
		gemini, err := utils.NewGeminiGenerationClient(gen.APIKey, gen.Model)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		lc.Append(fx.StopHook(gemini.Close))
		client = gemini
	default:
		return nil, fmt.Errorf("%w: %s", utils.ErrUnsupportedProvider, gen.Provider)
	}

	return utils.NewRateLimitedGenerationClient(client, gen.RequestsPerMinute), nil
}

func ProvidePlanOrchestrator(
	catalog services.CatalogServiceInterface,
	client utils.GenerationClientInterface,
	plans services.TravelPlanServiceInterface,
	log *logger.Logger,
) services.PlanOrchestratorInterface {
	return services.NewPlanOrchestrator(catalog, client, plans, log)
}
