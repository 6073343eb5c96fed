package conversation_fx

import (
	"darwinplanner/internal/config"
	"darwinplanner/internal/planner"
	"darwinplanner/internal/services"
	"darwinplanner/pkg/logger"
	mem "darwinplanner/pkg/memcache"
	"darwinplanner/pkg/utils"
	"go.uber.org/fx"
)

var Module = fx.Provide(provideCollector, provideConversationService)

func provideCollector() *planner.Collector {
	return planner.NewCollector(utils.DarwinLocation(), nil)
}

func provideConversationService(
	collector *planner.Collector,
	sessions mem.SessionStore,
	orchestrator services.PlanOrchestratorInterface,
	cfg *config.Config,
	log *logger.Logger,
) services.ConversationServiceInterface {
	return services.NewConversationService(collector, sessions, orchestrator, services.GoDispatcher,
		cfg.Generation.Timeout, log)
}
