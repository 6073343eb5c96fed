package travel_plan_fx

import (
	"darwinplanner/internal/repositories"
	"darwinplanner/internal/services"
	"darwinplanner/pkg/logger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Provide(provideTravelPlanRepo, provideTravelPlanService)

func provideTravelPlanRepo(db *gorm.DB) repositories.TravelPlanRepository {
	return repositories.NewTravelPlanRepository(db)
}

func provideTravelPlanService(planRepo repositories.TravelPlanRepository, catalog services.CatalogServiceInterface, log *logger.Logger) services.TravelPlanServiceInterface {
	return services.NewTravelPlanService(planRepo, catalog, log)
}
