package catalog_fx

import (
	"darwinplanner/internal/repositories"
	"darwinplanner/internal/services"
	"darwinplanner/pkg/logger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Provide(
	provideAttractionRepo, provideRestaurantRepo, provideCatalogService)

func provideAttractionRepo(db *gorm.DB) repositories.AttractionRepository {
	return repositories.NewAttractionRepository(db)
}

func provideRestaurantRepo(db *gorm.DB) repositories.RestaurantRepository {
	return repositories.NewRestaurantRepository(db)
}

func provideCatalogService(
	attractionRepo repositories.AttractionRepository,
	restaurantRepo repositories.RestaurantRepository,
	log *logger.Logger,
) services.CatalogServiceInterface {
	return services.NewCatalogService(attractionRepo, restaurantRepo, log)
}
