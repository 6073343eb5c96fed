package controllers_fx

import (
	"darwinplanner/internal/api/controllers"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewCatalogController),
	fx.Provide(controllers.NewConversationController),
	fx.Provide(controllers.NewTravelPlanController))
