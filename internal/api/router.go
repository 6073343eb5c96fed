package api

import (
	"net/http"

	"darwinplanner/internal/api/controllers"
	"darwinplanner/internal/config"
	"darwinplanner/pkg/logger"
	"darwinplanner/pkg/middleware"
	"darwinplanner/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config *config.Config
	Log    *logger.Logger
	JWT    *utils.JWTManager

	Accounts      *controllers.AccountController
	Catalog       *controllers.CatalogController
	Conversations *controllers.ConversationController
	TravelPlans   *controllers.TravelPlanController
}

func NewRouter(p RouterParams) *gin.Engine {
	if p.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(p.Log))
	r.Use(middleware.CORSMiddleware(p.Config.App.AllowOrigins))

	RegisterRoutes(r, p)
	return r
}

func RegisterRoutes(r *gin.Engine, p RouterParams) {
	auth := middleware.JWTAuthMiddleware(p.JWT)
	admin := middleware.RoleMiddleware(utils.RoleAdmin)

	r.GET("/healthz", func(c *gin.Context) {
		utils.RespondSuccess(c, gin.H{"status": "ok"}, "")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authGroup := r.Group("/auth")
	authGroup.POST("/signup", p.Accounts.Register)
	authGroup.POST("/login", p.Accounts.Login)
	authGroup.GET("/me", auth, p.Accounts.Me)

	r.GET("/attractions", p.Catalog.ListAttractions)
	r.GET("/attractions/:id", p.Catalog.GetAttraction)
	r.GET("/restaurants", p.Catalog.ListRestaurants)
	r.GET("/restaurants/:id", p.Catalog.GetRestaurant)
	r.POST("/mentions", p.Catalog.ResolveMentions)

	adminGroup := r.Group("/admin", auth, admin)
	adminGroup.POST("/attractions", p.Catalog.CreateAttraction)
	adminGroup.PUT("/attractions/:id", p.Catalog.UpdateAttraction)
	adminGroup.DELETE("/attractions/:id", p.Catalog.DeleteAttraction)
	adminGroup.POST("/restaurants", p.Catalog.CreateRestaurant)
	adminGroup.PUT("/restaurants/:id", p.Catalog.UpdateRestaurant)
	adminGroup.DELETE("/restaurants/:id", p.Catalog.DeleteRestaurant)

	conversations := r.Group("/conversations", auth)
	conversations.POST("", p.Conversations.Start)
	conversations.GET("/:id", p.Conversations.Get)
	conversations.POST("/:id/answers", p.Conversations.Answer)
	conversations.POST("/:id/reset", p.Conversations.Reset)
	conversations.DELETE("/:id", p.Conversations.Discard)

	plans := r.Group("/plans", auth)
	plans.GET("", p.TravelPlans.ListMyTrips)
	plans.GET("/:id", p.TravelPlans.GetTrip)
	plans.DELETE("/:id", p.TravelPlans.DeleteTrip)

	r.NoRoute(func(c *gin.Context) {
		utils.RespondError(c, http.StatusNotFound, "Route not found")
	})
}
