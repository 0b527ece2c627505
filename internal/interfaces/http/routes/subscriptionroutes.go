package routes

import (
	"github.com/gin-gonic/gin"

	"subcommerce/internal/domain/authorization"
	"subcommerce/internal/interfaces/http/handlers"
	"subcommerce/internal/interfaces/http/middleware"
)

type SubscriptionRouteConfig struct {
	SubscriptionHandler  *handlers.SubscriptionHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupSubscriptionRoutes configures /subscriptions. Reads and cancellation
// of a single subscription are owner-checked inside the use cases.
func SetupSubscriptionRoutes(api *gin.RouterGroup, cfg *SubscriptionRouteConfig) {
	subscriptions := api.Group("/subscriptions")
	subscriptions.Use(cfg.AuthMiddleware.RequireAuth())
	{
		perm := cfg.PermissionMiddleware
		subscriptions.GET("", perm.RequirePermission(authorization.ResourceSubscriptions, authorization.ActionViewAny), cfg.SubscriptionHandler.ListSubscriptions)
		subscriptions.POST("", perm.RequirePermission(authorization.ResourceSubscriptions, authorization.ActionCreate), cfg.SubscriptionHandler.CreateSubscription)
		subscriptions.GET("/statistics", cfg.SubscriptionHandler.GetStatistics)
		subscriptions.GET("/:id", cfg.SubscriptionHandler.GetSubscription)
		subscriptions.POST("/:id/cancel", cfg.SubscriptionHandler.CancelSubscription)
	}
}
