// Package routes provides HTTP route configurations.
package routes

import (
	"github.com/gin-gonic/gin"

	"subcommerce/internal/interfaces/http/handlers"
	"subcommerce/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for authentication routes.
type AuthRouteConfig struct {
	AuthHandler    *handlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
	RateLimiter    *middleware.RateLimiter
}

// SetupAuthRoutes configures authentication routes. Failed logins are also
// throttled per email and address by the login use case.
func SetupAuthRoutes(api *gin.RouterGroup, cfg *AuthRouteConfig) {
	auth := api.Group("/auth")
	{
		auth.POST("/register", cfg.RateLimiter.Limit(), cfg.AuthHandler.Register)
		auth.POST("/login", cfg.RateLimiter.Limit(), cfg.AuthHandler.Login)
		auth.POST("/logout", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.Logout)
	}
}
