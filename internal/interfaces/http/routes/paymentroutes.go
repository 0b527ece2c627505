package routes

import (
	"github.com/gin-gonic/gin"

	"subcommerce/internal/interfaces/http/handlers"
	"subcommerce/internal/interfaces/http/middleware"
)

// PaymentRouteConfig holds dependencies for payment routes.
type PaymentRouteConfig struct {
	PaymentHandler *handlers.PaymentHandler
	WebhookHandler *handlers.WebhookHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupPaymentRoutes configures checkout, payment history, the browser
// landing pages and the gateway webhook.
func SetupPaymentRoutes(api *gin.RouterGroup, cfg *PaymentRouteConfig) {
	payments := api.Group("/payments")
	payments.Use(cfg.AuthMiddleware.RequireAuth())
	{
		payments.GET("", cfg.PaymentHandler.ListPayments)
		payments.POST("/checkout", cfg.PaymentHandler.Checkout)
	}

	landing := api.Group("/payment")
	{
		landing.GET("/success", cfg.PaymentHandler.CheckoutSuccess)
		landing.GET("/cancel", cfg.PaymentHandler.CheckoutCancel)
	}

	api.POST("/webhook/stripe", cfg.WebhookHandler.HandleStripe)
}
