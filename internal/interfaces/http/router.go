package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "subcommerce/docs"
	"subcommerce/internal/infrastructure/config"
	"subcommerce/internal/interfaces/http/middleware"
	"subcommerce/internal/interfaces/http/routes"
	"subcommerce/internal/shared/logger"
	"subcommerce/internal/shared/utils"
)

// Router represents the HTTP router configuration
type Router struct {
	*Container
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Router, error) {
	c, err := NewContainer(db, cfg, log)
	if err != nil {
		return nil, err
	}
	return &Router{Container: c}, nil
}

// SetupRoutes configures all HTTP routes under /api.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.log.Named("http")))
	r.engine.Use(middleware.Recovery(r.log.Named("http")))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/health", r.health)

	api := r.engine.Group("/api")
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	routes.SetupAuthRoutes(api, &routes.AuthRouteConfig{
		AuthHandler:    r.hdlrs.authHandler,
		AuthMiddleware: r.authMiddleware,
		RateLimiter:    r.rateLimiter,
	})
	routes.SetupProductRoutes(api, &routes.ProductRouteConfig{
		ProductHandler:       r.hdlrs.productHandler,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
	})
	routes.SetupSubscriptionRoutes(api, &routes.SubscriptionRouteConfig{
		SubscriptionHandler:  r.hdlrs.subscriptionHandler,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
	})
	routes.SetupPaymentRoutes(api, &routes.PaymentRouteConfig{
		PaymentHandler: r.hdlrs.paymentHandler,
		WebhookHandler: r.hdlrs.webhookHandler,
		AuthMiddleware: r.authMiddleware,
	})
}

func (r *Router) health(c *gin.Context) {
	sqlDB, err := r.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err == nil {
		err = r.redis.Ping(c.Request.Context()).Err()
	}
	if err != nil {
		r.log.Warnw("health check failed", "error", err)
		utils.ErrorResponse(c, http.StatusServiceUnavailable, "unhealthy")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"status": "ok"})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// StartScheduler starts the subscription expiry sweep.
func (r *Router) StartScheduler() {
	r.schedulerManager.Start()
}
