package routes

import (
	"github.com/gin-gonic/gin"

	"subcommerce/internal/domain/authorization"
	"subcommerce/internal/interfaces/http/handlers"
	"subcommerce/internal/interfaces/http/middleware"
)

type ProductRouteConfig struct {
	ProductHandler       *handlers.ProductHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupProductRoutes(api *gin.RouterGroup, cfg *ProductRouteConfig) {
	products := api.Group("/products")
	products.Use(cfg.AuthMiddleware.RequireAuth())
	{
		perm := cfg.PermissionMiddleware
		products.GET("", perm.RequirePermission(authorization.ResourceProducts, authorization.ActionViewAny), cfg.ProductHandler.ListProducts)
		products.POST("", perm.RequirePermission(authorization.ResourceProducts, authorization.ActionCreate), cfg.ProductHandler.CreateProduct)
		products.GET("/:id", perm.RequirePermission(authorization.ResourceProducts, authorization.ActionView), cfg.ProductHandler.GetProduct)
		products.PUT("/:id", perm.RequirePermission(authorization.ResourceProducts, authorization.ActionUpdate), cfg.ProductHandler.UpdateProduct)
		products.DELETE("/:id", perm.RequirePermission(authorization.ResourceProducts, authorization.ActionDelete), cfg.ProductHandler.DeleteProduct)
	}
}
