// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"commerce/config"
	"commerce/internal/delivery/api/middleware"
	"commerce/internal/delivery/api/router/handler"
	"commerce/internal/domain/entity"
	"commerce/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CartHandler    *handler.CartHandler
	OrderHandler   *handler.OrderHandler
	CatalogHandler *handler.CatalogHandler
	AuthMiddleware *middleware.AuthMiddleware
	Metrics        *metrics.Recorder `optional:"true"`
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	cartHandler    *handler.CartHandler
	orderHandler   *handler.OrderHandler
	catalogHandler *handler.CatalogHandler
	authMiddleware *middleware.AuthMiddleware
	metrics        *metrics.Recorder
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cartHandler:    params.CartHandler,
		orderHandler:   params.OrderHandler,
		catalogHandler: params.CatalogHandler,
		authMiddleware: params.AuthMiddleware,
		metrics:        params.Metrics,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	if r.metricsEnabled() {
		e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))
	}

	apiV1 := e.Group("/api/v1")

	catalogGroup := apiV1.Group("/catalog/products")
	{
		catalogGroup.GET("/:id/price", r.catalogHandler.GetPrice)
		catalogGroup.GET("/:id/availability", r.catalogHandler.GetAvailability)
	}

	// Guests address their cart with X-Session-Token; signed-in users with their token.
	cartGroup := apiV1.Group("/cart")
	cartGroup.Use(r.authMiddleware.OptionalAuth)
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.DELETE("", r.cartHandler.ClearCart)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.PATCH("/items/:id", r.cartHandler.UpdateItem)
		cartGroup.DELETE("/items/:id", r.cartHandler.RemoveItem)
		cartGroup.POST("/merge", r.cartHandler.MergeGuestCart, r.authMiddleware.Authenticate)
	}

	apiV1.POST("/checkout", r.orderHandler.Checkout, r.authMiddleware.Authenticate)

	ordersGroup := apiV1.Group("/orders")
	ordersGroup.Use(r.authMiddleware.Authenticate)
	{
		ordersGroup.GET("", r.orderHandler.ListOrders)
		ordersGroup.GET("/:id", r.orderHandler.GetOrder)
	}

	adminGroup := apiV1.Group("/admin/orders")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.POST("", r.orderHandler.PlaceOrder)
		adminGroup.PUT("/:id/status", r.orderHandler.UpdateStatus)
		adminGroup.PUT("/:id/payment-status", r.orderHandler.UpdatePaymentStatus)
		adminGroup.PUT("/:id/amounts", r.orderHandler.AdjustAmounts)
		adminGroup.POST("/:id/recalculate", r.orderHandler.RecalculateTotal)
	}
}

func (r *router) metricsEnabled() bool {
	return r.metrics != nil && r.config.Metrics != nil && r.config.Metrics.Enabled
}
