package router

import (
	"github.com/labstack/echo/v4"

	"ubjewellers/internal/adapter/api/handler"
	"ubjewellers/internal/adapter/api/middleware"
)

func SetupOrderRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, rateLimit echo.MiddlewareFunc) {
	orderHandler := handler.GetOrderHandler()

	orders := e.Group("/orders")
	orders.Use(authMiddleware.Authenticate)
	orders.POST("", orderHandler.PlaceOrder, rateLimit)
	orders.GET("", orderHandler.ListMyOrders)
	orders.GET("/:id", orderHandler.GetOrder)
	orders.DELETE("/:id", orderHandler.DeleteOrder)

	// legacy path kept for the storefront
	e.DELETE("/delete-order/:id", orderHandler.DeleteOrder, authMiddleware.Authenticate)
}
