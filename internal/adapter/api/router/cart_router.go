package router

import (
	"github.com/labstack/echo/v4"

	"ubjewellers/internal/adapter/api/handler"
	"ubjewellers/internal/adapter/api/middleware"
)

func SetupCartRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	cartHandler := handler.GetCartHandler()

	carts := e.Group("/carts")
	carts.Use(authMiddleware.Authenticate)
	carts.GET("", cartHandler.ListItems)
	carts.POST("", cartHandler.AddItem)
	carts.DELETE("", cartHandler.Clear)
	carts.PATCH("/:id", cartHandler.UpdateQuantity)
	carts.DELETE("/:id", cartHandler.RemoveItem)
}
