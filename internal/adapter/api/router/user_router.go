package router

import (
	"github.com/labstack/echo/v4"

	"ubjewellers/internal/adapter/api/handler"
	"ubjewellers/internal/adapter/api/middleware"
)

func SetupUserRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	userHandler := handler.GetUserHandler()

	users := e.Group("/users")
	users.Use(authMiddleware.Authenticate)
	users.POST("", userHandler.SaveProfile)
	users.GET("/me", userHandler.GetMe)
	users.PUT("/me/shipping-address", userHandler.SetShippingAddress)
	users.DELETE("/me/shipping-address", userHandler.RemoveShippingAddress)
}
