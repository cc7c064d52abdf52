package router

import (
	"github.com/labstack/echo/v4"

	"ubjewellers/internal/adapter/api/handler"
	"ubjewellers/internal/adapter/api/middleware"
)

func SetupWebSocketRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, wsHandler *handler.WebSocketHandler) {
	e.GET("/admin-dashboard/live", wsHandler.HandleLiveDashboard, authMiddleware.Authenticate, middleware.AdminOnly)
}
