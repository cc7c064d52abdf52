package router

import (
	"github.com/labstack/echo/v4"

	"ubjewellers/internal/adapter/api/handler"
)

func SetupAuthRouter(e *echo.Echo, rateLimit echo.MiddlewareFunc) {
	authHandler := handler.GetAuthHandler()

	e.POST("/jwt", authHandler.IssueToken, rateLimit)
}
