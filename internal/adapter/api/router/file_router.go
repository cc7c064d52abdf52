package router

import (
	"github.com/labstack/echo/v4"

	"ubjewellers/internal/adapter/api/handler"
	"ubjewellers/internal/adapter/api/middleware"
)

func SetupFileRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, rateLimit echo.MiddlewareFunc) {
	fileHandler := handler.GetFileHandler()

	e.POST("/upload-image", fileHandler.UploadImage, authMiddleware.Authenticate, rateLimit)
}
