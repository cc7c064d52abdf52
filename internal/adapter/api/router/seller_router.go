package router

import (
	"github.com/labstack/echo/v4"

	"ubjewellers/internal/adapter/api/handler"
	"ubjewellers/internal/adapter/api/middleware"
)

func SetupSellerRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	dashboardHandler := handler.GetDashboardHandler()

	seller := e.Group("/seller-dashboard")
	seller.Use(authMiddleware.Authenticate, middleware.SellerOnly)
	seller.GET("/stats", dashboardHandler.GetSellerStats)
	seller.GET("/sales", dashboardHandler.GetSalesSeries)
}
