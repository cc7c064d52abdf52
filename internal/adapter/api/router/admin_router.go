package router

import (
	"github.com/labstack/echo/v4"

	"ubjewellers/internal/adapter/api/handler"
	"ubjewellers/internal/adapter/api/middleware"
)

func SetupAdminRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	dashboardHandler := handler.GetDashboardHandler()
	categoryHandler := handler.GetCategoryHandler()
	userHandler := handler.GetUserHandler()
	orderHandler := handler.GetOrderHandler()

	dashboard := e.Group("/admin-dashboard")
	dashboard.Use(authMiddleware.Authenticate, middleware.AdminOnly)
	dashboard.GET("/stats", dashboardHandler.GetStats)
	dashboard.GET("/income-stats", dashboardHandler.GetIncomeStats)
	dashboard.GET("/top-categories", dashboardHandler.GetTopCategories)
	dashboard.GET("/sales", dashboardHandler.GetSalesSeries)

	admin := e.Group("/admin")
	admin.Use(authMiddleware.Authenticate, middleware.AdminOnly)
	admin.GET("/categories", dashboardHandler.GetCategoryRollup)
	admin.POST("/categories", categoryHandler.CreateCategory)
	admin.PUT("/categories/:id", categoryHandler.UpdateCategory)
	admin.DELETE("/categories/:id", categoryHandler.DeleteCategory)

	admin.GET("/users", userHandler.ListUsers)
	admin.PATCH("/users/:email/roles", userHandler.UpdateRoles)
	admin.DELETE("/users/:email", userHandler.DeleteUser)

	admin.GET("/orders", orderHandler.ListAllOrders)
	admin.PATCH("/orders/:id/status", orderHandler.UpdateStatus)
}
