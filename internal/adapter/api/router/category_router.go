package router

import (
	"github.com/labstack/echo/v4"

	"ubjewellers/internal/adapter/api/handler"
)

func SetupCategoryRouter(e *echo.Echo) {
	categoryHandler := handler.GetCategoryHandler()

	e.GET("/categories", categoryHandler.ListCategories)
}
