package router

import (
	"github.com/labstack/echo/v4"

	"ubjewellers/internal/adapter/api/handler"
	"ubjewellers/internal/adapter/api/middleware"
)

func SetupProductRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	productHandler := handler.GetProductHandler()

	products := e.Group("/products")
	products.GET("", productHandler.ListProducts)
	products.GET("/filter", productHandler.FilterProducts)
	products.GET("/category/:category", productHandler.ListByCategory)
	products.GET("/:id", productHandler.GetProduct)

	// route-level middleware keeps the public group free of auth
	sellerOnly := []echo.MiddlewareFunc{authMiddleware.Authenticate, middleware.SellerOnly}
	products.POST("", productHandler.CreateProduct, sellerOnly...)
	products.PUT("/:id", productHandler.UpdateProduct, sellerOnly...)
	products.DELETE("/:id", productHandler.DeleteProduct, sellerOnly...)

	e.GET("/my-products", productHandler.ListMyProducts, sellerOnly...)
}
