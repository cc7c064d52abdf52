package router

import (
	"github.com/labstack/echo/v4"

	"ubjewellers/internal/adapter/api/handler"
	"ubjewellers/internal/adapter/api/middleware"
)

func SetupWishlistRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	wishlistHandler := handler.GetWishlistHandler()

	wishlist := e.Group("/wishlist")
	wishlist.Use(authMiddleware.Authenticate)
	wishlist.GET("", wishlistHandler.GetWishlist)
	wishlist.POST("", wishlistHandler.AddToWishlist)
	wishlist.DELETE("/:productId", wishlistHandler.RemoveFromWishlist)
}
