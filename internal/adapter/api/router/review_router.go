package router

import (
	"github.com/labstack/echo/v4"

	"ubjewellers/internal/adapter/api/handler"
	"ubjewellers/internal/adapter/api/middleware"
)

func SetupReviewRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	reviewHandler := handler.GetReviewHandler()

	e.GET("/reviews", reviewHandler.ListReviews)
	e.GET("/products/:id/reviews", reviewHandler.ListProductReviews)
	e.POST("/products/:id/reviews", reviewHandler.CreateReview, authMiddleware.Authenticate)
	e.POST("/reviews/:id/like", reviewHandler.LikeReview, authMiddleware.Authenticate)
}
