package router

import (
	"github.com/labstack/echo/v4"

	"ubjewellers/internal/adapter/api/handler"
	"ubjewellers/internal/adapter/api/middleware"
	"ubjewellers/internal/infrastructure/ratelimit"
)

// Setup mounts every route. handler.Setup must have run first.
func Setup(
	e *echo.Echo,
	authMiddleware *middleware.AuthMiddleware,
	limiter *ratelimit.RateLimiter,
	wsHandler *handler.WebSocketHandler,
	healthHandler *handler.HealthHandler,
) {
	rateLimit := middleware.RateLimit(limiter)

	SetupHealthRouter(e, healthHandler)
	SetupAuthRouter(e, rateLimit)
	SetupUserRouter(e, authMiddleware)
	SetupProductRouter(e, authMiddleware)
	SetupCategoryRouter(e)
	SetupReviewRouter(e, authMiddleware)
	SetupCartRouter(e, authMiddleware)
	SetupWishlistRouter(e, authMiddleware)
	SetupOrderRouter(e, authMiddleware, rateLimit)
	SetupPaymentRouter(e, authMiddleware, rateLimit)
	SetupFileRouter(e, authMiddleware, rateLimit)
	SetupAdminRouter(e, authMiddleware)
	SetupSellerRouter(e, authMiddleware)
	SetupWebSocketRouter(e, authMiddleware, wsHandler)
}
