package router

import (
	"github.com/labstack/echo/v4"

	"ubjewellers/internal/adapter/api/handler"
	"ubjewellers/internal/adapter/api/middleware"
)

func SetupPaymentRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, rateLimit echo.MiddlewareFunc) {
	paymentHandler := handler.GetPaymentHandler()

	e.POST("/create-payment-intent", paymentHandler.CreatePaymentIntent, authMiddleware.Authenticate, rateLimit)
}
