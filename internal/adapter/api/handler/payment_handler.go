package handler

import (
	"github.com/labstack/echo/v4"

	"ubjewellers/internal/usecase"
	"ubjewellers/pkg/response"
)

type PaymentHandler struct {
	paymentUseCase *usecase.PaymentUseCase
}

func NewPaymentHandler(paymentUseCase *usecase.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{
		paymentUseCase: paymentUseCase,
	}
}

func (h *PaymentHandler) CreatePaymentIntent(c echo.Context) error {
	var req usecase.PaymentIntentInput
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	secret, err := h.paymentUseCase.CreatePaymentIntent(c.Request().Context(), req)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"clientSecret": secret})
}
