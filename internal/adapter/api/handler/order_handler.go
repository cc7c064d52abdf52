package handler

import (
	"github.com/labstack/echo/v4"

	"ubjewellers/internal/adapter/api/middleware"
	"ubjewellers/internal/usecase"
	"ubjewellers/pkg/response"
)

type OrderHandler struct {
	orderUseCase *usecase.OrderUseCase
}

func NewOrderHandler(orderUseCase *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{
		orderUseCase: orderUseCase,
	}
}

type updateOrderStatusRequest struct {
	OrderStatus string `json:"orderStatus" validate:"required"`
}

// PlaceOrder records the order and takes its units out of stock.
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	var req usecase.PlaceOrderInput
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	order, err := h.orderUseCase.PlaceOrder(c.Request().Context(), middleware.Email(c), req)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, order)
}

func (h *OrderHandler) ListMyOrders(c echo.Context) error {
	orders, err := h.orderUseCase.ListMyOrders(c.Request().Context(), middleware.Email(c))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, orders)
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	order, err := h.orderUseCase.GetOrder(c.Request().Context(), c.Param("id"), middleware.Actor(c))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, order)
}

func (h *OrderHandler) DeleteOrder(c echo.Context) error {
	if err := h.orderUseCase.DeleteOrder(c.Request().Context(), c.Param("id"), middleware.Actor(c)); err != nil {
		return response.Error(c, err)
	}

	return response.Message(c, "Order deleted successfully")
}

func (h *OrderHandler) ListAllOrders(c echo.Context) error {
	orders, err := h.orderUseCase.ListAllOrders(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, orders)
}

func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	var req updateOrderStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	order, err := h.orderUseCase.UpdateStatus(c.Request().Context(), c.Param("id"), req.OrderStatus)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, order)
}
