package handler

import (
	"github.com/labstack/echo/v4"

	"ubjewellers/internal/adapter/api/middleware"
	"ubjewellers/internal/usecase"
	"ubjewellers/pkg/response"
)

type CartHandler struct {
	cartUseCase *usecase.CartUseCase
}

func NewCartHandler(cartUseCase *usecase.CartUseCase) *CartHandler {
	return &CartHandler{
		cartUseCase: cartUseCase,
	}
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}

func (h *CartHandler) ListItems(c echo.Context) error {
	items, err := h.cartUseCase.ListItems(c.Request().Context(), middleware.Email(c))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, items)
}

func (h *CartHandler) AddItem(c echo.Context) error {
	var req usecase.AddCartItemInput
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	item, err := h.cartUseCase.AddItem(c.Request().Context(), middleware.Email(c), req)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, item)
}

func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	var req updateQuantityRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	item, err := h.cartUseCase.UpdateQuantity(c.Request().Context(), middleware.Email(c), c.Param("id"), req.Quantity)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, item)
}

func (h *CartHandler) RemoveItem(c echo.Context) error {
	if err := h.cartUseCase.RemoveItem(c.Request().Context(), middleware.Email(c), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Message(c, "Item removed from cart")
}

func (h *CartHandler) Clear(c echo.Context) error {
	deleted, err := h.cartUseCase.Clear(c.Request().Context(), middleware.Email(c))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]int64{"deletedCount": deleted})
}
