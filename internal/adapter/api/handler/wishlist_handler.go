package handler

import (
	"github.com/labstack/echo/v4"

	"ubjewellers/internal/adapter/api/middleware"
	"ubjewellers/internal/usecase"
	"ubjewellers/pkg/response"
)

type WishlistHandler struct {
	wishlistUseCase *usecase.WishlistUseCase
}

func NewWishlistHandler(wishlistUseCase *usecase.WishlistUseCase) *WishlistHandler {
	return &WishlistHandler{
		wishlistUseCase: wishlistUseCase,
	}
}

type addToWishlistRequest struct {
	ProductID string `json:"productId" validate:"required"`
}

func (h *WishlistHandler) AddToWishlist(c echo.Context) error {
	var req addToWishlistRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	item, err := h.wishlistUseCase.AddToWishlist(c.Request().Context(), middleware.Email(c), req.ProductID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, item)
}

func (h *WishlistHandler) GetWishlist(c echo.Context) error {
	items, err := h.wishlistUseCase.GetWishlist(c.Request().Context(), middleware.Email(c))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, items)
}

func (h *WishlistHandler) RemoveFromWishlist(c echo.Context) error {
	if err := h.wishlistUseCase.RemoveFromWishlist(c.Request().Context(), middleware.Email(c), c.Param("productId")); err != nil {
		return response.Error(c, err)
	}

	return response.Message(c, "Product removed from wishlist")
}
