package handler

import (
	"github.com/labstack/echo/v4"

	"ubjewellers/internal/adapter/api/middleware"
	"ubjewellers/internal/usecase"
	"ubjewellers/pkg/response"
)

type ReviewHandler struct {
	reviewUseCase *usecase.ReviewUseCase
}

func NewReviewHandler(reviewUseCase *usecase.ReviewUseCase) *ReviewHandler {
	return &ReviewHandler{
		reviewUseCase: reviewUseCase,
	}
}

func (h *ReviewHandler) ListReviews(c echo.Context) error {
	reviews, err := h.reviewUseCase.ListReviews(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, reviews)
}

func (h *ReviewHandler) ListProductReviews(c echo.Context) error {
	reviews, err := h.reviewUseCase.ListProductReviews(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, reviews)
}

func (h *ReviewHandler) CreateReview(c echo.Context) error {
	var req usecase.CreateReviewInput
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	review, err := h.reviewUseCase.CreateReview(c.Request().Context(), middleware.Email(c), c.Param("id"), req)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, review)
}

func (h *ReviewHandler) LikeReview(c echo.Context) error {
	review, err := h.reviewUseCase.LikeReview(c.Request().Context(), c.Param("id"), middleware.Email(c))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, review)
}
