package handler

import (
	"github.com/labstack/echo/v4"

	"ubjewellers/internal/usecase"
	"ubjewellers/pkg/response"
)

type CategoryHandler struct {
	categoryUseCase *usecase.CategoryUseCase
}

func NewCategoryHandler(categoryUseCase *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{
		categoryUseCase: categoryUseCase,
	}
}

func (h *CategoryHandler) ListCategories(c echo.Context) error {
	categories, err := h.categoryUseCase.ListCategories(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, categories)
}

func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	var req usecase.CategoryInput
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	category, err := h.categoryUseCase.CreateCategory(c.Request().Context(), req)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, category)
}

func (h *CategoryHandler) UpdateCategory(c echo.Context) error {
	var req usecase.CategoryInput
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	category, err := h.categoryUseCase.UpdateCategory(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, category)
}

func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	if err := h.categoryUseCase.DeleteCategory(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Message(c, "Category deleted successfully")
}
