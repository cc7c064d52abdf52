package handler

import (
	"github.com/labstack/echo/v4"

	"ubjewellers/internal/adapter/api/middleware"
	"ubjewellers/internal/domain/entity"
	"ubjewellers/internal/usecase"
	"ubjewellers/pkg/response"
	"ubjewellers/pkg/utils"
)

type ProductHandler struct {
	productUseCase *usecase.ProductUseCase
}

func NewProductHandler(productUseCase *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{
		productUseCase: productUseCase,
	}
}

// ListProducts doubles as the storefront search: ?searchText= narrows the list.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	text, present := utils.OptionalQuery(c, "searchText")

	products, err := h.productUseCase.Search(c.Request().Context(), text, present)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, products)
}

func (h *ProductHandler) FilterProducts(c echo.Context) error {
	minPrice, err := utils.QueryFloat(c, "minPrice")
	if err != nil {
		return response.Error(c, err)
	}
	maxPrice, err := utils.QueryFloat(c, "maxPrice")
	if err != nil {
		return response.Error(c, err)
	}

	products, err := h.productUseCase.Filter(c.Request().Context(), entity.ProductFilter{
		Category: c.QueryParam("category"),
		MinPrice: minPrice,
		MaxPrice: maxPrice,
		Sort:     c.QueryParam("sort"),
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, products)
}

func (h *ProductHandler) ListByCategory(c echo.Context) error {
	products, err := h.productUseCase.ByCategory(c.Request().Context(), c.Param("category"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, products)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	product, err := h.productUseCase.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}

func (h *ProductHandler) ListMyProducts(c echo.Context) error {
	products, err := h.productUseCase.ListBySeller(c.Request().Context(), middleware.Email(c))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, products)
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req usecase.ProductInput
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	product, err := h.productUseCase.CreateProduct(c.Request().Context(), middleware.Actor(c), req)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, product)
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	var req usecase.ProductInput
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	product, err := h.productUseCase.UpdateProduct(c.Request().Context(), c.Param("id"), middleware.Actor(c), req)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	if err := h.productUseCase.DeleteProduct(c.Request().Context(), c.Param("id"), middleware.Actor(c)); err != nil {
		return response.Error(c, err)
	}

	return response.Message(c, "Product deleted successfully")
}
