package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"ubjewellers/internal/adapter/api/middleware"
	"ubjewellers/internal/usecase"
	"ubjewellers/pkg/response"
	"ubjewellers/pkg/utils"
)

// DashboardHandler serves the admin and seller analytics endpoints.
type DashboardHandler struct {
	dashboardUseCase *usecase.DashboardUseCase
	categoryUseCase  *usecase.CategoryUseCase
	now              func() time.Time
}

func NewDashboardHandler(dashboardUseCase *usecase.DashboardUseCase, categoryUseCase *usecase.CategoryUseCase) *DashboardHandler {
	return &DashboardHandler{
		dashboardUseCase: dashboardUseCase,
		categoryUseCase:  categoryUseCase,
		now:              time.Now,
	}
}

func (h *DashboardHandler) GetStats(c echo.Context) error {
	stats, err := h.dashboardUseCase.ComputeStats(c.Request().Context(), h.now())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, stats)
}

func (h *DashboardHandler) GetIncomeStats(c echo.Context) error {
	stats, err := h.dashboardUseCase.ComputeIncomeStats(c.Request().Context(), h.now())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, stats)
}

func (h *DashboardHandler) GetTopCategories(c echo.Context) error {
	limit, err := utils.QueryInt(c, "limit", 0)
	if err != nil {
		return response.Error(c, err)
	}

	top, err := h.dashboardUseCase.TopCategories(c.Request().Context(), limit)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, top)
}

func (h *DashboardHandler) GetCategoryRollup(c echo.Context) error {
	categories, err := h.categoryUseCase.ListWithCounts(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, categories)
}

func (h *DashboardHandler) GetSalesSeries(c echo.Context) error {
	series, err := h.dashboardUseCase.SalesSeries(c.Request().Context(), h.now())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, series)
}

func (h *DashboardHandler) GetSellerStats(c echo.Context) error {
	stats, err := h.dashboardUseCase.SellerStats(c.Request().Context(), middleware.Email(c))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, stats)
}
