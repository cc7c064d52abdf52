package handler

import (
	"github.com/labstack/echo/v4"

	"ubjewellers/internal/adapter/api/middleware"
	"ubjewellers/internal/domain/entity"
	"ubjewellers/internal/usecase"
	"ubjewellers/pkg/response"
	"ubjewellers/pkg/utils"
)

type UserHandler struct {
	userUseCase *usecase.UserUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

func (h *UserHandler) SaveProfile(c echo.Context) error {
	var req usecase.UpsertUserInput
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.userUseCase.SaveProfile(c.Request().Context(), middleware.Email(c), req)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *UserHandler) GetMe(c echo.Context) error {
	user, err := h.userUseCase.GetUser(c.Request().Context(), middleware.Email(c))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *UserHandler) SetShippingAddress(c echo.Context) error {
	var req entity.Address
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.userUseCase.SetShippingAddress(c.Request().Context(), middleware.Email(c), req)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *UserHandler) RemoveShippingAddress(c echo.Context) error {
	if err := h.userUseCase.RemoveShippingAddress(c.Request().Context(), middleware.Email(c)); err != nil {
		return response.Error(c, err)
	}

	return response.Message(c, "Shipping address removed")
}

func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.userUseCase.ListUsers(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, users)
}

func (h *UserHandler) UpdateRoles(c echo.Context) error {
	var req usecase.UpdateRolesInput
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	email := utils.NormalizeEmail(c.Param("email"))
	user, err := h.userUseCase.UpdateRoles(c.Request().Context(), middleware.Actor(c), email, req)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *UserHandler) DeleteUser(c echo.Context) error {
	email := utils.NormalizeEmail(c.Param("email"))
	if err := h.userUseCase.DeleteUser(c.Request().Context(), middleware.Actor(c), email); err != nil {
		return response.Error(c, err)
	}

	return response.Message(c, "User deleted successfully")
}
