package handler

import (
	"github.com/labstack/echo/v4"

	"ubjewellers/internal/usecase"
	"ubjewellers/pkg/response"
)

type AuthHandler struct {
	authUseCase *usecase.AuthUseCase
}

func NewAuthHandler(authUseCase *usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

// IssueToken exchanges a signed-in storefront user's email for an API token.
func (h *AuthHandler) IssueToken(c echo.Context) error {
	var req usecase.IssueTokenInput
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	token, err := h.authUseCase.IssueToken(c.Request().Context(), req.Email)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"token": token})
}
