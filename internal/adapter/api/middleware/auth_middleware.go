package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"ubjewellers/internal/usecase"
	"ubjewellers/pkg/errors"
)

const (
	emailKey = "email"
	actorKey = "actor"
)

type AuthMiddleware struct {
	authUseCase *usecase.AuthUseCase
}

func NewAuthMiddleware(authUseCase *usecase.AuthUseCase) *AuthMiddleware {
	return &AuthMiddleware{
		authUseCase: authUseCase,
	}
}

// Authenticate accepts a bearer token, or a token query parameter for
// websocket upgrades where browsers cannot set headers.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, err := bearerToken(c)
		if err != nil {
			return err
		}

		ctx := c.Request().Context()
		claims, err := m.authUseCase.Authenticate(ctx, token)
		if err != nil {
			return err
		}

		actor, err := m.authUseCase.ResolveActor(ctx, claims.Email)
		if err != nil {
			return err
		}

		c.Set(emailKey, claims.Email)
		c.Set(actorKey, actor)
		return next(c)
	}
}

func bearerToken(c echo.Context) (string, error) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		if token := c.QueryParam("token"); token != "" {
			return token, nil
		}
		return "", errors.Unauthorized("unauthorized access", nil)
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", errors.Unauthorized("invalid authorization format", nil)
	}
	return strings.TrimSpace(parts[1]), nil
}

// Email returns the authenticated caller's email.
func Email(c echo.Context) string {
	email, _ := c.Get(emailKey).(string)
	return email
}

func Actor(c echo.Context) usecase.Actor {
	actor, _ := c.Get(actorKey).(usecase.Actor)
	return actor
}

// SetActor is used by tests to bypass token verification.
func SetActor(c echo.Context, actor usecase.Actor) {
	c.Set(emailKey, actor.Email)
	c.Set(actorKey, actor)
}
