package middleware

import (
	"github.com/labstack/echo/v4"

	"ubjewellers/pkg/errors"
)

// AdminOnly must run after Authenticate.
func AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		actor := Actor(c)
		if actor.Email == "" {
			return errors.Unauthorized("unauthorized access", nil)
		}
		if !actor.IsAdmin {
			return errors.Forbidden("admin privileges required", nil)
		}
		return next(c)
	}
}

// SellerOnly lets sellers through; admins may act on any listing.
func SellerOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		actor := Actor(c)
		if actor.Email == "" {
			return errors.Unauthorized("unauthorized access", nil)
		}
		if !actor.IsSeller && !actor.IsAdmin {
			return errors.Forbidden("seller privileges required", nil)
		}
		return next(c)
	}
}
