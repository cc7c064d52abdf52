package utils

import (
	"math"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"ubjewellers/pkg/errors"
)

// OptionalQuery reports whether the query parameter was sent at all, which
// matters for endpoints that treat "?q=" differently from a missing q.
func OptionalQuery(c echo.Context, name string) (string, bool) {
	values, ok := c.QueryParams()[name]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}

// QueryFloat parses an optional numeric query parameter. NaN and infinities
// are rejected.
func QueryFloat(c echo.Context, name string) (*float64, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, errors.Validation(name+" must be a number", err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, errors.Validation(name+" must be a finite number", nil)
	}
	return &v, nil
}

// QueryInt parses an optional integer query parameter with a fallback.
func QueryInt(c echo.Context, name string, fallback int) (int, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return fallback, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.Validation(name+" must be an integer", err)
	}
	return v, nil
}

// NormalizeEmail lowercases and trims an email so it can be used as a key.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
