package middleware

import (
	"math"
	"strconv"

	"github.com/labstack/echo/v4"

	"ubjewellers/internal/infrastructure/ratelimit"
	"ubjewellers/pkg/errors"
	"ubjewellers/pkg/logger"
)

// RateLimit keys buckets by caller email when authenticated, otherwise by
// client IP.
func RateLimit(rl *ratelimit.RateLimiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := Email(c)
			if key == "" {
				key = c.RealIP()
			}

			allowed, wait := rl.Allow(key)
			if !allowed {
				logger.Ctx(c.Request().Context()).Warn().
					Str("key", key).
					Dur("retry_after", wait).
					Msg("rate limit exceeded")

				c.Response().Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
				return errors.TooManyRequests("rate limit exceeded")
			}

			return next(c)
		}
	}
}
