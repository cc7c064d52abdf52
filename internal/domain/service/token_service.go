package service

import (
	"context"
	"time"
)

type TokenClaims struct {
	Email     string
	ExpiresAt time.Time
}

type TokenIssuer interface {
	Sign(claims TokenClaims, ttl time.Duration) (string, error)
}

// TokenVerifier returns an unauthorized AppError for missing, malformed or
// expired tokens.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*TokenClaims, error)
}
