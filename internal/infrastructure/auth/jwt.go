package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"ubjewellers/internal/domain/service"
	"ubjewellers/pkg/errors"
)

type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// JWTManager signs and verifies HS256 access tokens carrying the caller's
// email.
type JWTManager struct {
	secret []byte
	now    func() time.Time
}

func NewJWTManager(secret string) *JWTManager {
	return &JWTManager{secret: []byte(secret), now: time.Now}
}

var (
	_ service.TokenIssuer   = (*JWTManager)(nil)
	_ service.TokenVerifier = (*JWTManager)(nil)
)

func (m *JWTManager) Sign(claims service.TokenClaims, ttl time.Duration) (string, error) {
	now := m.now().UTC()
	c := &Claims{
		Email: claims.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   claims.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign access token: %w", err)
	}
	return signed, nil
}

func (m *JWTManager) Verify(_ context.Context, tokenString string) (*service.TokenClaims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, errors.Unauthorized("unauthorized access", err)
	}
	if !token.Valid || claims.Email == "" {
		return nil, errors.Unauthorized("unauthorized access", nil)
	}

	out := &service.TokenClaims{Email: claims.Email}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}
