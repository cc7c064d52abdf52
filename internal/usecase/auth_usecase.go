package usecase

import (
	"context"
	"net/mail"
	"strings"
	"time"

	"ubjewellers/internal/domain/repository"
	"ubjewellers/internal/domain/service"
	"ubjewellers/pkg/errors"
)

type AuthUseCase struct {
	issuer    service.TokenIssuer
	verifiers []service.TokenVerifier
	userRepo  repository.UserRepository
	ttl       time.Duration
}

// NewAuthUseCase builds the token flow. Verifiers are tried in order, so the
// locally issued JWT verifier should come first.
func NewAuthUseCase(
	issuer service.TokenIssuer,
	userRepo repository.UserRepository,
	ttl time.Duration,
	verifiers ...service.TokenVerifier,
) *AuthUseCase {
	return &AuthUseCase{
		issuer:    issuer,
		verifiers: verifiers,
		userRepo:  userRepo,
		ttl:       ttl,
	}
}

type IssueTokenInput struct {
	Email string `json:"email" validate:"required,email"`
}

func (uc *AuthUseCase) IssueToken(ctx context.Context, email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return "", errors.Validation("a valid email is required", err)
	}

	token, err := uc.issuer.Sign(service.TokenClaims{Email: email}, uc.ttl)
	if err != nil {
		return "", errors.Internal("Failed to sign token", err)
	}
	return token, nil
}

func (uc *AuthUseCase) Authenticate(ctx context.Context, token string) (*service.TokenClaims, error) {
	if token == "" {
		return nil, errors.Unauthorized("unauthorized access", nil)
	}

	var lastErr error
	for _, v := range uc.verifiers {
		claims, err := v.Verify(ctx, token)
		if err == nil {
			return claims, nil
		}
		lastErr = err
	}
	return nil, errors.Unauthorized("unauthorized access", lastErr)
}

// ResolveActor loads the caller's capability flags. A caller with a valid
// token but no user record yet acts without privileges.
func (uc *AuthUseCase) ResolveActor(ctx context.Context, email string) (Actor, error) {
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.IsNotFound(err) {
			return Actor{Email: email}, nil
		}
		return Actor{}, err
	}
	return ActorFromUser(user), nil
}
