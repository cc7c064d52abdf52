package firebase

import (
	"context"
	"time"

	"firebase.google.com/go/v4/auth"

	"ubjewellers/internal/domain/service"
	"ubjewellers/pkg/errors"
)

// FirebaseAuthClient accepts Firebase ID tokens from the storefront's
// sign-in flow as an alternative to locally issued JWTs.
type FirebaseAuthClient struct {
	client *auth.Client
}

func NewFirebaseAuthClient(client *auth.Client) *FirebaseAuthClient {
	return &FirebaseAuthClient{
		client: client,
	}
}

var _ service.TokenVerifier = (*FirebaseAuthClient)(nil)

func (f *FirebaseAuthClient) Verify(ctx context.Context, token string) (*service.TokenClaims, error) {
	result, err := f.client.VerifyIDToken(ctx, token)
	if err != nil {
		return nil, errors.Unauthorized("invalid or expired token", err)
	}

	email, _ := result.Claims["email"].(string)
	if email == "" {
		user, err := f.client.GetUser(ctx, result.UID)
		if err != nil {
			return nil, errors.Unauthorized("token has no email", err)
		}
		email = user.Email
	}
	if email == "" {
		return nil, errors.Unauthorized("token has no email", nil)
	}

	return &service.TokenClaims{Email: email, ExpiresAt: time.Unix(result.Expires, 0)}, nil
}
