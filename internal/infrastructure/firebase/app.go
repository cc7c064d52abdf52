package firebase

import (
	"context"
	"fmt"

	fbapp "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

func NewAuthVerifier(ctx context.Context, projectID string, opts ...option.ClientOption) (*FirebaseAuthClient, error) {
	app, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: projectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("initialize firebase: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialize firebase auth: %w", err)
	}

	return NewFirebaseAuthClient(authClient), nil
}
