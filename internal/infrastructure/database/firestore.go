package database

import (
	"context"
	"fmt"
	"os"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"ubjewellers/pkg/config"
	"ubjewellers/pkg/logger"
)

// CredentialOptions picks the service account source: inline JSON (hosted
// deployments) first, then a key file. With neither, the Google client
// libraries fall back to application default credentials.
func CredentialOptions(cfg *config.Config) ([]option.ClientOption, error) {
	if cfg.FirebaseServiceAccountJSON != "" {
		logger.Info("Using Firebase service account from environment variable")
		return []option.ClientOption{option.WithCredentialsJSON([]byte(cfg.FirebaseServiceAccountJSON))}, nil
	}

	if path := cfg.FirebaseServiceAccountPath; path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("service account file %s: %w", path, err)
		}
		logger.Info("Using Firebase service account from file: %s", path)
		return []option.ClientOption{option.WithCredentialsFile(path)}, nil
	}

	logger.Info("Using application default credentials")
	return nil, nil
}

func NewFirestoreClient(ctx context.Context, projectID string, opts ...option.ClientOption) (*firestore.Client, error) {
	client, err := firestore.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("create firestore client: %w", err)
	}
	return client, nil
}

// PingFirestore reads at most one document; Firestore has no ping RPC.
func PingFirestore(ctx context.Context, client *firestore.Client) error {
	iter := client.Collection("products").Limit(1).Documents(ctx)
	defer iter.Stop()

	if _, err := iter.Next(); err != nil && err != iterator.Done {
		return err
	}
	return nil
}
