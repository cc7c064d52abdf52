package storage

import (
	"context"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
	"github.com/sony/gobreaker/v2"
	"google.golang.org/api/option"

	"ubjewellers/internal/domain/service"
	"ubjewellers/internal/infrastructure/circuitbreaker"
	"ubjewellers/pkg/errors"
	"ubjewellers/pkg/logger"
)

// CloudStorageClient hosts product and category images in a public GCS
// bucket.
type CloudStorageClient struct {
	client     *storage.Client
	bucketName string
	cb         *gobreaker.CircuitBreaker[string]
}

var _ service.ImageHost = (*CloudStorageClient)(nil)

func NewCloudStorageClient(ctx context.Context, bucketName string, corsOrigins []string, opts ...option.ClientOption) (*CloudStorageClient, error) {
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	c := &CloudStorageClient{
		client:     client,
		bucketName: bucketName,
		cb:         circuitbreaker.New[string]("image-host"),
	}

	if err := c.setBucketCORS(ctx, corsOrigins); err != nil {
		logger.Warn("Failed to set bucket CORS configuration: %v", err)
	}

	return c, nil
}

// setBucketCORS only writes a policy when the bucket has none.
func (c *CloudStorageClient) setBucketCORS(ctx context.Context, origins []string) error {
	bucket := c.client.Bucket(c.bucketName)

	attrs, err := bucket.Attrs(ctx)
	if err != nil {
		return fmt.Errorf("failed to get bucket attributes: %w", err)
	}
	if len(attrs.CORS) > 0 {
		return nil
	}

	_, err = bucket.Update(ctx, storage.BucketAttrsToUpdate{
		CORS: []storage.CORS{{
			MaxAge:          3600,
			Methods:         []string{"GET", "HEAD"},
			Origins:         origins,
			ResponseHeaders: []string{"Content-Type"},
		}},
	})
	if err != nil {
		return fmt.Errorf("failed to update bucket CORS: %w", err)
	}
	return nil
}

func (c *CloudStorageClient) Upload(ctx context.Context, data io.Reader, name, contentType string) (string, error) {
	url, err := c.cb.Execute(func() (string, error) {
		return c.write(ctx, data, name, contentType)
	})
	if err != nil {
		return "", errors.Downstream("image host", err)
	}
	return url, nil
}

func (c *CloudStorageClient) write(ctx context.Context, data io.Reader, name, contentType string) (string, error) {
	obj := c.client.Bucket(c.bucketName).Object(name)
	wc := obj.NewWriter(ctx)
	wc.ContentType = contentType
	wc.CacheControl = "public, max-age=86400"

	if _, err := io.Copy(wc, data); err != nil {
		wc.Close()
		return "", fmt.Errorf("failed to copy image to GCS: %w", err)
	}
	if err := wc.Close(); err != nil {
		return "", fmt.Errorf("failed to close writer: %w", err)
	}

	if err := obj.ACL().Set(ctx, storage.AllUsers, storage.RoleReader); err != nil {
		return "", fmt.Errorf("failed to set ACL: %w", err)
	}

	return c.PublicURL(name), nil
}

func (c *CloudStorageClient) PublicURL(name string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", c.bucketName, name)
}

func (c *CloudStorageClient) Close() error {
	return c.client.Close()
}
