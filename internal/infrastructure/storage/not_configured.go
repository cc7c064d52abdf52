package storage

import (
	"context"
	stderrors "errors"
	"io"

	"ubjewellers/pkg/errors"
)

// NotConfigured stands in when no STORAGE_BUCKET is set so the rest of the
// API still starts.
type NotConfigured struct{}

func (NotConfigured) Upload(context.Context, io.Reader, string, string) (string, error) {
	return "", errors.Downstream("image host", stderrors.New("STORAGE_BUCKET is not configured"))
}
