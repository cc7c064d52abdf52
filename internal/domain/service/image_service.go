package service

import (
	"context"
	"io"
)

type ImageHost interface {
	Upload(ctx context.Context, data io.Reader, name, contentType string) (string, error)
}
