package usecase

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"ubjewellers/internal/domain/service"
	"ubjewellers/pkg/errors"
)

const MaxImageSize = 5 << 20

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

type UploadUseCase struct {
	host service.ImageHost
}

func NewUploadUseCase(host service.ImageHost) *UploadUseCase {
	return &UploadUseCase{host: host}
}

// UploadImage stores the image under a unique object name and returns its
// public URL. name, when given, is kept as a readable prefix.
func (uc *UploadUseCase) UploadImage(ctx context.Context, data io.Reader, size int64, name, contentType string) (string, error) {
	ext, ok := allowedImageTypes[contentType]
	if !ok {
		return "", errors.Validation("only jpeg, png, gif and webp images are accepted", nil)
	}
	if size > MaxImageSize {
		return "", errors.Validation("image exceeds the 5MB limit", nil)
	}

	object := "images/" + uuid.NewString() + ext
	if base := sanitizeName(name); base != "" {
		object = "images/" + base + "-" + uuid.NewString() + ext
	}

	return uc.host.Upload(ctx, data, object, contentType)
}

func sanitizeName(name string) string {
	name = strings.TrimSuffix(filepath.Base(strings.TrimSpace(name)), filepath.Ext(name))
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		case r == ' ' || r == '.':
			b.WriteRune('-')
		}
	}
	return strings.Trim(b.String(), "-")
}
