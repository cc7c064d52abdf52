package handler

import (
	"io"

	"github.com/gabriel-vasile/mimetype"
	"github.com/labstack/echo/v4"

	"ubjewellers/internal/usecase"
	"ubjewellers/pkg/errors"
	"ubjewellers/pkg/logger"
	"ubjewellers/pkg/response"
)

type FileHandler struct {
	uploadUseCase *usecase.UploadUseCase
}

func NewFileHandler(uploadUseCase *usecase.UploadUseCase) *FileHandler {
	return &FileHandler{
		uploadUseCase: uploadUseCase,
	}
}

// UploadImage takes a multipart "image" field. The content type is sniffed
// from the bytes rather than trusted from the part header.
func (h *FileHandler) UploadImage(c echo.Context) error {
	file, err := c.FormFile("image")
	if err != nil {
		return response.Error(c, errors.BadRequest("image file is required", err))
	}

	logger.Debug("Received image: %s, size: %d bytes", file.Filename, file.Size)

	if file.Size > usecase.MaxImageSize {
		return response.Error(c, errors.Validation("image exceeds the 5MB limit", nil))
	}

	src, err := file.Open()
	if err != nil {
		return response.Error(c, errors.BadRequest("unable to read image", err))
	}
	defer src.Close()

	mtype, err := mimetype.DetectReader(src)
	if err != nil {
		return response.Error(c, errors.BadRequest("unable to read image", err))
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return response.Error(c, errors.Internal("unable to rewind image", err))
	}

	name := c.FormValue("name")
	if name == "" {
		name = file.Filename
	}

	url, err := h.uploadUseCase.UploadImage(c.Request().Context(), src, file.Size, name, mtype.String())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, map[string]string{"url": url})
}
