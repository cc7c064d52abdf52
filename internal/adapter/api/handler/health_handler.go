package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// StoreCheck probes the document store.
type StoreCheck func(ctx context.Context) error

type HealthHandler struct {
	store StoreCheck
}

func NewHealthHandler(store StoreCheck) *HealthHandler {
	return &HealthHandler{
		store: store,
	}
}

func (h *HealthHandler) CheckHealth(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
	defer cancel()

	if h.store != nil {
		if err := h.store(ctx); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{
				"status": "Document store unreachable",
				"error":  err.Error(),
			})
		}
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "Server is running",
		"time":   time.Now().Format(time.RFC3339),
	})
}
