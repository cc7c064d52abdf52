package response

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	apperrors "ubjewellers/pkg/errors"
	"ubjewellers/pkg/logger"
)

type Response struct {
	Success   bool        `json:"success"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp string      `json:"timestamp"`
}

// ErrorResponse keeps the legacy `error: true` / `message` keys that the
// storefront clients already check.
type ErrorResponse struct {
	Success   bool   `json:"success"`
	Error     bool   `json:"error"`
	Code      string `json:"code"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func Success(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, Response{
		Success:   true,
		Data:      data,
		Timestamp: now(),
	})
}

func Created(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusCreated, Response{
		Success:   true,
		Data:      data,
		Timestamp: now(),
	})
}

func Message(c echo.Context, message string) error {
	return Success(c, map[string]string{"message": message})
}

func Error(c echo.Context, err error) error {
	var validationErr validator.ValidationErrors
	if errors.As(err, &validationErr) {
		return handleValidationError(c, validationErr)
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Status >= http.StatusInternalServerError {
			logger.Error("%s %s: %v", c.Request().Method, c.Path(), appErr)
		}
		return write(c, appErr.Status, appErr.Code, appErr.Message)
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return write(c, httpErr.Code, codeForStatus(httpErr.Code), fmt.Sprint(httpErr.Message))
	}

	logger.Error("%s %s: unhandled error: %v", c.Request().Method, c.Path(), err)
	return write(c, http.StatusInternalServerError, apperrors.CodeInternal, "An unexpected error occurred")
}

// HTTPErrorHandler routes echo's own errors (unknown routes, bind failures,
// middleware rejections) through the same envelope as handler errors.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	if writeErr := Error(c, err); writeErr != nil {
		logger.Error("failed to write error response: %v", writeErr)
	}
}

func write(c echo.Context, status int, code, message string) error {
	return c.JSON(status, ErrorResponse{
		Success:   false,
		Error:     true,
		Code:      code,
		Message:   message,
		Timestamp: now(),
	})
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusNotFound:
		return apperrors.CodeNotFound
	case http.StatusUnauthorized:
		return apperrors.CodeUnauthorized
	case http.StatusForbidden:
		return apperrors.CodeForbidden
	case http.StatusTooManyRequests:
		return apperrors.CodeRateLimited
	case http.StatusBadRequest, http.StatusUnsupportedMediaType, http.StatusRequestEntityTooLarge:
		return apperrors.CodeBadRequest
	default:
		if status >= http.StatusInternalServerError {
			return apperrors.CodeInternal
		}
		return http.StatusText(status)
	}
}

func handleValidationError(c echo.Context, validationErr validator.ValidationErrors) error {
	if len(validationErr) == 0 {
		return write(c, http.StatusBadRequest, apperrors.CodeValidation, "Invalid input data")
	}

	// report the first failing field only, like the storefront expects
	err := validationErr[0]
	field := lowerFirst(err.Field())
	param := err.Param()

	var message string
	switch err.Tag() {
	case "required":
		message = field + " is required"
	case "min", "gte":
		message = field + " must be at least " + param
	case "max", "lte":
		message = field + " must be at most " + param
	case "gt":
		message = field + " must be greater than " + param
	case "oneof":
		message = field + " must be one of: " + param
	case "email":
		message = field + " must be a valid email address"
	case "url":
		message = field + " must be a valid URL"
	default:
		message = field + " is invalid"
	}

	return write(c, http.StatusBadRequest, apperrors.CodeValidation, message)
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
