package response

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "ubjewellers/pkg/errors"
)

func respond(t *testing.T, err error) (int, ErrorResponse) {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	HTTPErrorHandler(err, c)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestErrorMapsAppErrors(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{apperrors.NotFound("Product", nil), http.StatusNotFound, apperrors.CodeNotFound},
		{apperrors.Forbidden("forbidden access", nil), http.StatusForbidden, apperrors.CodeForbidden},
		{apperrors.Unauthorized("unauthorized access", nil), http.StatusUnauthorized, apperrors.CodeUnauthorized},
		{fmt.Errorf("wrapped: %w", apperrors.Conflict("already liked")), http.StatusConflict, apperrors.CodeConflict},
		{echo.NewHTTPError(http.StatusNotFound, "Not Found"), http.StatusNotFound, apperrors.CodeNotFound},
		{fmt.Errorf("boom"), http.StatusInternalServerError, apperrors.CodeInternal},
	}

	for _, tc := range cases {
		status, body := respond(t, tc.err)
		assert.Equal(t, tc.status, status)
		assert.Equal(t, tc.code, body.Code)
		assert.True(t, body.Error)
		assert.False(t, body.Success)
	}
}

func TestSuccessEnvelope(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	require.NoError(t, Success(c, map[string]string{"token": "abc"}))

	var body struct {
		Success bool              `json:"success"`
		Data    map[string]string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, body.Success)
	assert.Equal(t, "abc", body.Data["token"])
}
