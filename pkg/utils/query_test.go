package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ubjewellers/pkg/errors"
)

func newContext(target string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestOptionalQueryDistinguishesEmptyFromMissing(t *testing.T) {
	v, ok := OptionalQuery(newContext("/products?searchText="), "searchText")
	assert.True(t, ok)
	assert.Equal(t, "", v)

	_, ok = OptionalQuery(newContext("/products"), "searchText")
	assert.False(t, ok)
}

func TestQueryFloat(t *testing.T) {
	v, err := QueryFloat(newContext("/products/filter?minPrice=12.5"), "minPrice")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, 12.5, *v)

	v, err = QueryFloat(newContext("/products/filter"), "minPrice")
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = QueryFloat(newContext("/products/filter?minPrice=cheap"), "minPrice")
	assert.True(t, errors.Is(err, errors.CodeValidation))
}

func TestQueryFloatRejectsNonFinite(t *testing.T) {
	for _, raw := range []string{"NaN", "nan", "Inf", "-Inf", "+Infinity"} {
		v, err := QueryFloat(newContext("/products/filter?maxPrice="+raw), "maxPrice")
		assert.Nil(t, v, raw)
		assert.True(t, errors.Is(err, errors.CodeValidation), raw)
	}
}

func TestQueryInt(t *testing.T) {
	v, err := QueryInt(newContext("/top?limit=3"), "limit", 6)
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	v, err = QueryInt(newContext("/top"), "limit", 6)
	require.NoError(t, err)
	assert.Equal(t, 6, v)

	_, err = QueryInt(newContext("/top?limit=x"), "limit", 6)
	assert.Error(t, err)
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "ann@example.com", NormalizeEmail("  Ann@Example.COM "))
}
