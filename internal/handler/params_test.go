package handler

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundedIntParam(t *testing.T) {
	const wantMessage = "Invalid limit parameter: must be a number between 1 and 30"

	t.Run("accepts values inside the range", func(t *testing.T) {
		for _, raw := range []string{"1", "15", "30"} {
			value, err := boundedIntParam(url.Values{"limit": {raw}}, "limit", 30, 1)

			require.NoError(t, err, "limit=%s", raw)
			assert.NotZero(t, value)
		}
	})

	t.Run("rejects out of range and malformed values", func(t *testing.T) {
		for _, raw := range []string{"0", "31", "-5", "abc", "1.5", ""} {
			_, err := boundedIntParam(url.Values{"limit": {raw}}, "limit", 30, 1)

			var httpErr *echo.HTTPError
			require.ErrorAs(t, err, &httpErr, "limit=%s", raw)
			assert.Equal(t, http.StatusBadRequest, httpErr.Code)
			assert.Equal(t, wantMessage, httpErr.Message)
		}
	})

	t.Run("rejects an absent parameter", func(t *testing.T) {
		_, err := boundedIntParam(url.Values{}, "limit", 30, 1)

		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, wantMessage, httpErr.Message)
	})

	t.Run("message reflects the configured bounds", func(t *testing.T) {
		_, err := boundedIntParam(url.Values{}, "count", 100, 5)

		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, "Invalid count parameter: must be a number between 5 and 100", httpErr.Message)
	})
}
