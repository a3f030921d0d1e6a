package twitter

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireAPIError(t *testing.T, err error) *APIError {
	t.Helper()
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	return apiErr
}

func TestCheckV1(t *testing.T) {
	t.Run("array payload is always valid", func(t *testing.T) {
		assert.NoError(t, checkV1([]byte(`[{"id": 123}]`)))
	})

	t.Run("object without errors is valid", func(t *testing.T) {
		assert.NoError(t, checkV1([]byte(`{"full_text": "hello"}`)))
	})

	t.Run("null errors is valid", func(t *testing.T) {
		assert.NoError(t, checkV1([]byte(`{"errors": null}`)))
	})

	t.Run("first error builds the message", func(t *testing.T) {
		err := checkV1([]byte(`{"errors": [{"message": "Sorry, that page does not exist.", "code": 34}]}`))

		apiErr := requireAPIError(t, err)
		assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
		assert.Equal(t, "Twitter V1 API error: Sorry, that page does not exist. (code: 34)", apiErr.Message)
	})

	t.Run("empty errors array falls back to unknowns", func(t *testing.T) {
		err := checkV1([]byte(`{"errors": []}`))

		apiErr := requireAPIError(t, err)
		assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
		assert.Equal(t, "Twitter V1 API error: Unknown error (code: Unknown)", apiErr.Message)
	})

	t.Run("incomplete first error falls back per field", func(t *testing.T) {
		err := checkV1([]byte(`{"errors": [{"code": 88}]}`))

		apiErr := requireAPIError(t, err)
		assert.Equal(t, "Twitter V1 API error: Unknown error (code: 88)", apiErr.Message)
	})

	t.Run("non-object payload passes through for later decoding", func(t *testing.T) {
		assert.NoError(t, checkV1([]byte(`not json`)))
	})

	t.Run("undecodable object maps to bad gateway", func(t *testing.T) {
		err := checkV1([]byte(`{not json}`))

		apiErr := requireAPIError(t, err)
		assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	})
}

func TestCheckV2(t *testing.T) {
	t.Run("clean payload is valid", func(t *testing.T) {
		assert.NoError(t, checkV2([]byte(`{"data": [{"id": "1"}]}`)))
	})

	t.Run("null errors is valid", func(t *testing.T) {
		assert.NoError(t, checkV2([]byte(`{"data": [], "errors": null}`)))
	})

	t.Run("unauthorized title maps to 401", func(t *testing.T) {
		err := checkV2([]byte(`{"title": "Unauthorized", "detail": "Unauthorized"}`))

		apiErr := requireAPIError(t, err)
		assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
		assert.Equal(t, "Twitter API error: Unauthorized", apiErr.Message)
	})

	t.Run("errors with title and detail map to 500", func(t *testing.T) {
		err := checkV2([]byte(`{"errors": [{}], "title": "Invalid Request", "detail": "One or more parameters are invalid."}`))

		apiErr := requireAPIError(t, err)
		assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
		assert.Equal(t, "Twitter API error: Invalid Request: One or more parameters are invalid.", apiErr.Message)
	})

	t.Run("errors without title and detail fall back to unknowns", func(t *testing.T) {
		err := checkV2([]byte(`{"errors": [{}]}`))

		apiErr := requireAPIError(t, err)
		assert.Equal(t, "Twitter API error: Unknown error: Unknown reason", apiErr.Message)
	})

	t.Run("invalid JSON maps to bad gateway", func(t *testing.T) {
		err := checkV2([]byte(`not json`))

		apiErr := requireAPIError(t, err)
		assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	})
}

func TestAPIErrorMessage(t *testing.T) {
	err := &APIError{Message: "boom", Status: http.StatusInternalServerError}

	assert.Equal(t, "boom", err.Error())
	assert.True(t, errors.As(error(err), new(*APIError)))
}
