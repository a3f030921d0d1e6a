package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"tweet-facade/internal/twitter"
)

// errorResponse is the uniform error body of the facade.
type errorResponse struct {
	Error string `json:"error"`
}

// HTTPErrorHandler translates errors escaping the handlers into the
// {"error": message} body with the status carried by the error: 400 for
// validation failures, the classified status for upstream failures, 500 for
// anything unexpected.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := "internal error"

	var apiErr *twitter.APIError
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &apiErr):
		status = apiErr.Status
		message = apiErr.Message
	case errors.As(err, &httpErr):
		status = httpErr.Code
		message = fmt.Sprintf("%v", httpErr.Message)
	}

	if writeErr := c.JSON(status, errorResponse{Error: message}); writeErr != nil {
		c.Logger().Error(writeErr)
	}
}
