// Package handler provides the HTTP handlers of tweet-facade.
package handler

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"
)

// boundedIntParam parses query[name] as an integer in [min, max]. Absent,
// non-numeric and out-of-range values all fail with the same user-facing 400;
// the message wording is part of the API contract.
func boundedIntParam(query url.Values, name string, max, min int) (int, error) {
	value, err := strconv.Atoi(query.Get(name))
	if err != nil || value < min || value > max {
		return 0, echo.NewHTTPError(
			http.StatusBadRequest,
			fmt.Sprintf("Invalid %s parameter: must be a number between %d and %d", name, min, max),
		)
	}
	return value, nil
}
