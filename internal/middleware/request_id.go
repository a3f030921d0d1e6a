// Package middleware provides HTTP middleware for tweet-facade.
package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestIDHeader is the correlation header echoed back to callers and
// attached to request logs.
const RequestIDHeader = "X-Request-Id"

// RequestID assigns each inbound request a correlation id, reusing the
// caller's X-Request-Id when present.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(RequestIDHeader)
			if id == "" {
				id = uuid.NewString()
			}
			c.Set(RequestIDHeader, id)
			c.Response().Header().Set(RequestIDHeader, id)
			return next(c)
		}
	}
}

// GetRequestID returns the correlation id assigned to the request, or the
// empty string when the middleware did not run.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(RequestIDHeader).(string); ok {
		return id
	}
	return ""
}
