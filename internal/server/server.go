// Package server provides the HTTP server setup for tweet-facade.
package server

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"tweet-facade/internal/handler"
	"tweet-facade/internal/middleware"
)

// Config holds server configuration.
type Config struct {
	MaxHashtagSearchResults int
	MaxUserTweetResults     int
}

// New creates the echo server with all routes and middleware registered. The
// fetcher is injected so tests can run the full HTTP surface against a fake
// upstream.
func New(cfg Config, fetcher handler.TweetFetcher) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = handler.HTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogError:    true,
		LogMethod:   true,
		LogLatency:  true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ctx := c.Request().Context()
			requestID := middleware.GetRequestID(c)
			if v.Error == nil {
				slog.InfoContext(ctx, "request completed",
					"method", v.Method,
					"uri", v.URI,
					"status", v.Status,
					"latency_ms", v.Latency.Milliseconds(),
					"request_id", requestID)
			} else {
				slog.ErrorContext(ctx, "request failed",
					"method", v.Method,
					"uri", v.URI,
					"status", v.Status,
					"latency_ms", v.Latency.Milliseconds(),
					"request_id", requestID,
					"error", v.Error.Error())
			}
			return nil
		},
	}))

	tweets := handler.NewTweetsHandler(fetcher, cfg.MaxHashtagSearchResults, cfg.MaxUserTweetResults)

	e.GET("/health", handler.Health)
	e.GET("/hashtags/:tag", tweets.Hashtags)
	e.GET("/users/:username", tweets.Users)

	return e
}
