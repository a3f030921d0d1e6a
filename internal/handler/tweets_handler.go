package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"tweet-facade/internal/domain"
)

// TweetFetcher is the orchestration surface the handlers depend on,
// implemented by twitter.Client.
type TweetFetcher interface {
	SearchHashtag(ctx context.Context, authorization, hashtag string, limit int) ([]domain.Tweet, error)
	UserTweets(ctx context.Context, authorization, username string, limit int) ([]domain.Tweet, error)
}

// TweetsHandler serves the hashtag search and user timeline endpoints.
type TweetsHandler struct {
	fetcher           TweetFetcher
	maxHashtagResults int
	maxUserResults    int
}

// NewTweetsHandler creates a new tweets handler.
func NewTweetsHandler(fetcher TweetFetcher, maxHashtagResults, maxUserResults int) *TweetsHandler {
	return &TweetsHandler{
		fetcher:           fetcher,
		maxHashtagResults: maxHashtagResults,
		maxUserResults:    maxUserResults,
	}
}

// Hashtags handles GET /hashtags/:tag.
func (h *TweetsHandler) Hashtags(c echo.Context) error {
	limit, err := h.limitParam(c, h.maxHashtagResults)
	if err != nil {
		return err
	}

	tweets, err := h.fetcher.SearchHashtag(
		c.Request().Context(),
		c.Request().Header.Get("Authorization"),
		c.Param("tag"),
		limit,
	)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tweets)
}

// Users handles GET /users/:username.
func (h *TweetsHandler) Users(c echo.Context) error {
	limit, err := h.limitParam(c, h.maxUserResults)
	if err != nil {
		return err
	}

	tweets, err := h.fetcher.UserTweets(
		c.Request().Context(),
		c.Request().Header.Get("Authorization"),
		c.Param("username"),
		limit,
	)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tweets)
}

// limitParam resolves the optional limit query parameter. An absent limit
// skips validation entirely and falls back to the endpoint cap; any present
// value, valid or not, goes through boundedIntParam before an upstream call
// is made.
func (h *TweetsHandler) limitParam(c echo.Context, maxResults int) (int, error) {
	query := c.QueryParams()
	if !query.Has("limit") {
		return maxResults, nil
	}
	return boundedIntParam(query, "limit", maxResults, 1)
}
