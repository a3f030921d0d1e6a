// Package config provides configuration management for tweet-facade.
package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// Config holds the configuration for the facade service. Upstream base URLs
// are fixed constants of the twitter package and intentionally absent here.
type Config struct {
	// Port is the port number for the HTTP server
	Port string
	// TimezoneOffsetMinutes is the signed fixed offset from UTC used when
	// formatting tweet dates. Default is Asia/Tokyo, 9h ahead of UTC.
	TimezoneOffsetMinutes int
	// MaxHashtagSearchResults caps the hashtag search endpoint
	MaxHashtagSearchResults int
	// MaxUserTweetResults caps the user tweets endpoint
	MaxUserTweetResults int
	// MinSearchResults is the minimum page size the upstream search accepts
	MinSearchResults int
	// UpstreamTimeout bounds each individual upstream API call
	UpstreamTimeout time.Duration
}

// NewConfig creates a new Config from environment variables with defaults.
func NewConfig() *Config {
	return &Config{
		Port:                    getEnv("PORT", "8080"),
		TimezoneOffsetMinutes:   getIntEnv("TIMEZONE_OFFSET_MINUTES", 9*60),
		MaxHashtagSearchResults: getIntEnv("MAX_HASHTAG_SEARCH_RESULTS", 30),
		MaxUserTweetResults:     getIntEnv("MAX_USER_TWEET_RESULTS", 30),
		MinSearchResults:        getIntEnv("TWITTER_MIN_SEARCH_RESULTS", 10),
		UpstreamTimeout:         getDurationEnv("UPSTREAM_TIMEOUT", 30*time.Second),
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Port == "" {
		return errors.New("PORT is required")
	}
	if c.MaxHashtagSearchResults < 1 {
		return errors.New("MAX_HASHTAG_SEARCH_RESULTS must be at least 1")
	}
	if c.MaxUserTweetResults < 1 {
		return errors.New("MAX_USER_TWEET_RESULTS must be at least 1")
	}
	if c.MinSearchResults < 1 {
		return errors.New("TWITTER_MIN_SEARCH_RESULTS must be at least 1")
	}
	return nil
}

// getEnv returns the value of an environment variable or a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getIntEnv returns the value of an environment variable as an int or a default value.
func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

// getDurationEnv returns the value of an environment variable as a duration or a default value.
func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
