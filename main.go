package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"tweet-facade/config"
	"tweet-facade/internal/logger"
	"tweet-facade/internal/server"
	"tweet-facade/internal/twitter"
)

func main() {
	// Handle healthcheck subcommand (for Docker healthcheck in distroless image)
	if len(os.Args) > 1 && os.Args[1] == "healthcheck" {
		if err := runHealthcheck(); err != nil {
			fmt.Fprintf(os.Stderr, "Healthcheck failed: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	ctx := context.Background()

	// Initialize structured logger with trace context support
	logger.Init()

	// Load configuration (.env is optional, environment wins)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.WarnContext(ctx, "failed to load .env file", "error", err)
	}
	cfg := config.NewConfig()
	if err := cfg.Validate(); err != nil {
		slog.ErrorContext(ctx, "invalid configuration", "error", err)
		os.Exit(1)
	}

	slog.InfoContext(ctx, "configuration loaded",
		"port", cfg.Port,
		"timezone_offset_minutes", cfg.TimezoneOffsetMinutes,
		"max_hashtag_search_results", cfg.MaxHashtagSearchResults,
		"max_user_tweet_results", cfg.MaxUserTweetResults,
		"upstream_timeout", cfg.UpstreamTimeout)

	// Create the upstream client and HTTP server
	twitterClient := twitter.NewClient(twitter.Config{
		Timeout:               cfg.UpstreamTimeout,
		TimezoneOffsetMinutes: cfg.TimezoneOffsetMinutes,
		MinSearchResults:      cfg.MinSearchResults,
	})
	e := server.New(server.Config{
		MaxHashtagSearchResults: cfg.MaxHashtagSearchResults,
		MaxUserTweetResults:     cfg.MaxUserTweetResults,
	}, twitterClient)

	address := fmt.Sprintf(":%s", cfg.Port)

	// Start server in a goroutine
	go func() {
		slog.InfoContext(ctx, "starting tweet-facade server", "address", address)
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			slog.ErrorContext(ctx, "server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	slog.InfoContext(ctx, "shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(ctx, "server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.InfoContext(ctx, "server exited properly")
}

// runHealthcheck performs a health check against the local server
func runHealthcheck() error {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	client := &http.Client{
		Timeout: 2 * time.Second,
	}

	resp, err := client.Get(fmt.Sprintf("http://127.0.0.1:%s/health", port))
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health endpoint returned status: %d", resp.StatusCode)
	}

	return nil
}
