package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	// Server configuration
	ServerPort   string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// Upstream service configuration
	PostsBaseURL    string
	CommentsBaseURL string
	ReviewsBaseURL  string
	RemoteTimeout   time.Duration

	// Cache configuration
	RefreshSchedule string

	// Logging configuration
	LogLevel string
}

// Load loads configuration from environment variables. A .env file in
// the working directory is read first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		ReadTimeout:     getEnvDuration("HTTP_READ_TIMEOUT", 30*time.Second),
		WriteTimeout:    getEnvDuration("HTTP_WRITE_TIMEOUT", 30*time.Second),
		IdleTimeout:     getEnvDuration("HTTP_IDLE_TIMEOUT", 120*time.Second),
		PostsBaseURL:    getEnv("POSTS_BASE_URL", "http://localhost:8081/api"),
		CommentsBaseURL: getEnv("COMMENTS_BASE_URL", "http://localhost:8082/api"),
		ReviewsBaseURL:  getEnv("REVIEWS_BASE_URL", "http://localhost:8083/api"),
		RemoteTimeout:   getEnvDuration("REMOTE_TIMEOUT", 10*time.Second),
		RefreshSchedule: getEnv("REFRESH_SCHEDULE", "@every 2m"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate validates the configuration.
func (c *Config) validate() error {
	if c.ServerPort == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}
	if c.PostsBaseURL == "" {
		return fmt.Errorf("POSTS_BASE_URL is required")
	}
	if c.CommentsBaseURL == "" {
		return fmt.Errorf("COMMENTS_BASE_URL is required")
	}
	if c.ReviewsBaseURL == "" {
		return fmt.Errorf("REVIEWS_BASE_URL is required")
	}
	if c.RemoteTimeout < time.Second {
		return fmt.Errorf("REMOTE_TIMEOUT must be at least 1s")
	}
	return nil
}

// getEnv gets an environment variable with a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvDuration gets an environment variable as duration with a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
