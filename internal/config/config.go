package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Server ServerConfig

	// Content store configuration
	Storage StorageConfig

	// Admin console configuration
	Admin AdminConfig

	// Editorial content policy
	Content ContentConfig

	// Logging configuration
	Log LogConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// StorageConfig holds embedded content store settings
type StorageConfig struct {
	Path string
}

// AdminConfig holds admin session settings. The passcode is compared as a
// plain string with no lockout, matching the product's client-side gate;
// it is not a security boundary and must not be treated as one.
type AdminConfig struct {
	Passcode   string
	SessionTTL time.Duration
}

// ContentConfig holds editorial policy settings
type ContentConfig struct {
	// SlugCategoryPrefix prepends the category token (ott-/movie-/news-)
	// to derived slugs when set
	SlugCategoryPrefix bool
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string
	Format string // "json" or "pretty"
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 30*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		Storage: StorageConfig{
			Path: getEnv("DB_PATH", "./data/cinestream.db"),
		},
		Admin: AdminConfig{
			Passcode:   getEnv("ADMIN_PASSCODE", "admin123"),
			SessionTTL: getDurationEnv("ADMIN_SESSION_TTL", 24*time.Hour),
		},
		Content: ContentConfig{
			SlugCategoryPrefix: getBoolEnv("SLUG_CATEGORY_PREFIX", false),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	// Validate required configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Storage.Path == "" {
		return fmt.Errorf("DB_PATH is required")
	}
	if c.Admin.Passcode == "" {
		return fmt.Errorf("ADMIN_PASSCODE is required")
	}
	return nil
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
