package config

import (
	"fmt"
	"os"

	"studiobooks/internal/logger"
)

type Config struct {
	// Storage Configuration
	DatabasePath string

	// Reminder Dispatcher Configuration
	DispatchSpec string // cron spec for the local notification dispatcher

	// Logging Configuration
	LogLevel      string
	LogFormat     string
	LogTimeFormat string
	LogOutput     string
}

func Load() (*Config, error) {
	config := &Config{
		DatabasePath:  getEnv("STUDIOBOOKS_DB", "studiobooks.db"),
		DispatchSpec:  getEnv("STUDIOBOOKS_DISPATCH_SPEC", "* * * * *"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "console"),
		LogTimeFormat: getEnv("LOG_TIME_FORMAT", "2006-01-02T15:04:05Z07:00"),
		LogOutput:     getEnv("LOG_OUTPUT", "stdout"),
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

func (c *Config) validate() error {
	if c.DatabasePath == "" {
		return fmt.Errorf("STUDIOBOOKS_DB must not be empty")
	}
	if c.DispatchSpec == "" {
		return fmt.Errorf("STUDIOBOOKS_DISPATCH_SPEC must not be empty")
	}
	return nil
}

// GetLoggerConfig returns a logger configuration from the main config
func (c *Config) GetLoggerConfig() logger.LogConfig {
	return logger.LogConfig{
		Level:      c.LogLevel,
		Format:     c.LogFormat,
		TimeFormat: c.LogTimeFormat,
		Output:     c.LogOutput,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
