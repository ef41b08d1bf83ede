package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"launchdash/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server    ServerConfig
	Data      DataConfig
	Log       LogConfig
	Profiling ProfilingConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port            string
	GinMode         string
	AllowedOrigins  []string
	ShutdownTimeout time.Duration
}

// DataConfig says where the launch table is loaded from.
// A non-empty DatabaseURL selects the Postgres source over the file.
type DataConfig struct {
	File        string
	Sheet       string
	DatabaseURL string
	Table       string
}

// LogConfig holds logger settings
type LogConfig struct {
	Level string
	Mode  string
}

// ProfilingConfig holds performance profiling settings
type ProfilingConfig struct {
	Port    string
	Enabled bool
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	shutdown, err := getEnvDurationOrDefault("SHUTDOWN_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}
	pprofEnabled, err := getEnvBoolOrDefault("PPROF_ENABLED", false)
	if err != nil {
		return nil, err
	}

	config := &Config{
		Server: ServerConfig{
			Port:            getEnvOrDefault("PORT", "8050"),
			GinMode:         getEnvOrDefault("GIN_MODE", "release"),
			AllowedOrigins:  splitList(getEnvOrDefault("CORS_ORIGINS", "http://localhost:8050,http://127.0.0.1:8050")),
			ShutdownTimeout: shutdown,
		},
		Data: DataConfig{
			File:        getEnvOrDefault("LAUNCH_DATA_FILE", "spacex_launch_dash.csv"),
			Sheet:       getEnvOrDefault("LAUNCH_SHEET", "Sheet1"),
			DatabaseURL: os.Getenv("DATABASE_URL"),
			Table:       getEnvOrDefault("LAUNCH_TABLE", "launch_records"),
		},
		Log: LogConfig{
			Level: getEnvOrDefault("LOG_LEVEL", "INFO"),
			Mode:  getEnvOrDefault("LOG_MODE", "development"),
		},
		Profiling: ProfilingConfig{
			Port:    getEnvOrDefault("PPROF_PORT", "6060"),
			Enabled: pprofEnabled,
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return config, nil
}

func validateConfig(config *Config) error {
	if _, err := strconv.Atoi(config.Server.Port); err != nil {
		return errors.ConfigInvalid("PORT must be numeric")
	}
	switch config.Server.GinMode {
	case "debug", "release", "test":
	default:
		return errors.ConfigInvalid("GIN_MODE must be debug, release or test")
	}
	if config.Data.DatabaseURL == "" && config.Data.File == "" {
		return errors.ConfigInvalid("LAUNCH_DATA_FILE or DATABASE_URL is required")
	}
	if config.Server.ShutdownTimeout <= 0 {
		return errors.ConfigInvalid("SHUTDOWN_TIMEOUT must be positive")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return false, errors.ConfigInvalid(key + " must be a boolean")
	}
	return boolValue, nil
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return 0, errors.ConfigInvalid(key + " must be a duration such as 10s")
	}
	return duration, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
