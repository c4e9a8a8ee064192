package config

import (
	"os"
	"runtime"
	"strconv"
	"time"

	"goplots/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server    ServerConfig
	Render    RenderConfig
	Profiling ProfilingConfig
	LogLevel  string
}

// ServerConfig holds API server settings
type ServerConfig struct {
	Port            string
	GinMode         string
	Debug           bool // exposes /docs and /openapi.json
	MaxBodyBytes    int64
	ShutdownTimeout time.Duration
}

// RenderConfig bounds the CPU-bound rendering work
type RenderConfig struct {
	Concurrency int
}

// ProfilingConfig holds the admin/pprof server settings
type ProfilingConfig struct {
	Port    string
	Enabled bool
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server:    *loadServerConfig(),
		Render:    *loadRenderConfig(),
		Profiling: *loadProfilingConfig(),
		LogLevel:  getEnvOrDefault("LOG_LEVEL", "INFO"),
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func loadServerConfig() *ServerConfig {
	return &ServerConfig{
		Port:            getEnvOrDefault("PORT", "7000"),
		GinMode:         getEnvOrDefault("GIN_MODE", "release"),
		Debug:           getEnvOrDefault("DEBUG", "1") == "1",
		MaxBodyBytes:    int64(getEnvIntOrDefault("MAX_BODY_BYTES", 10<<20)),
		ShutdownTimeout: getEnvDurationOrDefault("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

func loadRenderConfig() *RenderConfig {
	return &RenderConfig{
		Concurrency: getEnvIntOrDefault("RENDER_CONCURRENCY", runtime.GOMAXPROCS(0)),
	}
}

func loadProfilingConfig() *ProfilingConfig {
	return &ProfilingConfig{
		Port:    getEnvOrDefault("PPROF_PORT", "6060"),
		Enabled: getEnvBoolOrDefault("PPROF_ENABLED", false),
	}
}

func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return errors.ConfigInvalid("PORT is required")
	}
	if _, err := strconv.Atoi(config.Server.Port); err != nil {
		return errors.ConfigInvalid("PORT must be numeric")
	}
	if config.Render.Concurrency < 1 {
		return errors.ConfigInvalid("RENDER_CONCURRENCY must be at least 1")
	}
	if config.Server.MaxBodyBytes < 1 {
		return errors.ConfigInvalid("MAX_BODY_BYTES must be positive")
	}
	if config.Profiling.Enabled && config.Profiling.Port == config.Server.Port {
		return errors.ConfigInvalid("PPROF_PORT must differ from PORT")
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

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
