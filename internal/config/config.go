package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	YouTube   YouTubeConfig
	Server    ServerConfig
	Cache     CacheConfig
	RateLimit RateLimitConfig
	Heuristic HeuristicConfig
	Logging   LoggingConfig
}

type YouTubeConfig struct {
	APIKey         string
	RequestTimeout time.Duration
}

type ServerConfig struct {
	Port      int
	DebugMode bool
}

type CacheConfig struct {
	Enabled  bool
	TTL      time.Duration
	Host     string
	Port     int
	Password string
	DB       int
}

type RateLimitConfig struct {
	RequestsPerMinute int
}

type HeuristicConfig struct {
	WeightsFile string
}

type LoggingConfig struct {
	Level string
	File  string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		YouTube: YouTubeConfig{
			APIKey:         getEnv("YOUTUBE_API_KEY", ""),
			RequestTimeout: time.Duration(getEnvInt("REQUEST_TIMEOUT_SECONDS", 30)) * time.Second,
		},
		Server: ServerConfig{
			Port:      getEnvInt("PORT", 8080),
			DebugMode: getEnvBool("DEBUG_MODE", false),
		},
		Cache: CacheConfig{
			Enabled:  getEnvBool("ENABLE_CACHE", false),
			TTL:      time.Duration(getEnvInt("CACHE_DURATION_SECONDS", 3600)) * time.Second,
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnvInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		RateLimit: RateLimitConfig{
			RequestsPerMinute: getEnvInt("MAX_REQUESTS_PER_MINUTE", 100),
		},
		Heuristic: HeuristicConfig{
			WeightsFile: getEnv("HEURISTIC_WEIGHTS_FILE", "config/heuristics.yaml"),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			File:  getEnv("LOG_FILE", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.YouTube.APIKey == "" {
		return fmt.Errorf("YOUTUBE_API_KEY is required")
	}
	if c.YouTube.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT_SECONDS must be positive")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("PORT must be a valid TCP port")
	}
	if c.RateLimit.RequestsPerMinute <= 0 {
		return fmt.Errorf("MAX_REQUESTS_PER_MINUTE must be positive")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
