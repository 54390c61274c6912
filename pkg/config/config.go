// Package config loads server configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the ghostd server configuration.
type Config struct {
	// HTTPPort is the listen port for the API server.
	HTTPPort string

	// ServiceToken, when set, is required as a bearer token on API calls.
	ServiceToken string

	// RedisAddr enables the shared rate limiter when non-empty. Empty
	// falls back to the in-process limiter (single replica).
	RedisAddr     string
	RedisPassword string

	// IngestPerMinute is the per-device ingest event budget.
	IngestPerMinute int
	// ExecutionsPerMinute is the per-org execution budget.
	ExecutionsPerMinute int

	// LLMEnabled controls whether the OpenAI-backed client is constructed.
	// Detection and execution degrade gracefully without it.
	LLMEnabled bool
}

// Defaults mirrored from the edge/device budget constants.
const (
	defaultIngestPerMinute     = 1000
	defaultExecutionsPerMinute = 10
)

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	ingestLimit, err := intEnv("INGEST_PER_MINUTE_LIMIT", defaultIngestPerMinute)
	if err != nil {
		return nil, err
	}
	execLimit, err := intEnv("EXECUTIONS_PER_MINUTE_LIMIT", defaultExecutionsPerMinute)
	if err != nil {
		return nil, err
	}

	return &Config{
		HTTPPort:            getEnv("HTTP_PORT", "8080"),
		ServiceToken:        os.Getenv("SERVICE_TOKEN"),
		RedisAddr:           os.Getenv("REDIS_ADDR"),
		RedisPassword:       os.Getenv("REDIS_PASSWORD"),
		IngestPerMinute:     ingestLimit,
		ExecutionsPerMinute: execLimit,
		LLMEnabled:          os.Getenv("LLM_API_KEY") != "",
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func intEnv(key string, defaultValue int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}
