// DogMatch - Dog Breed Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dogmatch

package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: built-in values for every setting
//  2. Config File: optional YAML file (config.yaml, or CONFIG_PATH)
//  3. Environment Variables: override any mapped setting
//
// Config is immutable after Load() and safe for concurrent read access.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Artifacts ArtifactsConfig `koanf:"artifacts"`
	API       APIConfig       `koanf:"api"`
	Security  SecurityConfig  `koanf:"security"`
	Cache     CacheConfig     `koanf:"cache"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
//
// Environment Variables:
//   - PORT or HTTP_PORT: listen port (default: 5000)
//   - HTTP_HOST: bind address (default: 0.0.0.0)
//   - HTTP_READ_TIMEOUT, HTTP_WRITE_TIMEOUT, HTTP_IDLE_TIMEOUT
//   - SHUTDOWN_TIMEOUT: graceful shutdown budget (default: 10s)
//   - ENVIRONMENT: development or production (default: development)
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"`
}

// Addr returns the listen address in host:port form.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// ArtifactsConfig locates the trained model artifacts.
//
// Environment Variables:
//   - ARTIFACTS_DIR: directory holding feature_info.json, model.json, ... (default: models)
//   - ARTIFACTS_PRELOAD: load artifacts at startup instead of on first request (default: true)
type ArtifactsConfig struct {
	Dir     string `koanf:"dir"`
	Preload bool   `koanf:"preload"`
}

// APIConfig holds response settings for the HTTP API.
//
// Environment Variables:
//   - API_VERSION: value of api_version in responses (default: 1.0.0)
//   - API_DEFAULT_TOP_K: similar breeds returned when top_k is absent (default: 5)
//   - API_MAX_BODY_BYTES: request body limit for /api/recommend (default: 1MB)
type APIConfig struct {
	Version      string `koanf:"version"`
	DefaultTopK  int    `koanf:"default_top_k"`
	MaxBodyBytes int64  `koanf:"max_body_bytes"`
}

// SecurityConfig holds CORS and rate-limiting settings.
//
// Environment Variables:
//   - CORS_ORIGINS: comma-separated allowed origins (default: *)
//   - RATE_LIMIT_REQUESTS: requests per window per client IP (default: 100)
//   - RATE_LIMIT_WINDOW: rate limit window (default: 1m)
//   - RATE_LIMIT_DISABLED: disable rate limiting (default: false)
//   - RECOMMEND_RATE_LIMIT_REQUESTS: stricter limit for /api/recommend (default: 30)
type SecurityConfig struct {
	CORSOrigins            []string      `koanf:"cors_origins"`
	RateLimitReqs          int           `koanf:"rate_limit_reqs"`
	RateLimitWindow        time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled      bool          `koanf:"rate_limit_disabled"`
	RecommendRateLimitReqs int           `koanf:"recommend_rate_limit_reqs"`
}

// CacheConfig controls the recommendation result cache.
//
// Environment Variables:
//   - CACHE_ENABLED (default: true)
//   - CACHE_CAPACITY: maximum cached results (default: 1024)
//   - CACHE_TTL: result lifetime (default: 10m)
type CacheConfig struct {
	Enabled  bool          `koanf:"enabled"`
	Capacity int           `koanf:"capacity"`
	TTL      time.Duration `koanf:"ttl"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}

// Load reads configuration from (in order of increasing precedence):
//  1. Built-in defaults
//  2. Config file (config.yaml if it exists, or the path in CONFIG_PATH)
//  3. Environment variables
//
// See LoadWithKoanf() for the underlying implementation.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
