// DogMatch - Dog Breed Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dogmatch

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the locations searched for a config file, in order.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/dogmatch/config.yaml",
	"/etc/dogmatch/config.yml",
}

// ConfigPathEnvVar names the environment variable that points at a config file.
const ConfigPathEnvVar = "CONFIG_PATH"

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            5000,
			Host:            "0.0.0.0",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			IdleTimeout:     120 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			Environment:     "development",
		},
		Artifacts: ArtifactsConfig{
			Dir:     "models",
			Preload: true,
		},
		API: APIConfig{
			Version:      "1.0.0",
			DefaultTopK:  5,
			MaxBodyBytes: 1 << 20,
		},
		Security: SecurityConfig{
			CORSOrigins:            []string{"*"},
			RateLimitReqs:          100,
			RateLimitWindow:        time.Minute,
			RateLimitDisabled:      false,
			RecommendRateLimitReqs: 30,
		},
		Cache: CacheConfig{
			Enabled:  true,
			Capacity: 1024,
			TTL:      10 * time.Minute,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources.
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns CONFIG_PATH if it exists, else the first existing
// default path, else "".
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths are keys that accept comma-separated strings from the environment.
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields splits comma-separated string values into slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}
		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envMappings maps environment variable names (lower-cased) to config keys.
// Unmapped variables are ignored.
var envMappings = map[string]string{
	"port":               "server.port",
	"http_port":          "server.port",
	"http_host":          "server.host",
	"http_read_timeout":  "server.read_timeout",
	"http_write_timeout": "server.write_timeout",
	"http_idle_timeout":  "server.idle_timeout",
	"shutdown_timeout":   "server.shutdown_timeout",
	"environment":        "server.environment",

	"artifacts_dir":     "artifacts.dir",
	"artifacts_preload": "artifacts.preload",

	"api_version":        "api.version",
	"api_default_top_k":  "api.default_top_k",
	"api_max_body_bytes": "api.max_body_bytes",

	"cors_origins":                  "security.cors_origins",
	"rate_limit_requests":           "security.rate_limit_reqs",
	"rate_limit_window":             "security.rate_limit_window",
	"rate_limit_disabled":           "security.rate_limit_disabled",
	"recommend_rate_limit_requests": "security.recommend_rate_limit_reqs",

	"cache_enabled":  "cache.enabled",
	"cache_capacity": "cache.capacity",
	"cache_ttl":      "cache.ttl",

	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc maps environment variable names to config keys.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
