// DogMatch - Dog Breed Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dogmatch

/*
Package config provides centralized configuration management for DogMatch.

Configuration is loaded with Koanf v2 from three layers, later layers
overriding earlier ones:

 1. Built-in defaults (defaultConfig)
 2. An optional YAML file: CONFIG_PATH, or config.yaml / config.yml in the
    working directory, or /etc/dogmatch/config.yaml
 3. Environment variables

# Environment Variables

Server:
  - PORT / HTTP_PORT: listen port (default: 5000)
  - HTTP_HOST: bind address (default: 0.0.0.0)
  - HTTP_READ_TIMEOUT, HTTP_WRITE_TIMEOUT, HTTP_IDLE_TIMEOUT, SHUTDOWN_TIMEOUT
  - ENVIRONMENT: development or production

Artifacts:
  - ARTIFACTS_DIR: model artifact directory (default: models)
  - ARTIFACTS_PRELOAD: warm the model at startup (default: true)

API:
  - API_VERSION, API_DEFAULT_TOP_K, API_MAX_BODY_BYTES

Security:
  - CORS_ORIGINS: comma-separated origins (default: *)
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, RATE_LIMIT_DISABLED
  - RECOMMEND_RATE_LIMIT_REQUESTS

Cache:
  - CACHE_ENABLED, CACHE_CAPACITY, CACHE_TTL

Logging:
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json or console (default: json)
  - LOG_CALLER: include caller file:line

Environment variables that are not listed are ignored.

# Example

	cfg, err := config.Load()
	if err != nil {
	    logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
	handle := predictor.NewHandle(cfg.Artifacts.Dir,
	    predictor.WithCache(cfg.CacheCapacity(), cfg.Cache.TTL))

# Thread Safety

Config is immutable after Load() and safe for concurrent reads.
*/
package config
