// DogMatch - Dog Breed Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dogmatch

/*
Package main is the entry point for the DogMatch server.

DogMatch recommends dog breeds from a user's lifestyle preferences. A k-NN
classifier picks the primary breed and a nearest-neighbor index over the
reference dataset ranks similar breeds. Both are loaded from a directory of
trained artifacts.

# Application Architecture

	RootSupervisor ("dogmatch")
	├── ModelSupervisor ("model-layer")
	│   └── Model warm-up (if ARTIFACTS_PRELOAD=true)
	└── APISupervisor ("api-layer")
	    ├── HTTP server (chi router)
	    └── Uptime gauge

Initialization order:

 1. Configuration: koanf v2 (defaults, config.yaml, environment)
 2. Logging: zerolog, JSON or console
 3. Predictor handle with optional result cache
 4. HTTP router and server
 5. Supervisor tree

# Endpoints

	GET  /                   service index
	GET  /api/health         model health (200 or 503)
	GET  /api/health/live    liveness
	GET  /api/health/ready   readiness, never triggers a load
	POST /api/recommend      breed recommendation (?top_k=1..100)
	GET  /api/breeds         known breeds
	GET  /api/features       input schema
	GET  /api/model-info     model summary
	GET  /api/example        example request body
	GET  /metrics            Prometheus metrics

# Configuration

Common environment variables:

	PORT=5000                 HTTP port
	ARTIFACTS_DIR=models      artifact directory
	ARTIFACTS_PRELOAD=true    load the model at startup
	LOG_LEVEL=info            trace, debug, info, warn, error
	LOG_FORMAT=json           json or console
	CORS_ORIGINS=*            comma-separated origins
	RATE_LIMIT_REQUESTS=100   requests per window per IP
	CACHE_ENABLED=true        result cache
	CONFIG_PATH=              explicit config file

# Running

	ARTIFACTS_DIR=./models LOG_FORMAT=console ./dogmatch

	curl -s localhost:5000/api/example | jq .example_input > prefs.json
	curl -s -X POST localhost:5000/api/recommend -d @prefs.json

# Shutdown

SIGINT or SIGTERM cancels the supervisor tree. The HTTP server drains for up
to SHUTDOWN_TIMEOUT (default 10s).
*/
package main
