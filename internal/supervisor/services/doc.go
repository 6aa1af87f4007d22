// DogMatch - Dog Breed Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dogmatch

/*
Package services provides suture.Service wrappers for DogMatch components.

Each wrapper translates a component's lifecycle into suture's
Serve(ctx context.Context) error contract and implements fmt.Stringer so
supervisor events name the service.

# Available Services

HTTP Server (HTTPServerService):
  - Wraps *http.Server (through the HTTPServer interface)
  - Graceful shutdown with a configurable timeout on context cancellation
  - Listen errors are returned so the supervisor restarts the server

Uptime (UptimeService):
  - Refreshes the app_uptime_seconds gauge on an interval

Cache Sweeper (CacheSweepService):
  - Removes expired recommendation results once per cache TTL
  - Publishes cache size, expiry and eviction counters

Model Warm-up (ModelWarmupService):
  - Calls Load on the predictor handle at startup
  - Load failures are retried with the supervisor's backoff
  - Returns suture.ErrDoNotRestart once the model is loaded

# Usage

	tree.AddModelService(services.NewModelWarmupService(handle))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	tree.AddAPIService(services.NewUptimeService(start, 15*time.Second))
*/
package services
