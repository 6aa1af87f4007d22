// DogMatch - Dog Breed Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dogmatch

/*
Package api provides the HTTP interface of DogMatch.

Routing uses the Chi router with production middleware from the Chi
ecosystem (go-chi/cors, go-chi/httprate) plus the instrumentation in
internal/middleware.

# Endpoints

	GET  /                  service index
	GET  /api/health        loads the model if needed and reports its state
	GET  /api/health/live   liveness probe, always 200
	GET  /api/health/ready  readiness probe, 503 until artifacts are loaded
	POST /api/recommend     recommend breeds for a JSON preference object
	GET  /api/breeds        list known breeds
	GET  /api/features      input schema and accepted categorical values
	GET  /api/model-info    classifier and similarity model summary
	GET  /api/example       a complete example request body
	GET  /metrics           Prometheus metrics

# Recommend

The request body is a flat JSON object keyed by feature name:

	{
	  "Size": "Medium",
	  "Exercise Requirements (hrs/day)": 2.0,
	  "Good with Children": "Yes",
	  ...
	}

An optional ?top_k= query parameter (1-100) sets how many similar breeds are
returned; it defaults to api.default_top_k.

# Errors

Errors are JSON objects with an "error" message:

	400  missing fields, unknown categorical values, non-numeric values, bad top_k
	404  unknown route
	405  wrong method for a known route
	413  body larger than api.max_body_bytes
	429  rate limited
	500  pipeline failure (scaling or classification)
	503  model artifacts could not be loaded
*/
package api
