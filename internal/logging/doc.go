// DogMatch - Dog Breed Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dogmatch

// Package logging provides centralized zerolog-based structured logging for DogMatch.
//
// The package wraps a single global zerolog.Logger with:
//   - JSON output for production, console output for development
//   - Request and correlation IDs carried in context.Context
//   - Component loggers (WithComponent)
//   - An slog.Handler adapter for libraries that require *slog.Logger (sutureslog)
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:     "info",
//	    Format:    "json",
//	    Timestamp: true,
//	    Service:   "dogmatch",
//	})
//
//	logging.Info().Str("addr", ":5000").Msg("HTTP server listening")
//	logging.Ctx(ctx).Warn().Err(err).Msg("similar breeds unavailable")
//
// # Configuration
//
// The level and format come from internal/config (logging.level,
// logging.format; LOG_LEVEL and LOG_FORMAT in the environment). Unknown level
// names fall back to info; ValidLevel lets the config layer reject them.
//
// # Request Context
//
// The HTTP request-ID middleware stores IDs with ContextWithRequestID and
// ContextWithCorrelationID. Ctx and CtxWith read them back so every entry
// logged while serving a request carries request_id and correlation_id.
//
// # Best Practices
//
// Always terminate log chains with .Msg() or .Send():
//
//	logging.Info().Str("key", "value").Msg("message")  // Correct
//	logging.Info().Str("key", "value")                 // WRONG - log not emitted
//
// # Testing
//
//	var buf bytes.Buffer
//	logger := logging.NewTestLogger(&buf)
//	ctx := logging.ContextWithLogger(context.Background(), logger)
package logging
