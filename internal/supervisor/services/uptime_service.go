// DogMatch - Dog Breed Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dogmatch

package services

import (
	"context"
	"time"

	"github.com/tomtom215/dogmatch/internal/metrics"
)

// UptimeService refreshes the app_uptime_seconds gauge on an interval.
type UptimeService struct {
	start    time.Time
	interval time.Duration
}

// NewUptimeService creates the service. A non-positive interval means 15s.
func NewUptimeService(start time.Time, interval time.Duration) *UptimeService {
	if interval <= 0 {
		interval = 15 * time.Second
	}
	return &UptimeService{start: start, interval: interval}
}

// Serve implements suture.Service.
func (s *UptimeService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	metrics.UpdateUptime(s.start)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			metrics.UpdateUptime(s.start)
		}
	}
}

// String identifies the service in supervisor events.
func (s *UptimeService) String() string {
	return "uptime-metrics"
}
