// DogMatch - Dog Breed Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dogmatch

package services

import (
	"context"
	"time"
)

// CacheSweeper drops expired cache entries and reports how many it removed.
// *predictor.Handle implements it.
type CacheSweeper interface {
	SweepCache() int
}

// CacheSweepService periodically removes expired recommendation results.
type CacheSweepService struct {
	sweeper  CacheSweeper
	interval time.Duration
}

// NewCacheSweepService creates the service. A non-positive interval means 1m.
func NewCacheSweepService(sweeper CacheSweeper, interval time.Duration) *CacheSweepService {
	if interval <= 0 {
		interval = time.Minute
	}
	return &CacheSweepService{sweeper: sweeper, interval: interval}
}

// Serve implements suture.Service.
func (s *CacheSweepService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.sweeper.SweepCache()
		}
	}
}

// String identifies the service in supervisor events.
func (s *CacheSweepService) String() string {
	return "cache-sweeper"
}
