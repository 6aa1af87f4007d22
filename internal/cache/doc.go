// DogMatch - Dog Breed Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dogmatch

/*
Package cache provides a generic, thread-safe LRU cache with TTL expiration.

Recommendation results are a pure function of the request and the loaded
artifacts, so the predictor service memoizes them here keyed by a canonical
encoding of the request.

# Usage Example

	c := cache.NewLRU[*predictor.Result](1024, 10*time.Minute)

	if res, ok := c.Get(key); ok {
	    return res.Clone(), nil
	}
	res := compute()
	c.Add(key, res)

# Expiration

Entries are expired lazily on Get. The server also runs a supervised sweeper
that calls CleanupExpired on an interval, releasing memory held by entries
that are never read again, and reports Stats.

# Thread Safety

All methods take a single mutex; Get mutates the recency list, so there is
no read-only fast path.
*/
package cache
