// Tourguide - Smart Tourism Recommendation Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourguide

/*
Package cache provides a bounded, thread-safe LRU cache with TTL expiration.

It backs the remote client's listing cache: the spot catalog, search results
and per-spot review lists are read far more often than they change, so a
short TTL saves round trips while browsing.

# Usage

	c := cache.NewLRU[[]models.Spot](128, time.Minute)
	c.Add("spots", spots)
	if spots, ok := c.Get("spots"); ok {
	    // use spots
	}
	c.Remove("spots")

Expired entries are dropped lazily on Get, or in bulk by CleanupExpired.
When the cache is full, Add evicts the least recently used entry.
*/
package cache
