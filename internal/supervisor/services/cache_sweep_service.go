// Tourguide - Smart Tourism Recommendation Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourguide

package services

import (
	"context"
	"time"

	"github.com/tomtom215/tourguide/internal/logging"
)

// Sweeper is satisfied by *remote.CachingClient.
type Sweeper interface {
	Sweep() int
}

// CacheSweepService evicts expired listing cache entries on a fixed interval
// so entries nobody reads again do not linger until capacity pushes them out.
type CacheSweepService struct {
	cache    Sweeper
	interval time.Duration
	name     string
}

// NewCacheSweepService creates the service. interval must be positive.
func NewCacheSweepService(cache Sweeper, interval time.Duration) *CacheSweepService {
	return &CacheSweepService{
		cache:    cache,
		interval: interval,
		name:     "cache-sweep",
	}
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
			if n := s.cache.Sweep(); n > 0 {
				logging.Debug().Int("removed", n).Str("service", s.name).Msg("Expired cache entries removed")
			}
		}
	}
}

// String implements fmt.Stringer for supervisor logs.
func (s *CacheSweepService) String() string {
	return s.name
}
