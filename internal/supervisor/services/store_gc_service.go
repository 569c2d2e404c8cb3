// Tourguide - Smart Tourism Recommendation Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourguide

package services

import (
	"context"
	"time"

	"github.com/tomtom215/tourguide/internal/logging"
	"github.com/tomtom215/tourguide/internal/metrics"
)

// GCRunner is satisfied by *store.BadgerStore.
type GCRunner interface {
	RunGC(discardRatio float64) error
}

// StoreGCService compacts the local store's value log on a fixed interval.
type StoreGCService struct {
	store        GCRunner
	interval     time.Duration
	discardRatio float64
	name         string
}

// NewStoreGCService creates the service. interval must be positive.
func NewStoreGCService(store GCRunner, interval time.Duration, discardRatio float64) *StoreGCService {
	return &StoreGCService{
		store:        store,
		interval:     interval,
		discardRatio: discardRatio,
		name:         "store-gc",
	}
}

// Serve implements suture.Service. GC failures are logged and do not stop
// the loop.
func (s *StoreGCService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.runOnce()
		}
	}
}

func (s *StoreGCService) runOnce() {
	start := time.Now()
	err := s.store.RunGC(s.discardRatio)
	metrics.RecordStoreGC(time.Since(start), err)
	if err != nil {
		logging.Warn().Err(err).Str("service", s.name).Msg("Store GC failed")
		return
	}
	logging.Debug().Dur("duration", time.Since(start)).Msg("Store GC completed")
}

// String implements fmt.Stringer for supervisor logs.
func (s *StoreGCService) String() string {
	return s.name
}
