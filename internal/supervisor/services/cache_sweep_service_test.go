// Tourguide - Smart Tourism Recommendation Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourguide

package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/tourguide/internal/remote"
)

var (
	_ suture.Service = (*CacheSweepService)(nil)
	_ Sweeper        = (*remote.CachingClient)(nil)
)

type countingSweeper struct {
	sweeps atomic.Int32
}

func (c *countingSweeper) Sweep() int {
	c.sweeps.Add(1)
	return 1
}

func TestCacheSweepService_RunsOnInterval(t *testing.T) {
	sw := &countingSweeper{}
	svc := NewCacheSweepService(sw, 10*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	if err := svc.Serve(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Serve() error = %v, want context.DeadlineExceeded", err)
	}
	if n := sw.sweeps.Load(); n < 2 {
		t.Errorf("Sweep calls = %d, want at least 2", n)
	}
	if svc.String() != "cache-sweep" {
		t.Errorf("String() = %q, want cache-sweep", svc.String())
	}
}
