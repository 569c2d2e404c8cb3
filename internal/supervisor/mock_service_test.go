// Tourguide - Smart Tourism Recommendation Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourguide

package supervisor

import (
	"context"
	"errors"
	"sync/atomic"
)

// mockService runs until canceled, failing its first failures starts.
type mockService struct {
	name     string
	failures int32
	starts   atomic.Int32
}

func newMockService(name string, failures int32) *mockService {
	return &mockService{name: name, failures: failures}
}

func (m *mockService) Serve(ctx context.Context) error {
	if n := m.starts.Add(1); n <= m.failures {
		return errors.New("simulated failure")
	}
	<-ctx.Done()
	return ctx.Err()
}

func (m *mockService) String() string { return m.name }
