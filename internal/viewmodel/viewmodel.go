// Tourguide - Smart Tourism Recommendation Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourguide

package viewmodel

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/tourguide/internal/logging"
	"github.com/tomtom215/tourguide/internal/metrics"
	"github.com/tomtom215/tourguide/internal/models"
	"github.com/tomtom215/tourguide/internal/remote"
	"github.com/tomtom215/tourguide/internal/store"
	"github.com/tomtom215/tourguide/internal/views"
)

// ViewModel owns State and mediates every transition on it.
type ViewModel struct {
	cfg      Config
	api      remote.API
	store    store.KeyValueStore
	opener   LinkOpener
	prompter Prompter
	clock    Clock

	mu    sync.RWMutex
	state State
	// itineraryRev increments on every local itinerary change. A save only
	// marks the itinerary synced if no change happened while it was in flight.
	itineraryRev uint64
}

// New creates a ViewModel. deps.API and deps.Store are required; the other
// ports default to no-ops and the system clock.
func New(cfg Config, deps Deps) (*ViewModel, error) {
	if deps.API == nil {
		return nil, errors.New("viewmodel: API is required")
	}
	if deps.Store == nil {
		return nil, errors.New("viewmodel: Store is required")
	}
	vm := &ViewModel{
		cfg:      cfg,
		api:      deps.API,
		store:    deps.Store,
		opener:   deps.Opener,
		prompter: deps.Prompter,
		clock:    deps.Clock,
		state:    initialState(),
	}
	if vm.opener == nil {
		vm.opener = noopOpener{}
	}
	if vm.prompter == nil {
		vm.prompter = declinePrompter{}
	}
	if vm.clock == nil {
		vm.clock = systemClock
	}
	return vm, nil
}

var systemClock = ClockFunc(func() time.Time { return time.Now() })

// Snapshot returns a deep copy of the current state.
func (vm *ViewModel) Snapshot() State {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return vm.state.clone()
}

// Cities returns the destination cities offered at signup.
func (vm *ViewModel) Cities() []string { return slices.Clone(vm.cfg.Cities) }

// Categories returns the preference categories offered at signup.
func (vm *ViewModel) Categories() []string { return slices.Clone(vm.cfg.Categories) }

// ClearMessage empties the message slot.
func (vm *ViewModel) ClearMessage() {
	vm.update(func(s *State) { s.Message = Message{} })
}

// update applies fn to the state under the write lock.
func (vm *ViewModel) update(fn func(*State)) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	fn(&vm.state)
}

// read runs fn under the read lock.
func (vm *ViewModel) read(fn func(*State)) {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	fn(&vm.state)
}

func (vm *ViewModel) setMessage(kind MessageKind, text string) {
	vm.update(func(s *State) { s.Message = Message{Text: text, Kind: kind} })
}

func (vm *ViewModel) setLoading(loading bool) {
	vm.update(func(s *State) { s.IsLoading = loading })
}

// sessionEmail returns the signed-in user's email, or "".
func (vm *ViewModel) sessionEmail() string {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return vm.state.Session.UserEmail
}

// today formats the clock's current date the way the service stores dates.
func (vm *ViewModel) today() string {
	return models.FormatDate(vm.clock.Now())
}

// begin starts an operation: a fresh correlation ID and an operation logger.
func (vm *ViewModel) begin(ctx context.Context, op string) (context.Context, zerolog.Logger) {
	ctx = logging.ContextWithNewCorrelationID(ctx)
	return ctx, logging.Ctx(ctx).With().Str("operation", op).Logger()
}

// finish records the outcome of op and returns err unchanged.
func finish(op string, err error) error {
	metrics.RecordOperation(op, kindLabel(err))
	return err
}

// resolveImages points every spot image at the asset server.
func (vm *ViewModel) resolveImages(spots []models.Spot) []models.Spot {
	return views.ResolveImages(vm.cfg.AssetURL, spots)
}
