// Tourguide - Smart Tourism Recommendation Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourguide

package viewmodel

import (
	"context"
	"slices"

	"github.com/tomtom215/tourguide/internal/logging"
	"github.com/tomtom215/tourguide/internal/metrics"
	"github.com/tomtom215/tourguide/internal/models"
	"github.com/tomtom215/tourguide/internal/remote"
)

// IsInItinerary reports whether spot is already planned.
func (vm *ViewModel) IsInItinerary(spot models.Spot) bool {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return indexOfSpot(vm.state.Itinerary, spot.SpotID) >= 0
}

// TotalCost is the sum of all entry prices.
func (vm *ViewModel) TotalCost() float64 {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return models.TotalCost(vm.state.Itinerary)
}

func indexOfSpot(entries []models.ItineraryEntry, spotID string) int {
	return slices.IndexFunc(entries, func(e models.ItineraryEntry) bool { return e.SpotID == spotID })
}

// mutateItinerary applies fn to the itinerary under the lock. fn returns
// false to signal that nothing changed.
func (vm *ViewModel) mutateItinerary(fn func(entries []models.ItineraryEntry) ([]models.ItineraryEntry, bool)) bool {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	next, changed := fn(vm.state.Itinerary)
	if !changed {
		return false
	}
	vm.state.Itinerary = next
	vm.state.ItinerarySynced = false
	vm.itineraryRev++
	return true
}

// ToggleItinerary adds spot (pending, dated today) or removes it, then saves.
// A failed save is reported and not rolled back.
func (vm *ViewModel) ToggleItinerary(ctx context.Context, spot models.Spot) error {
	ctx, log := vm.begin(ctx, "toggle_itinerary")
	today := vm.today()
	added := false
	vm.mutateItinerary(func(entries []models.ItineraryEntry) ([]models.ItineraryEntry, bool) {
		if i := indexOfSpot(entries, spot.SpotID); i >= 0 {
			return slices.Delete(slices.Clone(entries), i, i+1), true
		}
		added = true
		return append(slices.Clone(entries), models.NewItineraryEntry(spot, today)), true
	})
	log.Debug().Str("spot_id", spot.SpotID).Bool("added", added).Msg("Itinerary toggled")
	return finish("toggle_itinerary", vm.persistItinerary(ctx))
}

// RemoveFromItinerary removes the entry at index, then saves.
func (vm *ViewModel) RemoveFromItinerary(ctx context.Context, index int) error {
	ctx, _ = vm.begin(ctx, "remove_itinerary")
	ok := vm.mutateItinerary(func(entries []models.ItineraryEntry) ([]models.ItineraryEntry, bool) {
		if index < 0 || index >= len(entries) {
			return entries, false
		}
		return slices.Delete(slices.Clone(entries), index, index+1), true
	})
	if !ok {
		return finish("remove_itinerary", newError(ErrValidation, msgIndexOutOfRange, nil))
	}
	return finish("remove_itinerary", vm.persistItinerary(ctx))
}

// Reorder moves the entry at from to position to, then saves.
func (vm *ViewModel) Reorder(ctx context.Context, from, to int) error {
	ctx, _ = vm.begin(ctx, "reorder_itinerary")
	ok := vm.mutateItinerary(func(entries []models.ItineraryEntry) ([]models.ItineraryEntry, bool) {
		n := len(entries)
		if from < 0 || from >= n || to < 0 || to >= n {
			return entries, false
		}
		next := slices.Clone(entries)
		moved := next[from]
		next = slices.Delete(next, from, from+1)
		next = slices.Insert(next, to, moved)
		return next, true
	})
	if !ok {
		return finish("reorder_itinerary", newError(ErrValidation, msgIndexOutOfRange, nil))
	}
	return finish("reorder_itinerary", vm.persistItinerary(ctx))
}

// DragStart picks up the entry at index for a later Drop.
func (vm *ViewModel) DragStart(index int) {
	vm.update(func(s *State) { s.DraggedIndex = index })
}

// Drop moves the picked-up entry to index.
func (vm *ViewModel) Drop(ctx context.Context, index int) error {
	var from int
	vm.update(func(s *State) {
		from = s.DraggedIndex
		s.DraggedIndex = -1
	})
	if from < 0 {
		return finish("reorder_itinerary", newError(ErrValidation, msgNoDrag, nil))
	}
	return vm.Reorder(ctx, from, index)
}

// PersistItinerary saves the whole itinerary, overwriting the stored one.
func (vm *ViewModel) PersistItinerary(ctx context.Context) error {
	ctx, _ = vm.begin(ctx, "persist_itinerary")
	return finish("persist_itinerary", vm.persistItinerary(ctx))
}

func (vm *ViewModel) persistItinerary(ctx context.Context) error {
	return vm.saveItinerary(ctx, msgSaveItinerary)
}

// saveItinerary posts the current itinerary. failMsg is shown when the
// server gives no message of its own.
func (vm *ViewModel) saveItinerary(ctx context.Context, failMsg string) error {
	log := logging.Ctx(ctx)

	vm.mu.RLock()
	email := vm.state.Session.UserEmail
	entries := models.CloneEntries(vm.state.Itinerary)
	rev := vm.itineraryRev
	vm.mu.RUnlock()

	if email == "" {
		metrics.RecordItinerarySave(false)
		vm.setMessage(MessageError, msgNoUserEmail)
		return newError(ErrPrecondition, msgNoUserEmail, nil)
	}

	payload := models.NewItineraryPayload(email, entries, vm.today())
	if _, err := vm.api.SaveItinerary(ctx, payload); err != nil {
		metrics.RecordItinerarySave(false)
		msg := remoteMessage(err, failMsg)
		log.Error().Err(err).Int("entries", len(entries)).Msg("Error saving itinerary")
		vm.setMessage(MessageError, msg)
		return newError(ErrPersistence, msg, err)
	}

	metrics.RecordItinerarySave(true)
	vm.mu.Lock()
	if vm.itineraryRev == rev {
		vm.state.ItinerarySynced = true
	}
	vm.mu.Unlock()
	log.Debug().Int("entries", len(entries)).Float64("total_cost", payload.TotalCost).Msg("Itinerary saved")
	return nil
}

// FetchItinerary loads the saved itinerary. A missing itinerary (404) is
// empty; any other failure also leaves it empty and is only logged.
func (vm *ViewModel) FetchItinerary(ctx context.Context) error {
	ctx, log := vm.begin(ctx, "fetch_itinerary")

	email := vm.sessionEmail()
	if email == "" {
		vm.replaceItinerary(nil, true)
		return finish("fetch_itinerary", nil)
	}

	entries, err := vm.api.GetItinerary(ctx, email)
	if remote.IsNotFound(err) {
		log.Debug().Str("email", email).Msg("No existing itinerary found for user")
		vm.replaceItinerary(nil, true)
		return finish("fetch_itinerary", nil)
	}
	if err != nil {
		log.Error().Err(err).Msg("Error fetching itinerary")
		vm.replaceItinerary(nil, false)
		return finish("fetch_itinerary", newError(ErrFetch, err.Error(), err))
	}

	vm.replaceItinerary(entries, true)
	return finish("fetch_itinerary", nil)
}

func (vm *ViewModel) replaceItinerary(entries []models.ItineraryEntry, synced bool) {
	next := models.CloneEntries(entries)
	if next == nil {
		next = []models.ItineraryEntry{}
	}
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.state.Itinerary = next
	vm.state.ItinerarySynced = synced
	vm.itineraryRev++
}

// Book opens the spot's booking site and marks its entry booked, then saves.
// A spot without an itinerary entry only opens the site.
func (vm *ViewModel) Book(ctx context.Context, entry models.ItineraryEntry) error {
	ctx, log := vm.begin(ctx, "book")

	website := entry.Website
	if website == "" {
		vm.read(func(s *State) {
			if i := slices.IndexFunc(s.Spots, func(sp models.Spot) bool { return sp.SpotID == entry.SpotID }); i >= 0 {
				website = s.Spots[i].Website
			}
		})
	}
	if website != "" {
		if err := vm.opener.Open(ctx, website); err != nil {
			log.Warn().Err(err).Str("url", website).Msg("Could not open booking site")
		}
	}

	booked := vm.mutateItinerary(func(entries []models.ItineraryEntry) ([]models.ItineraryEntry, bool) {
		i := indexOfSpot(entries, entry.SpotID)
		if i < 0 {
			return entries, false
		}
		next := models.CloneEntries(entries)
		next[i].Status = models.StatusBooked
		return next, true
	})
	if !booked {
		return finish("book", nil)
	}
	log.Info().Str("spot_id", entry.SpotID).Msg("Entry booked")
	return finish("book", vm.saveItinerary(ctx, msgBookingFailed))
}
