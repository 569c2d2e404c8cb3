// Tourguide - Smart Tourism Recommendation Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourguide

package viewmodel

import (
	"context"

	"github.com/tomtom215/tourguide/internal/models"
	"github.com/tomtom215/tourguide/internal/recommend"
	"github.com/tomtom215/tourguide/internal/views"
)

// FetchAllSpots loads the full catalog. On failure the list is emptied.
func (vm *ViewModel) FetchAllSpots(ctx context.Context) error {
	ctx, log := vm.begin(ctx, "fetch_spots")
	vm.update(func(s *State) {
		s.IsLoading = true
		s.Message = Message{}
	})
	defer vm.setLoading(false)

	spots, err := vm.api.ListSpots(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Error in fetchSpots")
		vm.update(func(s *State) {
			s.Spots = []models.Spot{}
			s.Message = Message{Text: msgFetchSpotsFailed, Kind: MessageError}
		})
		return finish("fetch_spots", newError(ErrFetch, msgFetchSpotsFailed, err))
	}

	resolved := vm.resolveImages(spots)
	vm.update(func(s *State) { s.Spots = resolved })
	log.Debug().Int("count", len(resolved)).Msg("Spots loaded")
	return finish("fetch_spots", nil)
}

// FetchRecommendedSpots loads the catalog and keeps the spots matching the
// user's preferences. The profile is reloaded first.
func (vm *ViewModel) FetchRecommendedSpots(ctx context.Context) error {
	ctx, log := vm.begin(ctx, "fetch_recommended")
	vm.update(func(s *State) {
		s.IsLoading = true
		s.Message = Message{}
	})
	defer vm.setLoading(false)

	fail := func(kind error, msg string, cause error) error {
		log.Error().Err(cause).Str("reason", msg).Msg("Error in fetchRecommendedSpots")
		vm.update(func(s *State) {
			s.Spots = []models.Spot{}
			s.Message = Message{Text: msg, Kind: MessageError}
		})
		return finish("fetch_recommended", newError(kind, msg, cause))
	}

	email := vm.sessionEmail()
	if email == "" {
		return fail(ErrPrecondition, msgNoUserEmail, nil)
	}

	resp, err := vm.api.GetUser(ctx, email)
	if err != nil {
		return fail(ErrFetch, err.Error(), err)
	}
	if !resp.Success {
		return fail(ErrFetch, "Failed to fetch user data: "+resp.Message, nil)
	}
	if resp.Data == nil {
		return fail(ErrPrecondition, msgUserDataEmpty, nil)
	}
	profile := resp.Data.Clone()
	vm.update(func(s *State) { s.Profile = &profile })

	if profile.DestinationCity == "" {
		return fail(ErrPrecondition, msgNoDestination, nil)
	}
	if len(profile.Preferences) == 0 {
		return fail(ErrPrecondition, msgNoPreferences, nil)
	}

	spots, err := vm.api.ListSpots(ctx)
	if err != nil {
		return fail(ErrFetch, err.Error(), err)
	}

	matched := recommend.MatchSpots(spots, recommend.NewPreferenceSet(profile.Preferences))
	resolved := vm.resolveImages(matched)
	vm.update(func(s *State) {
		s.Spots = resolved
		if len(resolved) == 0 {
			s.Message = Message{Text: msgNoRecommendations, Kind: MessageInfo}
		}
	})
	log.Debug().Int("total", len(spots)).Int("matched", len(resolved)).Msg("Recommended spots loaded")
	return finish("fetch_recommended", nil)
}

// SearchRemote runs a server-side search. Failures empty the list without
// a user-visible message.
func (vm *ViewModel) SearchRemote(ctx context.Context, query string) error {
	ctx, log := vm.begin(ctx, "search_spots")
	vm.update(func(s *State) {
		s.IsLoading = true
		s.Message = Message{}
	})
	defer vm.setLoading(false)

	spots, err := vm.api.SearchSpots(ctx, query)
	if err != nil {
		log.Warn().Err(err).Str("query", query).Msg("Spot search failed")
		vm.update(func(s *State) { s.Spots = []models.Spot{} })
		return finish("search_spots", newError(ErrFetch, err.Error(), err))
	}
	resolved := vm.resolveImages(spots)
	vm.update(func(s *State) { s.Spots = resolved })
	return finish("search_spots", nil)
}

// SetSearchQuery sets the local text filter.
func (vm *ViewModel) SetSearchQuery(q string) {
	vm.update(func(s *State) { s.Filter.SearchQuery = q })
}

// SetShowAllCities toggles the destination-city filter off (true) or on (false).
func (vm *ViewModel) SetShowAllCities(all bool) {
	vm.update(func(s *State) { s.Filter.ShowAllCities = all })
}

// SetSort sets the sort field and order.
func (vm *ViewModel) SetSort(by models.SortField, order models.SortOrder) {
	vm.update(func(s *State) {
		s.Filter.SortBy = by
		if order != "" {
			s.Filter.SortOrder = order
		}
	})
}

// ToggleSortOrder flips between ascending and descending.
func (vm *ViewModel) ToggleSortOrder() {
	vm.update(func(s *State) { s.Filter.SortOrder = s.Filter.SortOrder.Toggle() })
}

// FilteredExperiences is the spot list as it should be shown.
func (vm *ViewModel) FilteredExperiences() []models.Spot {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	city := ""
	if vm.state.Profile != nil {
		city = vm.state.Profile.DestinationCity
	}
	f := views.NewSpotFilter(vm.state.Filter, vm.state.Session.Authenticated, city)
	return views.FilterSpots(vm.state.Spots, f)
}

// SetView switches between the full and the recommended list and loads it.
func (vm *ViewModel) SetView(ctx context.Context, view View) error {
	if view != ViewBrowseAll && view != ViewBrowseRecommended {
		return finish("set_view", newError(ErrValidation, "Unknown view "+string(view), nil))
	}
	vm.update(func(s *State) { s.View = view })
	if view == ViewBrowseRecommended {
		return vm.FetchRecommendedSpots(ctx)
	}
	return vm.FetchAllSpots(ctx)
}
