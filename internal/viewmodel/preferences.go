// Tourguide - Smart Tourism Recommendation Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourguide

package viewmodel

import (
	"context"
	"slices"
)

// SetPreferences replaces the editable preference set and marks it changed.
func (vm *ViewModel) SetPreferences(prefs []string) {
	next := slices.Clone(prefs)
	if next == nil {
		next = []string{}
	}
	vm.update(func(s *State) {
		s.Preferences = next
		s.PreferencesChanged = true
	})
}

// SavePreferences stores the preference set on the server. On success the
// profile copy and the persisted session are updated and, when the
// recommended view is showing, recommendations are reloaded.
func (vm *ViewModel) SavePreferences(ctx context.Context) error {
	ctx, log := vm.begin(ctx, "save_preferences")

	var (
		email string
		prefs []string
	)
	vm.update(func(s *State) {
		s.IsLoading = true
		s.Message = Message{}
		email = s.Session.UserEmail
		prefs = slices.Clone(s.Preferences)
	})
	defer vm.setLoading(false)

	if email == "" {
		vm.setMessage(MessageError, msgPreferencesNoEmail)
		return finish("save_preferences", newError(ErrPrecondition, msgPreferencesNoEmail, nil))
	}

	if _, err := vm.api.UpdatePreferences(ctx, email, prefs); err != nil {
		msg := remoteMessage(err, msgPreferencesFailed)
		log.Error().Err(err).Msg("Error saving preferences")
		vm.setMessage(MessageError, msg)
		return finish("save_preferences", newError(ErrPersistence, msg, err))
	}

	var view View
	vm.update(func(s *State) {
		s.PreferencesChanged = false
		if s.Profile != nil {
			s.Profile.Preferences = slices.Clone(prefs)
		}
		view = s.View
	})
	vm.persistSession(log)
	log.Info().Strs("preferences", prefs).Msg("Preferences saved")

	if view == ViewBrowseRecommended {
		if err := vm.FetchRecommendedSpots(ctx); err != nil {
			return finish("save_preferences", err)
		}
	}
	vm.update(func(s *State) {
		// Keep an informational "no matches" note from the refetch visible.
		if s.Message.Empty() {
			s.Message = Message{Text: msgPreferencesSaved, Kind: MessageSuccess}
		}
	})
	return finish("save_preferences", nil)
}
