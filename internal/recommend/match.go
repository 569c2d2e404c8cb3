// Tourguide - Smart Tourism Recommendation Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourguide

package recommend

import (
	"github.com/tomtom215/tourguide/internal/models"
)

// PreferenceSet is a set of preference categories.
type PreferenceSet map[string]struct{}

// NewPreferenceSet builds a set from prefs, dropping duplicates and blanks.
func NewPreferenceSet(prefs []string) PreferenceSet {
	set := make(PreferenceSet, len(prefs))
	for _, p := range prefs {
		if p == "" {
			continue
		}
		set[p] = struct{}{}
	}
	return set
}

// Has reports whether category is in the set.
func (s PreferenceSet) Has(category string) bool {
	_, ok := s[category]
	return ok
}

// Matches reports whether any of spot's categories is preferred.
func (s PreferenceSet) Matches(spot models.Spot) bool {
	return s.MatchCount(spot) > 0
}

// MatchCount returns how many of spot's distinct categories are preferred.
func (s PreferenceSet) MatchCount(spot models.Spot) int {
	n := 0
	seen := make(map[string]struct{}, len(spot.Category))
	for _, c := range spot.Category {
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		if s.Has(c) {
			n++
		}
	}
	return n
}

// MatchSpots returns the spots that match prefs, in input order. The result
// never aliases spots.
func MatchSpots(spots []models.Spot, prefs PreferenceSet) []models.Spot {
	out := make([]models.Spot, 0, len(spots))
	if len(prefs) == 0 {
		return out
	}
	for _, spot := range spots {
		if prefs.Matches(spot) {
			out = append(out, spot.Clone())
		}
	}
	return out
}
