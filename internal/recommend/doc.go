// Tourguide - Smart Tourism Recommendation Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourguide

// Package recommend selects catalog spots that match a user's preference
// categories.
//
// A spot matches when at least one of its categories is in the user's
// preference set. Matching is exact (case-sensitive), the same comparison
// the service uses when it stores categories, and input order is kept:
//
//	prefs := recommend.NewPreferenceSet(profile.Preferences)
//	recommended := recommend.MatchSpots(catalog, prefs)
package recommend
