// Tourguide - Smart Tourism Recommendation Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourguide

package views

import (
	"cmp"
	"slices"
	"strings"

	"github.com/tomtom215/tourguide/internal/models"
)

// SpotFilter selects and orders spots.
type SpotFilter struct {
	// Query is matched case-insensitively against title, description and categories.
	Query string

	// City restricts results to one city. Empty disables the filter.
	City string

	SortBy    models.SortField
	SortOrder models.SortOrder
}

// NewSpotFilter derives a SpotFilter from the UI state. The city filter
// only applies when the user hides other cities, is signed in, and has a
// destination city.
func NewSpotFilter(fs models.FilterSortState, authenticated bool, destinationCity string) SpotFilter {
	f := SpotFilter{
		Query:     fs.SearchQuery,
		SortBy:    fs.SortBy,
		SortOrder: fs.SortOrder,
	}
	if !fs.ShowAllCities && authenticated && destinationCity != "" {
		f.City = destinationCity
	}
	return f
}

// FilterSpots returns the spots selected by f in f's order. The sort is
// stable and SortNone keeps input order.
func FilterSpots(spots []models.Spot, f SpotFilter) []models.Spot {
	query := strings.ToLower(f.Query)

	out := make([]models.Spot, 0, len(spots))
	for _, s := range spots {
		if query != "" && !matchesQuery(s, query) {
			continue
		}
		if f.City != "" && s.Location.City != f.City {
			continue
		}
		out = append(out, s.Clone())
	}

	if f.SortBy == models.SortNone {
		return out
	}
	desc := f.SortOrder == models.SortDesc
	slices.SortStableFunc(out, func(a, b models.Spot) int {
		c := compareSpots(a, b, f.SortBy)
		if desc {
			return -c
		}
		return c
	})
	return out
}

// matchesQuery expects query to be lower-cased already.
func matchesQuery(s models.Spot, query string) bool {
	if strings.Contains(strings.ToLower(s.Title), query) ||
		strings.Contains(strings.ToLower(s.Description), query) {
		return true
	}
	for _, c := range s.Category {
		if strings.Contains(strings.ToLower(c), query) {
			return true
		}
	}
	return false
}

func compareSpots(a, b models.Spot, by models.SortField) int {
	switch by {
	case models.SortTitle:
		return strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
	case models.SortPrice:
		return cmp.Compare(a.Price, b.Price)
	case models.SortRating:
		return cmp.Compare(a.GoogleReviews.Rating, b.GoogleReviews.Rating)
	case models.SortReviewCount:
		return cmp.Compare(a.GoogleReviews.ReviewCount, b.GoogleReviews.ReviewCount)
	default:
		return 0
	}
}
