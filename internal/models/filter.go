// Tourguide - Smart Tourism Recommendation Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourguide

package models

// SortField selects the spot attribute the browse list is ordered by.
type SortField string

const (
	SortNone        SortField = ""
	SortTitle       SortField = "title"
	SortPrice       SortField = "price"
	SortRating      SortField = "rating"
	SortReviewCount SortField = "reviewCount"
)

// ParseSortField maps user input to a SortField.
func ParseSortField(s string) (SortField, bool) {
	switch SortField(s) {
	case SortNone, SortTitle, SortPrice, SortRating, SortReviewCount:
		return SortField(s), true
	}
	if s == "none" {
		return SortNone, true
	}
	return SortNone, false
}

// SortOrder is ascending or descending.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Toggle flips the order.
func (o SortOrder) Toggle() SortOrder {
	if o == SortAsc {
		return SortDesc
	}
	return SortAsc
}

// FilterSortState is the transient browse configuration.
type FilterSortState struct {
	SearchQuery   string    `json:"searchQuery"`
	ShowAllCities bool      `json:"showAllCities"`
	SortBy        SortField `json:"sortBy"`
	SortOrder     SortOrder `json:"sortOrder"`
}

// DefaultFilterSortState shows every city in catalog order.
func DefaultFilterSortState() FilterSortState {
	return FilterSortState{ShowAllCities: true, SortBy: SortNone, SortOrder: SortAsc}
}

// ReviewSortField orders the reviews list.
type ReviewSortField string

const (
	ReviewSortDate   ReviewSortField = "date"
	ReviewSortRating ReviewSortField = "rating"
)
