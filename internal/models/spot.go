// Tourguide - Smart Tourism Recommendation Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourguide

package models

// Location holds where a spot is.
type Location struct {
	City string `json:"city"`
}

// GoogleReviews is the aggregate Google rating published for a spot.
type GoogleReviews struct {
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"reviewCount"`
}

// Spot is an immutable snapshot of a point of interest from the catalog.
//
// Image holds the raw reference as served by the API until the client
// resolves it to an absolute URL; the resolved value is never sent back.
type Spot struct {
	SpotID        string        `json:"spotId"`
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	Category      []string      `json:"category"`
	Location      Location      `json:"location"`
	Price         float64       `json:"price"`
	Image         string        `json:"image,omitempty"`
	GoogleReviews GoogleReviews `json:"googleReviews"`
	Website       string        `json:"website,omitempty"`
}

// Clone returns a copy that shares no slices with s.
func (s Spot) Clone() Spot {
	if s.Category != nil {
		s.Category = append([]string(nil), s.Category...)
	}
	return s
}

// CloneSpots deep-copies a spot list.
func CloneSpots(spots []Spot) []Spot {
	if spots == nil {
		return nil
	}
	out := make([]Spot, len(spots))
	for i := range spots {
		out[i] = spots[i].Clone()
	}
	return out
}
