// Tourguide - Smart Tourism Recommendation Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourguide

package views

import (
	"cmp"
	"slices"
	"time"

	"github.com/tomtom215/tourguide/internal/models"
)

// SortReviews returns a sorted copy of reviews. Dates are parsed as
// dd/mm/yyyy; unparsable dates sort as the zero time.
func SortReviews(reviews []models.Review, by models.ReviewSortField, order models.SortOrder) []models.Review {
	out := slices.Clone(reviews)
	if out == nil {
		out = []models.Review{}
	}
	desc := order != models.SortAsc

	slices.SortStableFunc(out, func(a, b models.Review) int {
		var c int
		if by == models.ReviewSortRating {
			c = cmp.Compare(a.Rating, b.Rating)
		} else {
			c = reviewDate(a).Compare(reviewDate(b))
		}
		if desc {
			return -c
		}
		return c
	})
	return out
}

func reviewDate(r models.Review) time.Time {
	t, err := models.ParseDate(r.CreatedAt)
	if err != nil {
		return time.Time{}
	}
	return t
}
