// Tourguide - Smart Tourism Recommendation Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourguide

package views

import (
	"strings"

	"github.com/tomtom215/tourguide/internal/models"
)

// DefaultImage is served when a spot has no image.
const DefaultImage = "default.jpg"

// ImageURL resolves an image reference against the asset root.
//
//	""               -> <base>/images/default.jpg
//	"http..."        -> unchanged
//	"fort.jpg"       -> <base>/images/fort.jpg
func ImageURL(base, ref string) string {
	base = strings.TrimRight(base, "/")
	if ref == "" {
		return base + "/images/" + DefaultImage
	}
	if strings.HasPrefix(ref, "http") {
		return ref
	}
	return base + "/images/" + ref
}

// ResolveImages returns a copy of spots with every Image resolved.
func ResolveImages(base string, spots []models.Spot) []models.Spot {
	out := make([]models.Spot, len(spots))
	for i, s := range spots {
		s = s.Clone()
		s.Image = ImageURL(base, s.Image)
		out[i] = s
	}
	return out
}
