// Tourguide - Smart Tourism Recommendation Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourguide

package models

import "time"

// DateLayout is the en-GB short date form used on the wire.
const DateLayout = "02/01/2006"

// FormatDate renders t as dd/mm/yyyy.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a dd/mm/yyyy date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}
