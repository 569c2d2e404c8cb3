// Tourguide - Smart Tourism Recommendation Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourguide

// Package views holds the pure derived views rendered by the client:
// the filtered and sorted spot list, the sorted review list and image URL
// resolution. Functions never mutate their inputs.
package views
