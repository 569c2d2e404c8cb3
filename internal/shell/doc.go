// Tourguide - Smart Tourism Recommendation Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourguide

// Package shell is a line-oriented terminal front end for the view model.
//
// Each input line is one command. Spots and itinerary entries are addressed
// by the 1-based numbers shown in the last listing, so "add 3" toggles the
// third spot of the current filtered list. Type "help" for the command list.
//
// The package also provides the terminal implementations of the view
// model's ports: a Prompter that asks on the same input stream and a
// LinkOpener that hands URLs to the desktop's browser launcher.
package shell
