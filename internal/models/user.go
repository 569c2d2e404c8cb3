// Tourguide - Smart Tourism Recommendation Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourguide

package models

import "slices"

// UserProfile is the remote account record keyed by email.
type UserProfile struct {
	Email           string   `json:"email"`
	FullName        string   `json:"fullName,omitempty"`
	Preferences     []string `json:"preferences"`
	DestinationCity string   `json:"destinationCity"`
}

// Clone returns a copy that shares no slices with p.
func (p UserProfile) Clone() UserProfile {
	if p.Preferences != nil {
		p.Preferences = slices.Clone(p.Preferences)
	}
	return p
}

// Session is the authenticated identity held by the client.
type Session struct {
	Authenticated bool
	UserEmail     string
}

// StoredSession is what the client keeps in local persistence between runs.
type StoredSession struct {
	Email       string   `json:"email"`
	Preferences []string `json:"preferences"`
}
