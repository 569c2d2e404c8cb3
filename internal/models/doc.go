// Tourguide - Smart Tourism Recommendation Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourguide

/*
Package models defines the data structures shared by the Tourguide client.

It contains the domain snapshots served by the remote tourism API (Spot,
UserProfile, ItineraryEntry, Review), the locally persisted Session, the
transient FilterSortState used by the browse views, and the request and
response envelopes of the remote JSON contract.

Dates exchanged with the remote service use the en-GB short form
dd/mm/yyyy; FormatDate and ParseDate convert between that form and
time.Time.
*/
package models
