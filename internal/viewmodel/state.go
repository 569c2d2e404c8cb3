// Tourguide - Smart Tourism Recommendation Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourguide

package viewmodel

import (
	"slices"

	"github.com/tomtom215/tourguide/internal/models"
)

// View selects which spot list is shown.
type View string

const (
	ViewBrowseAll         View = "browse-all"
	ViewBrowseRecommended View = "browse-recommended"
)

// ParseView accepts "all" and "recommended" as shorthands.
func ParseView(s string) (View, bool) {
	switch s {
	case string(ViewBrowseAll), "all":
		return ViewBrowseAll, true
	case string(ViewBrowseRecommended), "recommended":
		return ViewBrowseRecommended, true
	}
	return "", false
}

// MessageKind classifies the user-visible message.
type MessageKind string

const (
	MessageError   MessageKind = "error"
	MessageInfo    MessageKind = "info"
	MessageSuccess MessageKind = "success"
)

// Message is the single user-visible status line. A zero Message is empty.
type Message struct {
	Text string      `json:"text"`
	Kind MessageKind `json:"kind"`
}

// Empty reports whether there is nothing to show.
func (m Message) Empty() bool { return m.Text == "" }

// SignupError is the field-level signup failure.
type SignupError struct {
	Field string `json:"field"`
	Text  string `json:"text"`
}

// ReviewForm is the in-progress review.
type ReviewForm struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// ReviewFlow tracks the review dialog for a booked entry.
type ReviewFlow struct {
	Open     bool                   `json:"open"`
	ShowForm bool                   `json:"showForm"`
	Entry    *models.ItineraryEntry `json:"entry,omitempty"`
	Form     ReviewForm             `json:"form"`
}

// ReviewsPanel is the list of reviews for one spot.
type ReviewsPanel struct {
	Open      bool                   `json:"open"`
	Spot      *models.Spot           `json:"spot,omitempty"`
	Reviews   []models.Review        `json:"reviews"`
	SortBy    models.ReviewSortField `json:"sortBy"`
	SortOrder models.SortOrder       `json:"sortOrder"`
}

// State is everything the client renders.
type State struct {
	Session models.Session      `json:"session"`
	Profile *models.UserProfile `json:"profile,omitempty"`

	// Preferences is the editable preference set of the signed-in user.
	Preferences        []string `json:"preferences"`
	PreferencesChanged bool     `json:"preferencesChanged"`

	View   View                   `json:"view"`
	Spots  []models.Spot          `json:"spots"`
	Filter models.FilterSortState `json:"filter"`

	Itinerary []models.ItineraryEntry `json:"itinerary"`
	// ItinerarySynced is false while local itinerary changes have not been saved.
	ItinerarySynced bool `json:"itinerarySynced"`
	// DraggedIndex is the entry picked up by DragStart, or -1.
	DraggedIndex int `json:"draggedIndex"`

	ReviewFlow ReviewFlow   `json:"reviewFlow"`
	Reviews    ReviewsPanel `json:"reviews"`

	Message     Message     `json:"message"`
	LoginError  string      `json:"loginError,omitempty"`
	SignupError SignupError `json:"signupError"`

	// IsLoading is a best-effort hint that a request is in flight.
	IsLoading bool `json:"isLoading"`
}

func initialState() State {
	return State{
		View:            ViewBrowseAll,
		Filter:          models.DefaultFilterSortState(),
		ItinerarySynced: true,
		DraggedIndex:    -1,
		Reviews: ReviewsPanel{
			SortBy:    models.ReviewSortDate,
			SortOrder: models.SortDesc,
		},
	}
}

// clone returns a deep copy of s.
func (s State) clone() State {
	out := s
	if s.Profile != nil {
		p := s.Profile.Clone()
		out.Profile = &p
	}
	out.Preferences = slices.Clone(s.Preferences)
	out.Spots = models.CloneSpots(s.Spots)
	out.Itinerary = models.CloneEntries(s.Itinerary)
	if s.ReviewFlow.Entry != nil {
		e := models.CloneEntries([]models.ItineraryEntry{*s.ReviewFlow.Entry})[0]
		out.ReviewFlow.Entry = &e
	}
	if s.Reviews.Spot != nil {
		sp := s.Reviews.Spot.Clone()
		out.Reviews.Spot = &sp
	}
	out.Reviews.Reviews = slices.Clone(s.Reviews.Reviews)
	return out
}
