// Tourguide - Smart Tourism Recommendation Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourguide

package models

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the body of POST /register.
type RegisterRequest struct {
	FullName        string   `json:"fullName"`
	Email           string   `json:"email"`
	Password        string   `json:"password"`
	DestinationCity string   `json:"destinationCity"`
	Preferences     []string `json:"preferences"`
}

// PreferencesRequest is the body of PUT /users/{email}/preferences.
type PreferencesRequest struct {
	Preferences []string `json:"preferences"`
}

// SpotsResponse wraps GET /spots and GET /spots/search.
type SpotsResponse struct {
	Data []Spot `json:"data"`
}

// AuthResponse wraps POST /login and POST /register.
type AuthResponse struct {
	Message string      `json:"message,omitempty"`
	User    UserProfile `json:"user"`
}

// UserResponse wraps GET /users/{email}.
type UserResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Data    *UserProfile `json:"data"`
}

// ItineraryResponse wraps GET /itineraries/{email}.
type ItineraryResponse struct {
	Data []ItineraryEntry `json:"data"`
}

// MessageResponse is the generic acknowledgement body.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ReviewsResponse wraps GET /reviews/{spotId}.
type ReviewsResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	Reviews []Review `json:"reviews"`
}

// ErrorResponse is the body of a non-2xx reply.
type ErrorResponse struct {
	Message string `json:"message"`
}
