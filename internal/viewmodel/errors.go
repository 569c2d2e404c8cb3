// Tourguide - Smart Tourism Recommendation Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourguide

package viewmodel

import (
	"errors"

	"github.com/tomtom215/tourguide/internal/remote"
)

// Error kinds.
var (
	ErrValidation   = errors.New("validation error")
	ErrAuth         = errors.New("authentication error")
	ErrPrecondition = errors.New("precondition failed")
	ErrFetch        = errors.New("fetch error")
	ErrPersistence  = errors.New("persistence error")
)

// User-visible messages.
const (
	msgLoginFailed        = "Login failed"
	msgSignupFailed       = "Registration failed. Please try again."
	msgFetchSpotsFailed   = "Failed to load spots. Please try again later."
	msgNoUserEmail        = "No user email found. Please log in first."
	msgNoRecommendations  = "No spots found matching your preferences."
	msgUserDataEmpty      = "User data is empty"
	msgNoDestination      = "User destination city not found"
	msgNoPreferences      = "User preferences not found or empty"
	msgSaveItinerary      = "Failed to save itinerary"
	msgBookingFailed      = "Failed to update itinerary status"
	msgSaveReview         = "Failed to save review"
	msgRatingRange        = "Please select a rating between 1 and 5"
	msgNotBooked          = "Only booked spots can be reviewed"
	msgNoReviewFlow       = "No review in progress"
	msgPreferencesSaved   = "Preferences saved successfully!"
	msgPreferencesFailed  = "Failed to save preferences. Please try again."
	msgPreferencesNoEmail = "User email not found. Please log in again."
	msgIndexOutOfRange    = "Itinerary position out of range"
	msgNoDrag             = "No itinerary entry is being moved"
)

// Error is returned by every failing ViewModel operation.
type Error struct {
	// Kind is one of ErrValidation, ErrAuth, ErrPrecondition, ErrFetch or ErrPersistence.
	Kind error
	// Field names the offending form field for validation errors.
	Field string
	// Message is the text shown to the user.
	Message string
	// Err is the underlying cause, if any.
	Err error
}

func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func newError(kind error, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Err: cause}
}

// remoteMessage returns the server-provided message for err, or fallback.
func remoteMessage(err error, fallback string) string {
	if msg := remote.ServerMessage(err); msg != "" {
		return msg
	}
	return fallback
}

// kindLabel maps an operation's error to the metrics result label.
func kindLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrValidation):
		return "validation"
	case errors.Is(err, ErrAuth):
		return "auth"
	case errors.Is(err, ErrPrecondition):
		return "precondition"
	case errors.Is(err, ErrFetch):
		return "fetch"
	case errors.Is(err, ErrPersistence):
		return "persistence"
	default:
		return "other"
	}
}
