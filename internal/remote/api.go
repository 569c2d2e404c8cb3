// Tourguide - Smart Tourism Recommendation Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourguide

package remote

import (
	"context"

	"github.com/tomtom215/tourguide/internal/models"
)

// API is the set of remote operations used by the client.
type API interface {
	ListSpots(ctx context.Context) ([]models.Spot, error)
	SearchSpots(ctx context.Context, query string) ([]models.Spot, error)

	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)

	GetUser(ctx context.Context, email string) (*models.UserResponse, error)
	UpdatePreferences(ctx context.Context, email string, preferences []string) (*models.MessageResponse, error)

	// GetItinerary returns a *StatusError with status 404 when the user has none.
	GetItinerary(ctx context.Context, email string) ([]models.ItineraryEntry, error)
	SaveItinerary(ctx context.Context, payload models.ItineraryPayload) (*models.MessageResponse, error)

	SubmitReview(ctx context.Context, review models.Review) (*models.MessageResponse, error)
	ListReviews(ctx context.Context, spotID string) (*models.ReviewsResponse, error)
}

// Invalidator is implemented by decorators that hold cached listings.
type Invalidator interface {
	Invalidate()
}

// Endpoint names used for metrics and logs.
const (
	endpointListSpots         = "list_spots"
	endpointSearchSpots       = "search_spots"
	endpointLogin             = "login"
	endpointRegister          = "register"
	endpointGetUser           = "get_user"
	endpointUpdatePreferences = "update_preferences"
	endpointGetItinerary      = "get_itinerary"
	endpointSaveItinerary     = "save_itinerary"
	endpointSubmitReview      = "submit_review"
	endpointListReviews       = "list_reviews"
)
