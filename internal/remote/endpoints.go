// Tourguide - Smart Tourism Recommendation Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourguide

package remote

import (
	"context"
	"net/http"
	"net/url"

	"github.com/tomtom215/tourguide/internal/models"
)

// ListSpots fetches the full catalog.
func (c *Client) ListSpots(ctx context.Context) ([]models.Spot, error) {
	var resp models.SpotsResponse
	if err := c.do(ctx, endpointListSpots, http.MethodGet, "/spots", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// SearchSpots runs a server-side text search.
func (c *Client) SearchSpots(ctx context.Context, query string) ([]models.Spot, error) {
	var resp models.SpotsResponse
	path := "/spots/search?query=" + url.QueryEscape(query)
	if err := c.do(ctx, endpointSearchSpots, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// Login authenticates and returns the user's profile.
func (c *Client) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.do(ctx, endpointLogin, http.MethodPost, "/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates an account.
func (c *Client) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.do(ctx, endpointRegister, http.MethodPost, "/register", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetUser loads a profile by email.
func (c *Client) GetUser(ctx context.Context, email string) (*models.UserResponse, error) {
	var resp models.UserResponse
	if err := c.do(ctx, endpointGetUser, http.MethodGet, "/users/"+url.PathEscape(email), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdatePreferences replaces the user's preference categories.
func (c *Client) UpdatePreferences(ctx context.Context, email string, preferences []string) (*models.MessageResponse, error) {
	if preferences == nil {
		preferences = []string{}
	}
	var resp models.MessageResponse
	path := "/users/" + url.PathEscape(email) + "/preferences"
	body := models.PreferencesRequest{Preferences: preferences}
	if err := c.do(ctx, endpointUpdatePreferences, http.MethodPut, path, body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetItinerary loads the saved itinerary.
func (c *Client) GetItinerary(ctx context.Context, email string) ([]models.ItineraryEntry, error) {
	var resp models.ItineraryResponse
	if err := c.do(ctx, endpointGetItinerary, http.MethodGet, "/itineraries/"+url.PathEscape(email), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// SaveItinerary overwrites the stored itinerary with payload.
func (c *Client) SaveItinerary(ctx context.Context, payload models.ItineraryPayload) (*models.MessageResponse, error) {
	var resp models.MessageResponse
	if err := c.do(ctx, endpointSaveItinerary, http.MethodPost, "/itineraries", payload, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SubmitReview posts a review. Callers must check Success.
func (c *Client) SubmitReview(ctx context.Context, review models.Review) (*models.MessageResponse, error) {
	var resp models.MessageResponse
	if err := c.do(ctx, endpointSubmitReview, http.MethodPost, "/reviews", review, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListReviews loads all reviews for a spot.
func (c *Client) ListReviews(ctx context.Context, spotID string) (*models.ReviewsResponse, error) {
	var resp models.ReviewsResponse
	if err := c.do(ctx, endpointListReviews, http.MethodGet, "/reviews/"+url.PathEscape(spotID), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
