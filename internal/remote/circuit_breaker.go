// Tourguide - Smart Tourism Recommendation Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourguide

package remote

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/tourguide/internal/config"
	"github.com/tomtom215/tourguide/internal/logging"
	"github.com/tomtom215/tourguide/internal/metrics"
	"github.com/tomtom215/tourguide/internal/models"
)

// ErrCircuitOpen is returned while the breaker rejects requests.
var ErrCircuitOpen = errors.New("tourism service temporarily unavailable")

// CircuitBreakerClient wraps an API with the circuit breaker pattern.
//
// Client errors (4xx) and caller cancellations count as successes: a wrong
// password or a missing itinerary says nothing about the service's health.
type CircuitBreakerClient struct {
	api  API
	cb   *gobreaker.CircuitBreaker[any]
	name string
	log  zerolog.Logger
}

var _ API = (*CircuitBreakerClient)(nil)

// NewCircuitBreakerClient decorates api using the thresholds in cfg.
func NewCircuitBreakerClient(api API, cfg *config.BreakerConfig) *CircuitBreakerClient {
	cbName := "tourism-api"
	log := logging.WithComponent("circuit-breaker")

	metrics.CircuitBreakerState.WithLabelValues(cbName).Set(0) // 0 = closed

	minRequests := cfg.MinRequests
	failureRatio := cfg.FailureRatio

	cb := gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        cbName,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < minRequests {
				return false
			}
			ratio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := ratio >= failureRatio
			if shouldTrip {
				log.Warn().Uint32("failures", counts.TotalFailures).Float64("failure_rate", ratio*100).Msg("[CIRCUIT BREAKER] Opening circuit")
			}
			return shouldTrip
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)
			log.Info().Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
		},

		IsSuccessful: isSuccessful,
	})

	return &CircuitBreakerClient{api: api, cb: cb, name: cbName, log: log}
}

// isSuccessful decides which errors count against the breaker.
func isSuccessful(err error) bool {
	if err == nil {
		return true
	}
	if errors.Is(err, context.Canceled) {
		return true
	}
	return IsClientError(err)
}

// resultLabel names a failed call the same way isSuccessful judged it.
func resultLabel(err error) string {
	if isSuccessful(err) {
		return "client_error"
	}
	return "failure"
}

// State returns the breaker's current state as a string.
func (cbc *CircuitBreakerClient) State() string {
	return stateToString(cbc.cb.State())
}

// execute runs fn under the breaker and records the outcome.
func (cbc *CircuitBreakerClient) execute(fn func() (any, error)) (any, error) {
	result, err := cbc.cb.Execute(fn)
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "rejected").Inc()
			cbc.log.Warn().Err(err).Msg("[CIRCUIT BREAKER] Request rejected")
			return nil, fmt.Errorf("%w: %w", ErrCircuitOpen, err)
		}
		metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, resultLabel(err)).Inc()
		return nil, err
	}
	metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "success").Inc()
	return result, nil
}

// call runs a typed API call through execute.
func call[T any](cbc *CircuitBreakerClient, fn func() (T, error)) (T, error) {
	var zero T
	result, err := cbc.execute(func() (any, error) {
		return fn()
	})
	if err != nil {
		return zero, err
	}
	typed, ok := result.(T)
	if !ok {
		return zero, fmt.Errorf("circuit breaker: unexpected result type %T", result)
	}
	return typed, nil
}

// stateToFloat converts circuit breaker state to numeric value for metrics
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}

func (cbc *CircuitBreakerClient) ListSpots(ctx context.Context) ([]models.Spot, error) {
	return call(cbc, func() ([]models.Spot, error) {
		return cbc.api.ListSpots(ctx)
	})
}

func (cbc *CircuitBreakerClient) SearchSpots(ctx context.Context, query string) ([]models.Spot, error) {
	return call(cbc, func() ([]models.Spot, error) {
		return cbc.api.SearchSpots(ctx, query)
	})
}

func (cbc *CircuitBreakerClient) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	return call(cbc, func() (*models.AuthResponse, error) {
		return cbc.api.Login(ctx, req)
	})
}

func (cbc *CircuitBreakerClient) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	return call(cbc, func() (*models.AuthResponse, error) {
		return cbc.api.Register(ctx, req)
	})
}

func (cbc *CircuitBreakerClient) GetUser(ctx context.Context, email string) (*models.UserResponse, error) {
	return call(cbc, func() (*models.UserResponse, error) {
		return cbc.api.GetUser(ctx, email)
	})
}

func (cbc *CircuitBreakerClient) UpdatePreferences(ctx context.Context, email string, preferences []string) (*models.MessageResponse, error) {
	return call(cbc, func() (*models.MessageResponse, error) {
		return cbc.api.UpdatePreferences(ctx, email, preferences)
	})
}

func (cbc *CircuitBreakerClient) GetItinerary(ctx context.Context, email string) ([]models.ItineraryEntry, error) {
	return call(cbc, func() ([]models.ItineraryEntry, error) {
		return cbc.api.GetItinerary(ctx, email)
	})
}

func (cbc *CircuitBreakerClient) SaveItinerary(ctx context.Context, payload models.ItineraryPayload) (*models.MessageResponse, error) {
	return call(cbc, func() (*models.MessageResponse, error) {
		return cbc.api.SaveItinerary(ctx, payload)
	})
}

func (cbc *CircuitBreakerClient) SubmitReview(ctx context.Context, review models.Review) (*models.MessageResponse, error) {
	return call(cbc, func() (*models.MessageResponse, error) {
		return cbc.api.SubmitReview(ctx, review)
	})
}

func (cbc *CircuitBreakerClient) ListReviews(ctx context.Context, spotID string) (*models.ReviewsResponse, error) {
	return call(cbc, func() (*models.ReviewsResponse, error) {
		return cbc.api.ListReviews(ctx, spotID)
	})
}
