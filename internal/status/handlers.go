// Tourguide - Smart Tourism Recommendation Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourguide

package status

import (
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/tourguide/internal/logging"
	"github.com/tomtom215/tourguide/internal/viewmodel"
)

// Snapshotter is satisfied by *viewmodel.ViewModel.
type Snapshotter interface {
	Snapshot() viewmodel.State
}

// BreakerStater is satisfied by *remote.CircuitBreakerClient.
type BreakerStater interface {
	State() string
}

// Handler serves the status endpoints.
type Handler struct {
	source    Snapshotter
	breaker   BreakerStater
	startTime time.Time
	now       func() time.Time
}

// NewHandler creates a Handler. breaker may be nil when the circuit breaker
// is disabled.
func NewHandler(source Snapshotter, breaker BreakerStater) *Handler {
	return &Handler{
		source:    source,
		breaker:   breaker,
		startTime: time.Now(),
		now:       time.Now,
	}
}

// Response is the envelope of every status reply.
type Response struct {
	Status   string    `json:"status"`
	Data     any       `json:"data"`
	Metadata Metadata  `json:"metadata"`
	Error    *APIError `json:"error,omitempty"`
}

type Metadata struct {
	Timestamp time.Time `json:"timestamp"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Health is the liveness payload of /healthz.
type Health struct {
	Alive           bool    `json:"alive"`
	UptimeSeconds   float64 `json:"uptime_seconds"`
	Authenticated   bool    `json:"authenticated"`
	ItineraryLength int     `json:"itinerary_length"`
	ItinerarySynced bool    `json:"itinerary_synced"`
	CircuitBreaker  string  `json:"circuit_breaker,omitempty"`
}

func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	s := h.source.Snapshot()
	health := Health{
		Alive:           true,
		UptimeSeconds:   h.now().Sub(h.startTime).Seconds(),
		Authenticated:   s.Session.Authenticated,
		ItineraryLength: len(s.Itinerary),
		ItinerarySynced: s.ItinerarySynced,
	}
	if h.breaker != nil {
		health.CircuitBreaker = h.breaker.State()
	}
	h.respond(w, http.StatusOK, health)
}

func (h *Handler) State(w http.ResponseWriter, _ *http.Request) {
	h.respond(w, http.StatusOK, h.source.Snapshot())
}

func (h *Handler) respond(w http.ResponseWriter, status int, data any) {
	respondJSON(w, status, &Response{
		Status:   "success",
		Data:     data,
		Metadata: Metadata{Timestamp: h.now()},
	})
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, &Response{
		Status:   "error",
		Metadata: Metadata{Timestamp: time.Now()},
		Error:    &APIError{Code: code, Message: message},
	})
}

func respondJSON(w http.ResponseWriter, status int, resp *Response) {
	data, err := json.Marshal(resp)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal status response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // response write errors are not recoverable
	w.Write(data)
}
