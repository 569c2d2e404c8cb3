// Tourguide - Smart Tourism Recommendation Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourguide

package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Remote API Metrics
	RemoteRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tourguide_remote_requests_total",
			Help: "Total number of requests sent to the tourism API",
		},
		[]string{"endpoint", "status"},
	)

	RemoteRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tourguide_remote_request_duration_seconds",
			Help:    "Duration of tourism API requests in seconds",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"endpoint"},
	)

	RemoteThrottleWait = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "tourguide_remote_throttle_wait_seconds",
			Help:    "Time spent waiting for the client-side rate limiter",
			Buckets: []float64{.001, .01, .05, .1, .5, 1, 5},
		},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "client_error", "failure", "rejected"
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// View Model Metrics
	Operations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tourguide_operations_total",
			Help: "Total number of view-model operations by outcome",
		},
		[]string{"operation", "result"},
	)

	ItinerarySaves = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tourguide_itinerary_saves_total",
			Help: "Total number of itinerary save attempts",
		},
		[]string{"result"},
	)

	ItinerarySynced = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tourguide_itinerary_synced",
			Help: "1 when the local itinerary matches the last successful save, 0 otherwise",
		},
	)

	// Status Server Metrics
	StatusRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tourguide_status_requests_total",
			Help: "Total number of status server requests by route and status code",
		},
		[]string{"route", "status"},
	)

	StatusRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tourguide_status_request_duration_seconds",
			Help:    "Status server request duration in seconds",
			Buckets: []float64{.001, .005, .01, .05, .1, .5, 1},
		},
		[]string{"route"},
	)

	// Cache Metrics
	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tourguide_cache_lookups_total",
			Help: "Total number of listing cache lookups by listing and result (hit, miss)",
		},
		[]string{"listing", "result"},
	)

	CacheEntries = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "tourguide_cache_entries",
			Help: "Live entries per listing cache (spots, reviews) after the last sweep",
		},
		[]string{"cache"},
	)

	// Store Metrics
	StoreGCRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tourguide_store_gc_runs_total",
			Help: "Total number of value log GC passes over the local store",
		},
		[]string{"result"},
	)

	StoreGCDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "tourguide_store_gc_duration_seconds",
			Help:    "Duration of value log GC passes",
			Buckets: prometheus.DefBuckets,
		},
	)
)

// RecordRemoteRequest records one tourism API call. status is 0 when the
// request failed before a response arrived.
func RecordRemoteRequest(endpoint string, status int, duration time.Duration) {
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	RemoteRequests.WithLabelValues(endpoint, label).Inc()
	RemoteRequestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

// RecordThrottleWait records time spent blocked on the rate limiter.
func RecordThrottleWait(d time.Duration) {
	RemoteThrottleWait.Observe(d.Seconds())
}

// RecordOperation counts a view-model operation. result is "ok" or an error kind.
func RecordOperation(operation, result string) {
	Operations.WithLabelValues(operation, result).Inc()
}

// RecordItinerarySave records a save attempt and updates the synced gauge.
func RecordItinerarySave(success bool) {
	if success {
		ItinerarySaves.WithLabelValues("success").Inc()
		ItinerarySynced.Set(1)
		return
	}
	ItinerarySaves.WithLabelValues("failure").Inc()
	ItinerarySynced.Set(0)
}

// RecordStatusRequest records one status server request.
func RecordStatusRequest(route string, status int, d time.Duration) {
	StatusRequests.WithLabelValues(route, strconv.Itoa(status)).Inc()
	StatusRequestDuration.WithLabelValues(route).Observe(d.Seconds())
}

// RecordCacheLookup counts one cache lookup for listing.
func RecordCacheLookup(listing string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	CacheLookups.WithLabelValues(listing, result).Inc()
}

// RecordStoreGC records one value log GC pass.
func RecordStoreGC(d time.Duration, err error) {
	result := "success"
	if err != nil {
		result = "failure"
	}
	StoreGCRuns.WithLabelValues(result).Inc()
	StoreGCDuration.Observe(d.Seconds())
}
