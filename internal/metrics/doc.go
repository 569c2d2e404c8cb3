// Tourguide - Smart Tourism Recommendation Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourguide

/*
Package metrics defines the Prometheus metrics recorded by the client.

Metrics are registered with the default registry through promauto and are
served by the status server at /metrics when status.addr is configured:

	curl http://127.0.0.1:9464/metrics

# Available Metrics

Remote API:
  - tourguide_remote_requests_total: Requests to the tourism API (counter)
    Labels: endpoint, status
  - tourguide_remote_request_duration_seconds: Request latency (histogram)
    Labels: endpoint
  - tourguide_remote_throttle_wait_seconds: Time spent waiting on the client rate limiter (histogram)

Circuit Breaker:
  - circuit_breaker_state: Current state (gauge, 0=closed, 1=half-open, 2=open)
    Labels: name
  - circuit_breaker_requests_total: Requests through the breaker (counter)
    Labels: name, result (success, failure, rejected)
  - circuit_breaker_state_transitions_total: State transitions (counter)
    Labels: name, from_state, to_state

View Model:
  - tourguide_operations_total: View-model operations (counter)
    Labels: operation, result (ok, validation, auth, precondition, fetch, persistence)
  - tourguide_itinerary_saves_total: Itinerary persistence attempts (counter)
    Labels: result (success, failure)
  - tourguide_itinerary_synced: 1 when the local itinerary matches the last save (gauge)

The status label of the request counter is the HTTP status code, or
"error" when no response was received.
*/
package metrics
