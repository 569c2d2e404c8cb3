// Tourguide - Smart Tourism Recommendation Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourguide

// Package status serves a small local HTTP endpoint for inspecting a running
// client: liveness, Prometheus metrics and a JSON snapshot of the view state.
//
// Routes:
//
//	GET /healthz   liveness, uptime, session and circuit breaker summary
//	GET /metrics   Prometheus exposition
//	GET /state     full view-model snapshot
//
// The server is meant to bind to loopback. It never changes client state.
package status
