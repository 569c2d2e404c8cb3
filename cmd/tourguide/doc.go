// Tourguide - Smart Tourism Recommendation Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourguide

// Package main is the entry point for the Tourguide terminal client.
//
// Tourguide browses tourist spots from a remote tourism API, recommends
// spots that match the user's preferences and destination city, and keeps
// a per-user itinerary that can be booked and reviewed.
//
// # Startup
//
//  1. Configuration: defaults, optional config file, environment (Koanf v2)
//  2. Logging: zerolog, written to stderr so it does not mix with the shell
//  3. Store: BadgerDB holding the signed-in session between runs
//  4. Remote client: rate limited HTTP client behind an optional circuit breaker
//     and listing cache
//  5. Supervisor tree: store GC and the local status server
//  6. Shell: restores the stored session and reads commands from stdin
//
// # Configuration
//
// Common environment variables:
//
//	TOURGUIDE_API_URL=https://tours.example.com/api
//	TOURGUIDE_ASSET_URL=https://tours.example.com
//	TOURGUIDE_STORE_PATH=~/.local/share/tourguide
//	TOURGUIDE_STATUS_ADDR=127.0.0.1:9464
//	LOG_LEVEL=debug
//
// # Signal Handling
//
// SIGINT and SIGTERM cancel the running command, stop the shell and shut
// the supervisor tree down before the store is closed.
package main
