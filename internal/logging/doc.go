// Tourguide - Smart Tourism Recommendation Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourguide

// Package logging provides zerolog-based structured logging for Tourguide.
//
// The package keeps one global logger that is usable before Init is called
// and can be reconfigured at startup from the loaded configuration:
//
//	logging.Init(logging.Config{Level: "info", Format: "console"})
//	logging.Info().Str("email", email).Msg("Login succeeded")
//
// Every view-model operation runs under a correlation ID so that a single
// user action and the remote calls it triggers can be followed in the log:
//
//	ctx = logging.ContextWithNewCorrelationID(ctx)
//	logging.Ctx(ctx).Debug().Msg("Fetching itinerary")
//
// Libraries that need a *slog.Logger (sutureslog) are fed through
// NewSlogLogger, which writes to the same zerolog backend.
//
// Always terminate log chains with .Msg() or .Send(); an unterminated chain
// is never emitted.
package logging
