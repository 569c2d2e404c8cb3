// Tourguide - Smart Tourism Recommendation Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourguide

/*
Package services provides suture.Service wrappers for tourguide components.

Each wrapper translates a component's lifecycle into suture's
context-aware Serve pattern:

	type Service interface {
	    Serve(ctx context.Context) error
	}

# Available Services

HTTP Server (HTTPServerService):
  - Wraps *http.Server (the status server) with graceful shutdown
  - http.ErrServerClosed is treated as a clean stop

Store GC (StoreGCService):
  - Runs value log GC on the local badger store at a fixed interval
  - A failed pass is logged and counted; the loop keeps running

All wrappers implement fmt.Stringer so supervisor events name them.
*/
package services
