// Tourguide - Smart Tourism Recommendation Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourguide

/*
Package remote is the HTTP/JSON client for the smart-tourism API.

API is the port the view model depends on. Client implements it over
net/http with a cookie jar (the service authenticates with cookies), a
client-side token bucket (golang.org/x/time/rate) and goccy/go-json
encoding. CircuitBreakerClient decorates any API with sony/gobreaker so a
dead backend fails fast instead of stalling the shell.

Endpoints (relative to api.base_url):

	GET  /spots                      {data: Spot[]}
	GET  /spots/search?query=        {data: Spot[]}
	POST /login                      {user}
	POST /register                   {user}
	GET  /users/{email}              {success, data}
	PUT  /users/{email}/preferences  {message}
	GET  /itineraries/{email}        {data: ItineraryEntry[]} or 404
	POST /itineraries                {message}
	POST /reviews                    {success}
	GET  /reviews/{spotId}           {success, reviews}

Non-2xx responses become *StatusError carrying the server's "message"
field, or "HTTP error! status: N" when there is none. Requests are never
retried.
*/
package remote
