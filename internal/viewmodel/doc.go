// Tourguide - Smart Tourism Recommendation Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourguide

/*
Package viewmodel owns the client's view state and every transition on it.

A ViewModel holds one State: the session, the loaded profile, the spot
list, filter and sort settings, the itinerary, the review flow and the
single user-visible message. Each operation validates its input, calls the
remote API, applies the result and reports failures twice: in the message
slot for rendering and as a returned *Error for Go callers.

# Errors

Every returned error is an *Error whose Kind is one of the sentinels below,
so callers can branch with errors.Is:

	ErrValidation   local input rejected before any network call
	ErrAuth         credentials or registration rejected
	ErrPrecondition operation not possible in the current state
	ErrFetch        loading data failed
	ErrPersistence  saving data failed

# Consistency

Itinerary changes are applied locally first and then saved. A failed save
is not rolled back; State.ItinerarySynced stays false until the next
successful save. Operations are not serialized against each other: two
concurrent itinerary mutations can race at the read-mutate-save level. The
internal mutex only protects individual reads and writes of State and is
never held across a network call.

# Ports

Browser facilities are injected through Deps: the key/value store that
remembers the signed-in user, a LinkOpener for booking sites, a Prompter
for the quick-review dialog and a Clock for "today".
*/
package viewmodel
