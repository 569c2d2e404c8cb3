// Tourguide - Smart Tourism Recommendation Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourguide

// Package validation provides form validation using go-playground/validator v10.
//
// A thread-safe singleton validator is configured with the custom tags the
// client forms need:
//
//   - notblank: string must contain a non-space character
//   - emailaddr: loose address check (something@something.tld, no spaces)
//   - strongpassword: the signup password policy, see ValidatePassword
//
// Struct fields may carry a msg tag mapping validation tags to the message
// shown to the user:
//
//	type LoginForm struct {
//	    Email string `validate:"notblank,emailaddr" msg:"notblank:Email is required|emailaddr:Please enter a valid email address"`
//	}
//
// ValidateStruct reports failures in struct-field order so callers can show
// either the first failure or all of them.
package validation
