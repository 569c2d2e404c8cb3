// Tourguide - Smart Tourism Recommendation Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourguide

package viewmodel

import (
	"context"
	"time"

	"github.com/tomtom215/tourguide/internal/remote"
	"github.com/tomtom215/tourguide/internal/store"
)

// LinkOpener opens an external URL, such as a booking site.
type LinkOpener interface {
	Open(ctx context.Context, url string) error
}

// Prompter asks the user simple questions.
type Prompter interface {
	Confirm(ctx context.Context, question string) (bool, error)
	Ask(ctx context.Context, question string) (string, error)
}

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

// Now calls f.
func (f ClockFunc) Now() time.Time { return f() }

// Deps are the collaborators of a ViewModel. API and Store are required.
type Deps struct {
	API      remote.API
	Store    store.KeyValueStore
	Opener   LinkOpener
	Prompter Prompter
	Clock    Clock
}

// Config holds the static settings of a ViewModel.
type Config struct {
	// AssetURL is the root images are resolved against.
	AssetURL string
	// Cities and Categories are the choices offered by the signup form.
	Cities     []string
	Categories []string
}

type noopOpener struct{}

func (noopOpener) Open(context.Context, string) error { return nil }

// declinePrompter answers no to every question.
type declinePrompter struct{}

func (declinePrompter) Confirm(context.Context, string) (bool, error) { return false, nil }
func (declinePrompter) Ask(context.Context, string) (string, error)   { return "", nil }
