// Tourguide - Smart Tourism Recommendation Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourguide

package viewmodel

import (
	"context"
	"errors"
	"slices"
	"strings"

	"github.com/rs/zerolog"

	"github.com/tomtom215/tourguide/internal/models"
	"github.com/tomtom215/tourguide/internal/remote"
	"github.com/tomtom215/tourguide/internal/store"
	"github.com/tomtom215/tourguide/internal/validation"
)

// LoginForm is the login input.
type LoginForm struct {
	Email    string `validate:"notblank,emailaddr" msg:"notblank:Email is required|emailaddr:Please enter a valid email address"`
	Password string `validate:"notblank" msg:"Password is required"`
}

// SignupForm is the registration input. Rules are checked in field order and
// only the first failure is reported.
type SignupForm struct {
	FullName        string   `validate:"notblank" msg:"Please enter your full name"`
	Email           string   `validate:"emailaddr" msg:"Please enter a valid email address"`
	Password        string   `validate:"strongpassword"`
	ConfirmPassword string   `validate:"eqfield=Password" msg:"Passwords do not match"`
	DestinationCity string   `validate:"required" msg:"Please select a destination city"`
	Categories      []string `validate:"min=1" msg:"Please select at least one category"`
}

// Login validates form, authenticates and loads the user's data.
func (vm *ViewModel) Login(ctx context.Context, form LoginForm) error {
	ctx, log := vm.begin(ctx, "login")
	vm.update(func(s *State) { s.LoginError = "" })

	if verr := validation.ValidateStruct(form); verr != nil {
		msg := strings.Join(verr.Messages(), ". ")
		vm.update(func(s *State) { s.LoginError = msg })
		log.Debug().Strs("errors", verr.Messages()).Msg("Login form rejected")
		first := verr.First()
		return finish("login", &Error{Kind: ErrValidation, Field: first.Field(), Message: msg, Err: verr})
	}

	vm.setLoading(true)
	defer vm.setLoading(false)

	resp, err := vm.api.Login(ctx, models.LoginRequest{Email: form.Email, Password: form.Password})
	if err != nil {
		msg := remoteMessage(err, msgLoginFailed)
		vm.update(func(s *State) { s.LoginError = msg })
		log.Warn().Err(err).Str("email", form.Email).Msg("Login failed")
		return finish("login", newError(ErrAuth, msg, err))
	}

	log.Info().Str("email", form.Email).Msg("Login successful")
	vm.establishSession(ctx, log, form.Email, resp.User)
	return finish("login", nil)
}

// Signup validates form, registers the account and signs the user in.
func (vm *ViewModel) Signup(ctx context.Context, form SignupForm) error {
	ctx, log := vm.begin(ctx, "signup")
	vm.update(func(s *State) { s.SignupError = SignupError{} })

	if verr := validation.ValidateStruct(form); verr != nil {
		first := verr.First()
		vm.update(func(s *State) { s.SignupError = SignupError{Field: first.Field(), Text: first.Error()} })
		log.Debug().Str("field", first.Field()).Msg("Signup form rejected")
		return finish("signup", &Error{Kind: ErrValidation, Field: first.Field(), Message: first.Error(), Err: verr})
	}

	vm.setLoading(true)
	defer vm.setLoading(false)

	req := models.RegisterRequest{
		FullName:        form.FullName,
		Email:           strings.ToLower(form.Email),
		Password:        form.Password,
		DestinationCity: form.DestinationCity,
		Preferences:     slices.Clone(form.Categories),
	}
	resp, err := vm.api.Register(ctx, req)
	if err != nil {
		msg := remoteMessage(err, msgSignupFailed)
		vm.update(func(s *State) { s.SignupError = SignupError{Text: msg} })
		log.Warn().Err(err).Str("email", req.Email).Msg("Registration failed")
		return finish("signup", newError(ErrAuth, msg, err))
	}

	email := resp.User.Email
	if email == "" {
		email = req.Email
	}
	log.Info().Str("email", email).Msg("Registration successful")
	vm.establishSession(ctx, log, email, resp.User)
	return finish("signup", nil)
}

// establishSession applies a successful login or signup: session,
// preferences, profile, itinerary, catalog, persisted session.
func (vm *ViewModel) establishSession(ctx context.Context, log zerolog.Logger, email string, user models.UserProfile) {
	prefs := slices.Clone(user.Preferences)
	if prefs == nil {
		prefs = []string{}
	}
	vm.update(func(s *State) {
		s.Session = models.Session{Authenticated: true, UserEmail: email}
		s.Preferences = prefs
		s.PreferencesChanged = false
	})

	if profile, err := vm.loadProfile(ctx, email); err != nil {
		log.Warn().Err(err).Msg("Error fetching user data")
	} else {
		vm.update(func(s *State) { s.Profile = profile })
	}

	_ = vm.FetchItinerary(ctx)
	_ = vm.FetchAllSpots(ctx)
	vm.persistSession(log)
}

// loadProfile fetches the profile for email. A response without
// success or data is an error.
func (vm *ViewModel) loadProfile(ctx context.Context, email string) (*models.UserProfile, error) {
	resp, err := vm.api.GetUser(ctx, email)
	if err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, errors.New("Failed to fetch user data: " + resp.Message)
	}
	if resp.Data == nil {
		return nil, errors.New(msgUserDataEmpty)
	}
	p := resp.Data.Clone()
	return &p, nil
}

// persistSession writes {email, preferences} under store.CurrentUserKey.
func (vm *ViewModel) persistSession(log zerolog.Logger) {
	var stored models.StoredSession
	vm.read(func(s *State) {
		stored = models.StoredSession{Email: s.Session.UserEmail, Preferences: slices.Clone(s.Preferences)}
	})
	if stored.Email == "" {
		return
	}
	if err := store.SetJSON(vm.store, store.CurrentUserKey, stored); err != nil {
		log.Error().Err(err).Msg("Failed to persist session")
	}
}

// Logout clears the session, every piece of user data and any cached
// listings. No network call.
func (vm *ViewModel) Logout() {
	_, log := vm.begin(context.Background(), "logout")
	vm.mu.Lock()
	filter := vm.state.Filter
	vm.state = initialState()
	vm.state.Filter = filter
	vm.itineraryRev++
	vm.mu.Unlock()

	if err := vm.store.Delete(store.CurrentUserKey); err != nil {
		log.Error().Err(err).Msg("Failed to clear persisted session")
	}
	if inv, ok := vm.api.(remote.Invalidator); ok {
		inv.Invalidate()
	}
	log.Info().Msg("Logged out")
	_ = finish("logout", nil)
}

// Restore signs the user back in from the persisted session, if any, and
// always loads the catalog afterwards.
func (vm *ViewModel) Restore(ctx context.Context) error {
	ctx, log := vm.begin(ctx, "restore")

	var stored models.StoredSession
	err := store.GetJSON(vm.store, store.CurrentUserKey, &stored)
	switch {
	case errors.Is(err, store.ErrNotFound):
		log.Debug().Msg("No stored user")
	case err != nil || stored.Email == "":
		log.Warn().Err(err).Msg("Error parsing stored user")
		if derr := vm.store.Delete(store.CurrentUserKey); derr != nil {
			log.Error().Err(derr).Msg("Failed to clear persisted session")
		}
	default:
		prefs := stored.Preferences
		if prefs == nil {
			prefs = []string{}
		}
		vm.update(func(s *State) {
			s.Session = models.Session{Authenticated: true, UserEmail: stored.Email}
			s.Preferences = prefs
		})
		log.Info().Str("email", stored.Email).Msg("Restored stored user")
		_ = vm.FetchItinerary(ctx)
	}

	return finish("restore", vm.FetchAllSpots(ctx))
}
