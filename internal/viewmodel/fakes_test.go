// Tourguide - Smart Tourism Recommendation Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourguide

package viewmodel

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/tomtom215/tourguide/internal/models"
	"github.com/tomtom215/tourguide/internal/remote"
	"github.com/tomtom215/tourguide/internal/store"
)

const testAssetURL = "https://assets.test"

var testToday = time.Date(2026, time.March, 14, 10, 0, 0, 0, time.UTC)

// fakeAPI is an in-memory remote.API. Zero values answer with success.
type fakeAPI struct {
	mu    sync.Mutex
	calls map[string]int

	spots    []models.Spot
	spotsErr error

	searchResult []models.Spot
	searchErr    error

	loginResp *models.AuthResponse
	loginErr  error
	lastLogin models.LoginRequest

	registerResp *models.AuthResponse
	registerErr  error
	lastRegister models.RegisterRequest

	user    *models.UserResponse
	userErr error

	prefsErr  error
	lastPrefs []string

	itinerary    []models.ItineraryEntry
	itineraryErr error

	saveErr error
	saved   []models.ItineraryPayload
	// onSave runs while SaveItinerary is in flight.
	onSave func()

	reviewResp *models.MessageResponse
	reviewErr  error
	submitted  []models.Review

	reviewList    *models.ReviewsResponse
	reviewListErr error
}

var _ remote.API = (*fakeAPI)(nil)

func (f *fakeAPI) record(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.calls == nil {
		f.calls = make(map[string]int)
	}
	f.calls[name]++
}

func (f *fakeAPI) count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeAPI) total() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		n += c
	}
	return n
}

func (f *fakeAPI) ListSpots(context.Context) ([]models.Spot, error) {
	f.record("ListSpots")
	if f.spotsErr != nil {
		return nil, f.spotsErr
	}
	return models.CloneSpots(f.spots), nil
}

func (f *fakeAPI) SearchSpots(context.Context, string) ([]models.Spot, error) {
	f.record("SearchSpots")
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return models.CloneSpots(f.searchResult), nil
}

func (f *fakeAPI) Login(_ context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	f.record("Login")
	f.lastLogin = req
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	if f.loginResp != nil {
		return f.loginResp, nil
	}
	return &models.AuthResponse{User: models.UserProfile{Email: req.Email}}, nil
}

func (f *fakeAPI) Register(_ context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	f.record("Register")
	f.lastRegister = req
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	if f.registerResp != nil {
		return f.registerResp, nil
	}
	return &models.AuthResponse{User: models.UserProfile{
		Email: req.Email, Preferences: req.Preferences, DestinationCity: req.DestinationCity,
	}}, nil
}

func (f *fakeAPI) GetUser(_ context.Context, email string) (*models.UserResponse, error) {
	f.record("GetUser")
	if f.userErr != nil {
		return nil, f.userErr
	}
	if f.user != nil {
		return f.user, nil
	}
	return &models.UserResponse{Success: true, Data: &models.UserProfile{Email: email}}, nil
}

func (f *fakeAPI) UpdatePreferences(_ context.Context, _ string, prefs []string) (*models.MessageResponse, error) {
	f.record("UpdatePreferences")
	f.lastPrefs = prefs
	if f.prefsErr != nil {
		return nil, f.prefsErr
	}
	return &models.MessageResponse{Message: "Preferences updated"}, nil
}

func (f *fakeAPI) GetItinerary(context.Context, string) ([]models.ItineraryEntry, error) {
	f.record("GetItinerary")
	if f.itineraryErr != nil {
		return nil, f.itineraryErr
	}
	return models.CloneEntries(f.itinerary), nil
}

func (f *fakeAPI) SaveItinerary(_ context.Context, p models.ItineraryPayload) (*models.MessageResponse, error) {
	f.record("SaveItinerary")
	if f.onSave != nil {
		f.onSave()
	}
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	f.mu.Lock()
	f.saved = append(f.saved, p)
	f.mu.Unlock()
	return &models.MessageResponse{Message: "Itinerary saved"}, nil
}

func (f *fakeAPI) lastSaved(t *testing.T) models.ItineraryPayload {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.saved) == 0 {
		t.Fatal("no itinerary was saved")
	}
	return f.saved[len(f.saved)-1]
}

func (f *fakeAPI) SubmitReview(_ context.Context, r models.Review) (*models.MessageResponse, error) {
	f.record("SubmitReview")
	f.submitted = append(f.submitted, r)
	if f.reviewErr != nil {
		return nil, f.reviewErr
	}
	if f.reviewResp != nil {
		return f.reviewResp, nil
	}
	return &models.MessageResponse{Success: true}, nil
}

func (f *fakeAPI) ListReviews(context.Context, string) (*models.ReviewsResponse, error) {
	f.record("ListReviews")
	if f.reviewListErr != nil {
		return nil, f.reviewListErr
	}
	if f.reviewList != nil {
		return f.reviewList, nil
	}
	return &models.ReviewsResponse{Success: true}, nil
}

// recordingOpener remembers every opened URL.
type recordingOpener struct {
	urls []string
	err  error
}

func (o *recordingOpener) Open(_ context.Context, url string) error {
	o.urls = append(o.urls, url)
	return o.err
}

// scriptedPrompter answers Confirm with confirm and Ask from answers in order.
type scriptedPrompter struct {
	confirm bool
	answers []string
	asked   []string
}

func (p *scriptedPrompter) Confirm(_ context.Context, q string) (bool, error) {
	p.asked = append(p.asked, q)
	return p.confirm, nil
}

func (p *scriptedPrompter) Ask(_ context.Context, q string) (string, error) {
	p.asked = append(p.asked, q)
	if len(p.answers) == 0 {
		return "", errors.New("no more answers")
	}
	a := p.answers[0]
	p.answers = p.answers[1:]
	return a, nil
}

type testEnv struct {
	vm       *ViewModel
	api      *fakeAPI
	store    *store.MemoryStore
	opener   *recordingOpener
	prompter *scriptedPrompter
}

func newTestEnv(t *testing.T, api *fakeAPI) *testEnv {
	t.Helper()
	if api == nil {
		api = &fakeAPI{}
	}
	env := &testEnv{
		api:      api,
		store:    store.NewMemoryStore(),
		opener:   &recordingOpener{},
		prompter: &scriptedPrompter{},
	}
	vm, err := New(Config{AssetURL: testAssetURL}, Deps{
		API:      api,
		Store:    env.store,
		Opener:   env.opener,
		Prompter: env.prompter,
		Clock:    ClockFunc(func() time.Time { return testToday }),
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	env.vm = vm
	return env
}

// signIn puts the view model in an authenticated state without network calls.
func (env *testEnv) signIn(email string, prefs ...string) {
	env.vm.update(func(s *State) {
		s.Session = models.Session{Authenticated: true, UserEmail: email}
		s.Preferences = prefs
	})
}

// setItinerary replaces the local itinerary without saving.
func (env *testEnv) setItinerary(entries ...models.ItineraryEntry) {
	env.vm.replaceItinerary(entries, true)
}

func sampleSpots() []models.Spot {
	return []models.Spot{
		{SpotID: "fort", Title: "Al Fahidi Fort", Category: []string{"History", "Fort"}, Price: 30,
			Location: models.Location{City: "Dubai"}, Image: "fort.jpg", Website: "https://fort.example"},
		{SpotID: "beach", Title: "Corniche Beach", Category: []string{"Beach"}, Price: 0,
			Location: models.Location{City: "Abu Dhabi"}},
		{SpotID: "museum", Title: "Sharjah Museum", Category: []string{"Museum", "History"}, Price: 20,
			Location: models.Location{City: "Sharjah"}, Image: "https://cdn.example/m.png"},
	}
}

func entry(id string, price float64, status models.EntryStatus) models.ItineraryEntry {
	return models.ItineraryEntry{SpotID: id, Title: id, Price: price, Date: "01/03/2026", Status: status}
}

func entryIDs(entries []models.ItineraryEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.SpotID
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
