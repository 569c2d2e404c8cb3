// Tourguide - Smart Tourism Recommendation Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourguide

package viewmodel

import (
	"context"
	"errors"
	"testing"

	"github.com/tomtom215/tourguide/internal/models"
)

func TestFetchAllSpots_Failure(t *testing.T) {
	env := newTestEnv(t, &fakeAPI{spotsErr: errors.New("HTTP error! status: 503")})
	env.vm.update(func(s *State) { s.Spots = sampleSpots() })

	err := env.vm.FetchAllSpots(context.Background())
	if !errors.Is(err, ErrFetch) {
		t.Fatalf("FetchAllSpots() error = %v, want ErrFetch", err)
	}
	s := env.vm.Snapshot()
	if len(s.Spots) != 0 {
		t.Errorf("len(Spots) = %d, want 0", len(s.Spots))
	}
	if s.Message.Kind != MessageError || s.Message.Text != msgFetchSpotsFailed {
		t.Errorf("Message = %+v", s.Message)
	}
	if s.IsLoading {
		t.Error("IsLoading should be cleared")
	}
}

func TestFetchAllSpots_ResolvesImages(t *testing.T) {
	env := newTestEnv(t, &fakeAPI{spots: sampleSpots()})
	if err := env.vm.FetchAllSpots(context.Background()); err != nil {
		t.Fatalf("FetchAllSpots() error = %v", err)
	}

	want := []string{
		testAssetURL + "/images/fort.jpg",
		testAssetURL + "/images/default.jpg",
		"https://cdn.example/m.png",
	}
	s := env.vm.Snapshot()
	for i, sp := range s.Spots {
		if sp.Image != want[i] {
			t.Errorf("Spots[%d].Image = %q, want %q", i, sp.Image, want[i])
		}
	}
}

func TestFetchRecommendedSpots(t *testing.T) {
	api := &fakeAPI{
		spots: sampleSpots(),
		user: &models.UserResponse{Success: true, Data: &models.UserProfile{
			Email: "ana@example.com", Preferences: []string{"History"}, DestinationCity: "Dubai",
		}},
	}
	env := newTestEnv(t, api)
	env.signIn("ana@example.com", "History")

	if err := env.vm.FetchRecommendedSpots(context.Background()); err != nil {
		t.Fatalf("FetchRecommendedSpots() error = %v", err)
	}

	s := env.vm.Snapshot()
	var ids []string
	for _, sp := range s.Spots {
		ids = append(ids, sp.SpotID)
	}
	if !equalStrings(ids, []string{"fort", "museum"}) {
		t.Errorf("recommended = %v, want [fort museum]", ids)
	}
	if s.Profile == nil || s.Profile.DestinationCity != "Dubai" {
		t.Errorf("Profile = %+v, want refreshed profile", s.Profile)
	}
	if !s.Message.Empty() {
		t.Errorf("Message = %+v, want none", s.Message)
	}
}

func TestFetchRecommendedSpots_NoMatches(t *testing.T) {
	api := &fakeAPI{
		spots: sampleSpots(),
		user: &models.UserResponse{Success: true, Data: &models.UserProfile{
			Email: "ana@example.com", Preferences: []string{"Skiing"}, DestinationCity: "Dubai",
		}},
	}
	env := newTestEnv(t, api)
	env.signIn("ana@example.com", "Skiing")

	if err := env.vm.FetchRecommendedSpots(context.Background()); err != nil {
		t.Fatalf("FetchRecommendedSpots() error = %v", err)
	}
	s := env.vm.Snapshot()
	if len(s.Spots) != 0 {
		t.Errorf("len(Spots) = %d, want 0", len(s.Spots))
	}
	if s.Message.Kind != MessageInfo || s.Message.Text != msgNoRecommendations {
		t.Errorf("Message = %+v, want info %q", s.Message, msgNoRecommendations)
	}
}

func TestFetchRecommendedSpots_Preconditions(t *testing.T) {
	tests := []struct {
		name     string
		signedIn bool
		user     *models.UserResponse
		wantKind error
		wantMsg  string
	}{
		{
			name:     "anonymous",
			wantKind: ErrPrecondition,
			wantMsg:  msgNoUserEmail,
		},
		{
			name:     "unsuccessful user response",
			signedIn: true,
			user:     &models.UserResponse{Success: false, Message: "not found"},
			wantKind: ErrFetch,
			wantMsg:  "Failed to fetch user data: not found",
		},
		{
			name:     "no data",
			signedIn: true,
			user:     &models.UserResponse{Success: true},
			wantKind: ErrPrecondition,
			wantMsg:  msgUserDataEmpty,
		},
		{
			name:     "no destination",
			signedIn: true,
			user:     &models.UserResponse{Success: true, Data: &models.UserProfile{Preferences: []string{"History"}}},
			wantKind: ErrPrecondition,
			wantMsg:  msgNoDestination,
		},
		{
			name:     "no preferences",
			signedIn: true,
			user:     &models.UserResponse{Success: true, Data: &models.UserProfile{DestinationCity: "Dubai"}},
			wantKind: ErrPrecondition,
			wantMsg:  msgNoPreferences,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, &fakeAPI{spots: sampleSpots(), user: tt.user})
			if tt.signedIn {
				env.signIn("ana@example.com")
			}

			err := env.vm.FetchRecommendedSpots(context.Background())
			if !errors.Is(err, tt.wantKind) {
				t.Fatalf("error = %v, want %v", err, tt.wantKind)
			}
			s := env.vm.Snapshot()
			if s.Message.Text != tt.wantMsg || s.Message.Kind != MessageError {
				t.Errorf("Message = %+v, want error %q", s.Message, tt.wantMsg)
			}
			if len(s.Spots) != 0 {
				t.Errorf("len(Spots) = %d, want 0", len(s.Spots))
			}
			if n := env.api.count("ListSpots"); n != 0 {
				t.Errorf("ListSpots calls = %d, want 0", n)
			}
		})
	}
}

func TestSetView(t *testing.T) {
	api := &fakeAPI{
		spots: sampleSpots(),
		user: &models.UserResponse{Success: true, Data: &models.UserProfile{
			Preferences: []string{"Beach"}, DestinationCity: "Abu Dhabi",
		}},
	}
	env := newTestEnv(t, api)
	env.signIn("ana@example.com", "Beach")

	if err := env.vm.SetView(context.Background(), ViewBrowseRecommended); err != nil {
		t.Fatalf("SetView(recommended) error = %v", err)
	}
	if s := env.vm.Snapshot(); s.View != ViewBrowseRecommended || len(s.Spots) != 1 {
		t.Errorf("View = %q, len(Spots) = %d, want recommended with 1 spot", s.View, len(s.Spots))
	}

	if err := env.vm.SetView(context.Background(), ViewBrowseAll); err != nil {
		t.Fatalf("SetView(all) error = %v", err)
	}
	if s := env.vm.Snapshot(); s.View != ViewBrowseAll || len(s.Spots) != 3 {
		t.Errorf("View = %q, len(Spots) = %d, want all with 3 spots", s.View, len(s.Spots))
	}

	if err := env.vm.SetView(context.Background(), View("map")); !errors.Is(err, ErrValidation) {
		t.Errorf("SetView(map) error = %v, want ErrValidation", err)
	}
}

func TestParseView(t *testing.T) {
	tests := []struct {
		in   string
		want View
		ok   bool
	}{
		{"all", ViewBrowseAll, true},
		{"browse-all", ViewBrowseAll, true},
		{"recommended", ViewBrowseRecommended, true},
		{"browse-recommended", ViewBrowseRecommended, true},
		{"map", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseView(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseView(%q) = %q, %v, want %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestFilteredExperiences(t *testing.T) {
	env := newTestEnv(t, &fakeAPI{spots: sampleSpots()})
	if err := env.vm.FetchAllSpots(context.Background()); err != nil {
		t.Fatal(err)
	}

	ids := func() []string {
		var out []string
		for _, sp := range env.vm.FilteredExperiences() {
			out = append(out, sp.SpotID)
		}
		return out
	}

	env.vm.SetSort(models.SortPrice, models.SortDesc)
	if got := ids(); !equalStrings(got, []string{"fort", "museum", "beach"}) {
		t.Errorf("price desc = %v", got)
	}

	env.vm.ToggleSortOrder()
	if got := ids(); !equalStrings(got, []string{"beach", "museum", "fort"}) {
		t.Errorf("price asc = %v", got)
	}

	env.vm.SetSearchQuery("HISTORY")
	if got := ids(); !equalStrings(got, []string{"museum", "fort"}) {
		t.Errorf("query history = %v", got)
	}

	// The city filter needs a signed-in user with a destination.
	env.vm.SetSearchQuery("")
	env.vm.SetShowAllCities(false)
	if got := ids(); len(got) != 3 {
		t.Errorf("anonymous city filter = %v, want all spots", got)
	}

	env.signIn("ana@example.com")
	env.vm.update(func(s *State) { s.Profile = &models.UserProfile{DestinationCity: "Sharjah"} })
	if got := ids(); !equalStrings(got, []string{"museum"}) {
		t.Errorf("city filter = %v, want [museum]", got)
	}
}

func TestSearchRemote(t *testing.T) {
	env := newTestEnv(t, &fakeAPI{searchResult: sampleSpots()[:1]})
	if err := env.vm.SearchRemote(context.Background(), "fort"); err != nil {
		t.Fatalf("SearchRemote() error = %v", err)
	}
	if s := env.vm.Snapshot(); len(s.Spots) != 1 || s.Spots[0].SpotID != "fort" {
		t.Errorf("Spots = %+v", s.Spots)
	}

	env = newTestEnv(t, &fakeAPI{searchErr: errors.New("boom")})
	if err := env.vm.SearchRemote(context.Background(), "fort"); !errors.Is(err, ErrFetch) {
		t.Errorf("SearchRemote() error = %v, want ErrFetch", err)
	}
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	env := newTestEnv(t, &fakeAPI{spots: sampleSpots()})
	if err := env.vm.FetchAllSpots(context.Background()); err != nil {
		t.Fatal(err)
	}
	env.setItinerary(entry("fort", 30, models.StatusPending))

	s := env.vm.Snapshot()
	s.Spots[0].Category[0] = "mutated"
	s.Itinerary[0].Title = "mutated"

	again := env.vm.Snapshot()
	if again.Spots[0].Category[0] != "History" {
		t.Errorf("spot category changed through snapshot: %q", again.Spots[0].Category[0])
	}
	if again.Itinerary[0].Title != "fort" {
		t.Errorf("itinerary changed through snapshot: %q", again.Itinerary[0].Title)
	}
}
