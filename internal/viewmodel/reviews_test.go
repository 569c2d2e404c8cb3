// Tourguide - Smart Tourism Recommendation Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourguide

package viewmodel

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/tomtom215/tourguide/internal/models"
)

func bookedEnv(t *testing.T, api *fakeAPI) *testEnv {
	t.Helper()
	env := newTestEnv(t, api)
	env.signIn("ana@example.com")
	env.setItinerary(entry("fort", 30, models.StatusBooked), entry("beach", 0, models.StatusPending))
	return env
}

func TestOpenReviewFlow_RequiresBooking(t *testing.T) {
	env := bookedEnv(t, nil)

	err := env.vm.OpenReviewFlow(entry("beach", 0, models.StatusPending))
	if !errors.Is(err, ErrPrecondition) {
		t.Fatalf("OpenReviewFlow(pending) error = %v, want ErrPrecondition", err)
	}
	if env.vm.Snapshot().ReviewFlow.Open {
		t.Error("review flow must stay closed for a pending entry")
	}

	if err := env.vm.OpenReviewFlow(entry("fort", 30, models.StatusBooked)); err != nil {
		t.Fatalf("OpenReviewFlow(booked) error = %v", err)
	}
	flow := env.vm.Snapshot().ReviewFlow
	if !flow.Open || flow.ShowForm || flow.Entry == nil || flow.Entry.SpotID != "fort" {
		t.Errorf("ReviewFlow = %+v", flow)
	}

	if err := env.vm.ProceedToReview(); err != nil {
		t.Fatalf("ProceedToReview() error = %v", err)
	}
	if !env.vm.Snapshot().ReviewFlow.ShowForm {
		t.Error("ShowForm should be set")
	}
}

func TestProceedToReview_WithoutFlow(t *testing.T) {
	env := newTestEnv(t, nil)
	if err := env.vm.ProceedToReview(); !errors.Is(err, ErrPrecondition) {
		t.Errorf("ProceedToReview() error = %v, want ErrPrecondition", err)
	}
}

func TestSubmitReview_RatingOutOfRange(t *testing.T) {
	for _, rating := range []int{0, 6, -1} {
		env := bookedEnv(t, nil)
		if err := env.vm.OpenReviewFlow(entry("fort", 30, models.StatusBooked)); err != nil {
			t.Fatal(err)
		}
		env.vm.SetReviewRating(rating)
		env.vm.SetReviewComment("Lovely")

		err := env.vm.SubmitReview(context.Background())
		if !errors.Is(err, ErrValidation) {
			t.Errorf("SubmitReview(rating %d) error = %v, want ErrValidation", rating, err)
		}
		if n := env.api.total(); n != 0 {
			t.Errorf("rating %d: remote calls = %d, want 0", rating, n)
		}
		s := env.vm.Snapshot()
		if s.Message.Text != msgRatingRange {
			t.Errorf("Message = %q, want %q", s.Message.Text, msgRatingRange)
		}
		if !s.ReviewFlow.Open || len(s.Itinerary) != 2 {
			t.Errorf("state changed on rejected rating: open=%v itinerary=%v", s.ReviewFlow.Open, entryIDs(s.Itinerary))
		}
	}
}

func TestSubmitReview_Success(t *testing.T) {
	env := bookedEnv(t, nil)
	if err := env.vm.OpenReviewFlow(entry("fort", 30, models.StatusBooked)); err != nil {
		t.Fatal(err)
	}
	env.vm.SetReviewRating(5)
	env.vm.SetReviewComment("Wonderful")

	if err := env.vm.SubmitReview(context.Background()); err != nil {
		t.Fatalf("SubmitReview() error = %v", err)
	}

	if len(env.api.submitted) != 1 {
		t.Fatalf("submitted = %d reviews, want 1", len(env.api.submitted))
	}
	want := models.Review{EmailID: "ana@example.com", SpotID: "fort", Rating: 5, Comment: "Wonderful", CreatedAt: "14/03/2026"}
	if got := env.api.submitted[0]; got != want {
		t.Errorf("review = %+v, want %+v", got, want)
	}

	s := env.vm.Snapshot()
	if got := entryIDs(s.Itinerary); !equalStrings(got, []string{"beach"}) {
		t.Errorf("Itinerary = %v, want [beach]", got)
	}
	if s.ReviewFlow.Open || s.ReviewFlow.Entry != nil {
		t.Errorf("ReviewFlow = %+v, want closed", s.ReviewFlow)
	}
	if spots := env.api.lastSaved(t).Spots; len(spots) != 1 || spots[0].SpotID != "beach" {
		t.Errorf("saved itinerary = %+v, want only beach", spots)
	}
}

func TestSubmitReview_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		api     *fakeAPI
		wantMsg string
	}{
		{
			name:    "success false",
			api:     &fakeAPI{reviewResp: &models.MessageResponse{Success: false}},
			wantMsg: msgSaveReview,
		},
		{
			name:    "success false with message",
			api:     &fakeAPI{reviewResp: &models.MessageResponse{Success: false, Message: "Already reviewed"}},
			wantMsg: "Already reviewed",
		},
		{
			name:    "transport error",
			api:     &fakeAPI{reviewErr: errors.New("timeout")},
			wantMsg: msgSaveReview,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := bookedEnv(t, tt.api)
			if err := env.vm.OpenReviewFlow(entry("fort", 30, models.StatusBooked)); err != nil {
				t.Fatal(err)
			}
			env.vm.SetReviewRating(5)

			err := env.vm.SubmitReview(context.Background())
			if !errors.Is(err, ErrPersistence) {
				t.Fatalf("SubmitReview() error = %v, want ErrPersistence", err)
			}
			s := env.vm.Snapshot()
			if got := entryIDs(s.Itinerary); !equalStrings(got, []string{"fort", "beach"}) {
				t.Errorf("Itinerary = %v, want unchanged", got)
			}
			if !s.ReviewFlow.Open {
				t.Error("review flow should stay open after a rejected review")
			}
			if s.Message.Text != tt.wantMsg {
				t.Errorf("Message = %q, want %q", s.Message.Text, tt.wantMsg)
			}
			if n := env.api.count("SaveItinerary"); n != 0 {
				t.Errorf("SaveItinerary calls = %d, want 0", n)
			}
		})
	}
}

func TestSubmitReview_NoFlow(t *testing.T) {
	env := bookedEnv(t, nil)
	if err := env.vm.SubmitReview(context.Background()); !errors.Is(err, ErrPrecondition) {
		t.Errorf("SubmitReview() error = %v, want ErrPrecondition", err)
	}
}

func TestSkipReview(t *testing.T) {
	env := bookedEnv(t, nil)
	if err := env.vm.OpenReviewFlow(entry("fort", 30, models.StatusBooked)); err != nil {
		t.Fatal(err)
	}

	if err := env.vm.SkipReview(context.Background()); err != nil {
		t.Fatalf("SkipReview() error = %v", err)
	}
	s := env.vm.Snapshot()
	if got := entryIDs(s.Itinerary); !equalStrings(got, []string{"beach"}) {
		t.Errorf("Itinerary = %v, want [beach]", got)
	}
	if s.ReviewFlow.Open {
		t.Error("review flow should be closed")
	}
	if n := env.api.count("SubmitReview"); n != 0 {
		t.Errorf("SubmitReview calls = %d, want 0", n)
	}
	if n := env.api.count("SaveItinerary"); n != 1 {
		t.Errorf("SaveItinerary calls = %d, want 1", n)
	}
}

func TestQuickReview(t *testing.T) {
	tests := []struct {
		name          string
		confirm       bool
		answers       []string
		wantErr       error
		wantItinerary []string
		wantSubmitted int
	}{
		{
			name:          "declined removes the entry",
			confirm:       false,
			wantItinerary: []string{"beach"},
		},
		{
			name:          "rating out of range",
			confirm:       true,
			answers:       []string{"7"},
			wantErr:       ErrValidation,
			wantItinerary: []string{"fort", "beach"},
		},
		{
			name:          "rating not a number",
			confirm:       true,
			answers:       []string{"great"},
			wantErr:       ErrValidation,
			wantItinerary: []string{"fort", "beach"},
		},
		{
			name:          "empty comment cancels",
			confirm:       true,
			answers:       []string{"4", ""},
			wantItinerary: []string{"fort", "beach"},
		},
		{
			name:          "submitted",
			confirm:       true,
			answers:       []string{"4.7", "Great views"},
			wantItinerary: []string{"beach"},
			wantSubmitted: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := bookedEnv(t, nil)
			env.prompter.confirm = tt.confirm
			env.prompter.answers = tt.answers

			err := env.vm.QuickReview(context.Background(), entry("fort", 30, models.StatusBooked))
			if tt.wantErr == nil && err != nil {
				t.Fatalf("QuickReview() error = %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("QuickReview() error = %v, want %v", err, tt.wantErr)
			}
			if got := entryIDs(env.vm.Snapshot().Itinerary); !equalStrings(got, tt.wantItinerary) {
				t.Errorf("Itinerary = %v, want %v", got, tt.wantItinerary)
			}
			if len(env.api.submitted) != tt.wantSubmitted {
				t.Errorf("submitted = %d, want %d", len(env.api.submitted), tt.wantSubmitted)
			}
			if tt.wantSubmitted > 0 && env.api.submitted[0].Rating != 4 {
				t.Errorf("rating = %d, want 4", env.api.submitted[0].Rating)
			}
		})
	}
}

func TestParseRating(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"1", 1, true},
		{" 5 ", 5, true},
		{"3.9", 3, true},
		{"0", 0, false},
		{"5.5", 0, false},
		{"NaN", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := parseRating(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("parseRating(%q) = %d, %v, want %d, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestLoadReviews(t *testing.T) {
	api := &fakeAPI{reviewList: &models.ReviewsResponse{Success: true, Reviews: []models.Review{
		{SpotID: "fort", Rating: 2, CreatedAt: "01/01/2026"},
		{SpotID: "fort", Rating: 5, CreatedAt: "10/03/2026"},
		{SpotID: "fort", Rating: 4, CreatedAt: "05/02/2026"},
	}}}
	env := newTestEnv(t, api)
	env.vm.SetReviewsSort(models.ReviewSortRating)

	if err := env.vm.LoadReviews(context.Background(), sampleSpots()[0]); err != nil {
		t.Fatalf("LoadReviews() error = %v", err)
	}
	s := env.vm.Snapshot()
	if !s.Reviews.Open || s.Reviews.Spot == nil || s.Reviews.Spot.SpotID != "fort" {
		t.Errorf("Reviews panel = %+v", s.Reviews)
	}
	if s.Reviews.SortBy != models.ReviewSortDate || s.Reviews.SortOrder != models.SortDesc {
		t.Errorf("sort = %q %q, want date desc", s.Reviews.SortBy, s.Reviews.SortOrder)
	}

	ratings := func() []int {
		var out []int
		for _, r := range env.vm.SortedReviews() {
			out = append(out, r.Rating)
		}
		return out
	}
	if got := ratings(); !slices.Equal(got, []int{5, 4, 2}) {
		t.Errorf("newest first = %v, want [5 4 2]", got)
	}

	env.vm.SetReviewsSort(models.ReviewSortRating)
	env.vm.ToggleReviewsSortOrder()
	if got := ratings(); !slices.Equal(got, []int{2, 4, 5}) {
		t.Errorf("rating asc = %v, want [2 4 5]", got)
	}

	env.vm.CloseReviews()
	if s := env.vm.Snapshot(); s.Reviews.Open || s.Reviews.Spot != nil || len(s.Reviews.Reviews) != 0 {
		t.Errorf("Reviews panel after close = %+v", s.Reviews)
	}
}

func TestLoadReviews_Failure(t *testing.T) {
	tests := []struct {
		name string
		api  *fakeAPI
	}{
		{"transport", &fakeAPI{reviewListErr: errors.New("boom")}},
		{"unsuccessful", &fakeAPI{reviewList: &models.ReviewsResponse{Success: false, Message: "nope"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, tt.api)
			err := env.vm.LoadReviews(context.Background(), sampleSpots()[0])
			if !errors.Is(err, ErrFetch) {
				t.Fatalf("LoadReviews() error = %v, want ErrFetch", err)
			}
			s := env.vm.Snapshot()
			if !s.Reviews.Open || len(s.Reviews.Reviews) != 0 {
				t.Errorf("Reviews panel = %+v, want open and empty", s.Reviews)
			}
		})
	}
}
