// Tourguide - Smart Tourism Recommendation Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourguide

package viewmodel

import (
	"context"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/tomtom215/tourguide/internal/logging"
	"github.com/tomtom215/tourguide/internal/models"
	"github.com/tomtom215/tourguide/internal/views"
)

// Quick-review prompts.
const (
	promptLeaveReview = "Would you like to leave a review for this attraction?"
	promptRating      = "Please rate this attraction (1-5 stars):"
	promptComment     = "Please leave a comment about your experience:"
)

// OpenReviewFlow starts the review dialog for a booked entry.
func (vm *ViewModel) OpenReviewFlow(entry models.ItineraryEntry) error {
	_, log := vm.begin(context.Background(), "open_review")
	if !entry.IsBooked() {
		log.Warn().Str("spot_id", entry.SpotID).Str("status", string(entry.Status)).Msg("Spot is not booked")
		return finish("open_review", newError(ErrPrecondition, msgNotBooked, nil))
	}
	e := models.CloneEntries([]models.ItineraryEntry{entry})[0]
	vm.update(func(s *State) {
		s.ReviewFlow = ReviewFlow{Open: true, Entry: &e}
	})
	return finish("open_review", nil)
}

// ProceedToReview shows the rating form of an open review flow.
func (vm *ViewModel) ProceedToReview() error {
	var open bool
	vm.update(func(s *State) {
		open = s.ReviewFlow.Open
		if open {
			s.ReviewFlow.ShowForm = true
		}
	})
	if !open {
		return newError(ErrPrecondition, msgNoReviewFlow, nil)
	}
	return nil
}

// CloseReviewFlow discards the review dialog.
func (vm *ViewModel) CloseReviewFlow() {
	vm.update(func(s *State) { s.ReviewFlow = ReviewFlow{} })
}

// SetReviewRating sets the form rating. Range is checked on submit.
func (vm *ViewModel) SetReviewRating(n int) {
	vm.update(func(s *State) { s.ReviewFlow.Form.Rating = n })
}

// SetReviewComment sets the form comment.
func (vm *ViewModel) SetReviewComment(c string) {
	vm.update(func(s *State) { s.ReviewFlow.Form.Comment = c })
}

// SubmitReview posts the open review. Only a server-confirmed success removes
// the entry from the itinerary; the itinerary is then saved.
func (vm *ViewModel) SubmitReview(ctx context.Context) error {
	ctx, log := vm.begin(ctx, "submit_review")

	var (
		flow  ReviewFlow
		email string
	)
	vm.read(func(s *State) {
		flow = s.ReviewFlow
		email = s.Session.UserEmail
	})

	if !flow.Open || flow.Entry == nil {
		log.Warn().Msg("No current review spot when submitting review")
		return finish("submit_review", newError(ErrPrecondition, msgNoReviewFlow, nil))
	}
	if flow.Form.Rating < 1 || flow.Form.Rating > 5 {
		vm.setMessage(MessageError, msgRatingRange)
		return finish("submit_review", &Error{Kind: ErrValidation, Field: "Rating", Message: msgRatingRange})
	}

	review := models.Review{
		EmailID:   email,
		SpotID:    flow.Entry.SpotID,
		Rating:    flow.Form.Rating,
		Comment:   flow.Form.Comment,
		CreatedAt: vm.today(),
	}
	if err := vm.postReview(ctx, review); err != nil {
		vm.setMessage(MessageError, err.Message)
		return finish("submit_review", err)
	}

	vm.removeSpot(flow.Entry.SpotID)
	vm.CloseReviewFlow()
	log.Info().Str("spot_id", review.SpotID).Int("rating", review.Rating).Msg("Review submitted successfully")
	return finish("submit_review", vm.persistItinerary(ctx))
}

// postReview submits review and requires {success: true}.
func (vm *ViewModel) postReview(ctx context.Context, review models.Review) *Error {
	resp, err := vm.api.SubmitReview(ctx, review)
	if err != nil {
		vm.logReviewFailure(ctx, err, review)
		return newError(ErrPersistence, remoteMessage(err, msgSaveReview), err)
	}
	if !resp.Success {
		msg := resp.Message
		if msg == "" {
			msg = msgSaveReview
		}
		vm.logReviewFailure(ctx, nil, review)
		return newError(ErrPersistence, msg, nil)
	}
	return nil
}

func (vm *ViewModel) logReviewFailure(ctx context.Context, err error, review models.Review) {
	logging.Ctx(ctx).Error().Err(err).Str("spot_id", review.SpotID).Msg("Failed to save review")
}

// removeSpot drops the entry for spotID, if present.
func (vm *ViewModel) removeSpot(spotID string) bool {
	return vm.mutateItinerary(func(entries []models.ItineraryEntry) ([]models.ItineraryEntry, bool) {
		i := indexOfSpot(entries, spotID)
		if i < 0 {
			return entries, false
		}
		return slices.Delete(slices.Clone(entries), i, i+1), true
	})
}

// SkipReview removes the reviewed entry without a review and closes the flow.
func (vm *ViewModel) SkipReview(ctx context.Context) error {
	ctx, log := vm.begin(ctx, "skip_review")

	var entry *models.ItineraryEntry
	vm.read(func(s *State) { entry = s.ReviewFlow.Entry })
	defer vm.CloseReviewFlow()

	if entry == nil {
		log.Warn().Msg("No current review spot when skipping review")
		return finish("skip_review", nil)
	}
	if !vm.removeSpot(entry.SpotID) {
		return finish("skip_review", nil)
	}
	log.Debug().Str("spot_id", entry.SpotID).Msg("Removing spot from itinerary")
	return finish("skip_review", vm.persistItinerary(ctx))
}

// QuickReview is the prompt-driven review dialog. Declining removes the entry;
// accepting asks for a rating and a comment and submits them. An invalid
// rating or an empty comment leaves everything unchanged.
func (vm *ViewModel) QuickReview(ctx context.Context, entry models.ItineraryEntry) error {
	ctx, log := vm.begin(ctx, "quick_review")

	yes, err := vm.prompter.Confirm(ctx, promptLeaveReview)
	if err != nil {
		log.Debug().Err(err).Msg("Review prompt cancelled")
		return finish("quick_review", nil)
	}
	if !yes {
		if vm.removeSpot(entry.SpotID) {
			return finish("quick_review", vm.persistItinerary(ctx))
		}
		return finish("quick_review", nil)
	}

	answer, err := vm.prompter.Ask(ctx, promptRating)
	if err != nil {
		return finish("quick_review", nil)
	}
	rating, ok := parseRating(answer)
	if !ok {
		log.Info().Str("answer", answer).Msg("Invalid rating provided")
		return finish("quick_review", &Error{Kind: ErrValidation, Field: "Rating", Message: msgRatingRange})
	}

	comment, err := vm.prompter.Ask(ctx, promptComment)
	if err != nil || comment == "" {
		return finish("quick_review", nil)
	}

	review := models.Review{
		EmailID:   vm.sessionEmail(),
		SpotID:    entry.SpotID,
		Rating:    rating,
		Comment:   comment,
		CreatedAt: vm.today(),
	}
	if rerr := vm.postReview(ctx, review); rerr != nil {
		return finish("quick_review", rerr)
	}
	log.Info().Str("spot_id", entry.SpotID).Msg("Review submitted successfully")
	vm.removeSpot(entry.SpotID)
	return finish("quick_review", vm.persistItinerary(ctx))
}

// parseRating accepts a number in [1,5]; fractions are truncated.
func parseRating(s string) (int, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || f < 1 || f > 5 {
		return 0, false
	}
	return int(f), true
}

// LoadReviews opens the reviews panel for spot and loads its reviews,
// sorted newest first. Failures show an empty list.
func (vm *ViewModel) LoadReviews(ctx context.Context, spot models.Spot) error {
	ctx, log := vm.begin(ctx, "load_reviews")
	sp := spot.Clone()
	vm.update(func(s *State) {
		s.Reviews = ReviewsPanel{
			Open:      true,
			Spot:      &sp,
			Reviews:   []models.Review{},
			SortBy:    models.ReviewSortDate,
			SortOrder: models.SortDesc,
		}
	})

	resp, err := vm.api.ListReviews(ctx, spot.SpotID)
	if err != nil {
		log.Error().Err(err).Str("spot_id", spot.SpotID).Msg("Error fetching reviews")
		return finish("load_reviews", newError(ErrFetch, err.Error(), err))
	}
	if !resp.Success {
		log.Error().Str("message", resp.Message).Msg("Failed to fetch reviews")
		return finish("load_reviews", newError(ErrFetch, "Failed to fetch reviews: "+resp.Message, nil))
	}

	reviews := slices.Clone(resp.Reviews)
	if reviews == nil {
		reviews = []models.Review{}
	}
	vm.update(func(s *State) {
		// A newer LoadReviews for another spot wins.
		if s.Reviews.Spot != nil && s.Reviews.Spot.SpotID == spot.SpotID {
			s.Reviews.Reviews = reviews
		}
	})
	return finish("load_reviews", nil)
}

// SetReviewsSort sets the review sort field.
func (vm *ViewModel) SetReviewsSort(by models.ReviewSortField) {
	vm.update(func(s *State) { s.Reviews.SortBy = by })
}

// ToggleReviewsSortOrder flips the review sort order.
func (vm *ViewModel) ToggleReviewsSortOrder() {
	vm.update(func(s *State) { s.Reviews.SortOrder = s.Reviews.SortOrder.Toggle() })
}

// CloseReviews hides the reviews panel.
func (vm *ViewModel) CloseReviews() {
	vm.update(func(s *State) {
		s.Reviews.Open = false
		s.Reviews.Spot = nil
		s.Reviews.Reviews = []models.Review{}
	})
}

// SortedReviews is the review list as it should be shown.
func (vm *ViewModel) SortedReviews() []models.Review {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return views.SortReviews(vm.state.Reviews.Reviews, vm.state.Reviews.SortBy, vm.state.Reviews.SortOrder)
}
