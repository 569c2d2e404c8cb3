// Tourguide - Smart Tourism Recommendation Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourguide

package shell

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/tomtom215/tourguide/internal/models"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func (s *Shell) price(p float64) string {
	return s.printer.Sprintf("%.2f", p)
}

func (s *Shell) renderSpots(spots []models.Spot, itinerary []models.ItineraryEntry) {
	planned := make(map[string]bool, len(itinerary))
	for _, e := range itinerary {
		planned[e.SpotID] = true
	}

	tw := newTable(s.out)
	fmt.Fprintln(tw, "#\tTITLE\tCITY\tCATEGORY\tPRICE\tRATING\t")
	for i, sp := range spots {
		mark := ""
		if planned[sp.SpotID] {
			mark = "+"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%.1f (%d)\t%s\n",
			i+1, sp.Title, sp.Location.City, strings.Join(sp.Category, ", "),
			s.price(sp.Price), sp.GoogleReviews.Rating, sp.GoogleReviews.ReviewCount, mark)
	}
	_ = tw.Flush()
}

func (s *Shell) renderItinerary(entries []models.ItineraryEntry, synced bool) {
	tw := newTable(s.out)
	fmt.Fprintln(tw, "#\tTITLE\tDATE\tSTATUS\tPRICE")
	for i, e := range entries {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", i+1, e.Title, e.Date, e.Status, s.price(e.Price))
	}
	fmt.Fprintf(tw, "\tTotal\t\t\t%s\n", s.price(models.TotalCost(entries)))
	_ = tw.Flush()
	fmt.Fprintf(s.out, "(%s)\n", syncLabel(synced))
}

func (s *Shell) renderReviews(title string, reviews []models.Review) {
	fmt.Fprintf(s.out, "Reviews for %s\n", title)
	if len(reviews) == 0 {
		fmt.Fprintln(s.out, "No reviews yet.")
		return
	}
	tw := newTable(s.out)
	for _, r := range reviews {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", stars(r.Rating), r.CreatedAt, r.EmailID, r.Comment)
	}
	_ = tw.Flush()
}

func (s *Shell) printNumbered(items []string) {
	for i, it := range items {
		fmt.Fprintf(s.out, "  %d. %s\n", i+1, it)
	}
}

func stars(n int) string {
	n = max(0, min(n, 5))
	return strings.Repeat("*", n) + strings.Repeat(".", 5-n)
}

func syncLabel(synced bool) string {
	if synced {
		return "saved"
	}
	return "not saved"
}
