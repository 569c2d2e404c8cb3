// Tourguide - Smart Tourism Recommendation Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourguide

package models

// EntryStatus is the booking state of an itinerary entry.
type EntryStatus string

const (
	StatusPending EntryStatus = "pending"
	StatusBooked  EntryStatus = "booked"
)

// ItineraryEntry is one planned stop. Order within the itinerary is trip order.
//
// Website, Category and City are carried locally when the entry was created
// from a catalog spot; they are not part of the persisted record.
type ItineraryEntry struct {
	SpotID   string      `json:"spotId"`
	Title    string      `json:"title"`
	Price    float64     `json:"price"`
	Date     string      `json:"date"`
	Status   EntryStatus `json:"status"`
	Website  string      `json:"website,omitempty"`
	Category []string    `json:"category,omitempty"`
	City     string      `json:"city,omitempty"`
}

// IsBooked reports whether the entry can be reviewed.
func (e ItineraryEntry) IsBooked() bool {
	return e.Status == StatusBooked
}

// NewItineraryEntry builds a pending entry for spot dated date.
func NewItineraryEntry(spot Spot, date string) ItineraryEntry {
	return ItineraryEntry{
		SpotID:   spot.SpotID,
		Title:    spot.Title,
		Price:    spot.Price,
		Date:     date,
		Status:   StatusPending,
		Website:  spot.Website,
		Category: append([]string(nil), spot.Category...),
		City:     spot.Location.City,
	}
}

// CloneEntries deep-copies an itinerary.
func CloneEntries(entries []ItineraryEntry) []ItineraryEntry {
	if entries == nil {
		return nil
	}
	out := make([]ItineraryEntry, len(entries))
	for i, e := range entries {
		if e.Category != nil {
			e.Category = append([]string(nil), e.Category...)
		}
		out[i] = e
	}
	return out
}

// TotalCost sums the entry prices.
func TotalCost(entries []ItineraryEntry) float64 {
	var total float64
	for _, e := range entries {
		total += e.Price
	}
	return total
}

// ItinerarySpot is the persisted form of an entry.
type ItinerarySpot struct {
	SpotID string      `json:"spotId"`
	Title  string      `json:"title"`
	Price  float64     `json:"price"`
	Date   string      `json:"date"`
	Status EntryStatus `json:"status"`
}

// ItineraryPayload overwrites the remote itinerary of EmailID wholesale.
type ItineraryPayload struct {
	EmailID   string          `json:"emailId"`
	Spots     []ItinerarySpot `json:"spots"`
	TotalCost float64         `json:"totalCost"`
	CreatedAt string          `json:"createdAt"`
	UpdatedAt string          `json:"updatedAt"`
}

// NewItineraryPayload serializes entries for email, filling in defaults for
// missing dates and statuses.
func NewItineraryPayload(email string, entries []ItineraryEntry, today string) ItineraryPayload {
	spots := make([]ItinerarySpot, 0, len(entries))
	for _, e := range entries {
		date := e.Date
		if date == "" {
			date = today
		}
		status := e.Status
		if status == "" {
			status = StatusPending
		}
		spots = append(spots, ItinerarySpot{
			SpotID: e.SpotID,
			Title:  e.Title,
			Price:  e.Price,
			Date:   date,
			Status: status,
		})
	}
	return ItineraryPayload{
		EmailID:   email,
		Spots:     spots,
		TotalCost: TotalCost(entries),
		CreatedAt: today,
		UpdatedAt: today,
	}
}
