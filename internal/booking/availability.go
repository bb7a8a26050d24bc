// Package booking decides which venues a candidate event can still book.
// The filter is advisory: it feeds the venue dropdown and does not enforce
// exclusivity at save time, so two sessions can still save the same
// venue/date/slot combination.
package booking

import (
	"strings"

	"eventmanager/internal/models"
)

// Candidate is the event being planned or edited. Empty location fields act
// as wildcards. ID is set when editing so the event does not conflict with
// itself.
type Candidate struct {
	ID       string
	Date     string // ISO date string, compared verbatim
	TimeSlot string // slot id, "" when not selected yet
	Country  string
	City     string
	District string
}

// AvailableVenues filters the vendor directory down to venue-category
// businesses in the candidate's location that have no conflicting booking.
func AvailableVenues(c Candidate, venues []models.Business, events []models.Event) []models.Business {
	available := make([]models.Business, 0)
	for _, v := range venues {
		if !isVenueCategory(v.Category) {
			continue
		}
		if !locationMatches(c, v) {
			continue
		}
		if venueBooked(c, v.Name, events) {
			continue
		}
		available = append(available, v)
	}
	return available
}

// isVenueCategory accepts both the legacy "Hall Services" tag and the
// current "Venue / Hall Services" catalog entry.
func isVenueCategory(category string) bool {
	return strings.Contains(category, "Hall Services")
}

func locationMatches(c Candidate, v models.Business) bool {
	if c.Country != "" && v.Country != c.Country {
		return false
	}
	if c.City != "" && !strings.EqualFold(v.City, c.City) {
		return false
	}
	if c.District != "" && !strings.EqualFold(v.District, c.District) {
		return false
	}
	return true
}

// venueBooked reports whether any existing event blocks the candidate from
// booking the named venue on its date. Slot rules:
//   - an existing booking with no slot occupies the whole day
//   - two slotted bookings conflict only on the exact same slot
//   - a candidate with no slot selected yet is not blocked by slot-specific
//     bookings (permissive until a slot is chosen)
func venueBooked(c Candidate, venueName string, events []models.Event) bool {
	for _, e := range events {
		if e.ID == c.ID {
			continue
		}
		if e.Status == models.StatusCancelled {
			continue
		}
		if e.WeddingDate != c.Date || e.Venue != venueName {
			continue
		}
		if e.EventTime == "" {
			return true
		}
		if c.TimeSlot != "" && e.EventTime == c.TimeSlot {
			return true
		}
	}
	return false
}
