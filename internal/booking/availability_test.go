package booking

import (
	"testing"

	"eventmanager/internal/models"
)

func venue(name, city string) models.Business {
	return models.Business{
		ID:       name,
		Name:     name,
		Category: "Venue / Hall Services",
		Country:  "United States",
		City:     city,
	}
}

func event(id, venue, date, slot string, status models.BookingStatus) models.Event {
	return models.Event{
		ID:          id,
		Venue:       venue,
		WeddingDate: date,
		EventTime:   slot,
		Status:      status,
	}
}

func names(bs []models.Business) []string {
	out := make([]string, 0, len(bs))
	for _, b := range bs {
		out = append(out, b.Name)
	}
	return out
}

func TestAvailableVenuesFiltersNonVenueCategories(t *testing.T) {
	venues := []models.Business{
		venue("Royal Hall Services", "New York"),
		{ID: "c1", Name: "Tasty Catering", Category: "Catering Services", Country: "United States", City: "New York"},
	}
	got := AvailableVenues(Candidate{Country: "United States", City: "New York", Date: "2024-06-15"}, venues, nil)
	if len(got) != 1 || got[0].Name != "Royal Hall Services" {
		t.Fatalf("expected only the hall, got %v", names(got))
	}
}

func TestAvailableVenuesLocationMatchIsCaseInsensitive(t *testing.T) {
	venues := []models.Business{venue("Royal Hall Services", "New York")}
	got := AvailableVenues(Candidate{City: "new york", Date: "2024-06-15"}, venues, nil)
	if len(got) != 1 {
		t.Fatalf("expected city match to ignore case, got %v", names(got))
	}
}

func TestAvailableVenuesEmptyLocationFieldsAreWildcards(t *testing.T) {
	venues := []models.Business{venue("Royal Hall Services", "New York")}
	got := AvailableVenues(Candidate{Date: "2024-06-15"}, venues, nil)
	if len(got) != 1 {
		t.Fatalf("expected wildcard location to match, got %v", names(got))
	}
}

func TestAvailableVenuesDistrictMismatchExcludes(t *testing.T) {
	v := venue("Royal Hall Services", "New York")
	v.District = "Downtown"
	got := AvailableVenues(Candidate{City: "New York", District: "Brooklyn", Date: "2024-06-15"}, []models.Business{v}, nil)
	if len(got) != 0 {
		t.Fatalf("expected district mismatch to exclude, got %v", names(got))
	}
}

func TestNoSlotBookingBlocksWholeDay(t *testing.T) {
	venues := []models.Business{venue("Royal Hall Services", "New York")}
	events := []models.Event{event("e1", "Royal Hall Services", "2024-06-15", "", models.StatusConfirmed)}

	// Candidate with no slot selected on the same date: excluded.
	got := AvailableVenues(Candidate{City: "New York", Date: "2024-06-15"}, venues, events)
	if len(got) != 0 {
		t.Fatalf("expected whole-day block, got %v", names(got))
	}

	// Even a slotted candidate is blocked by an unslotted booking.
	got = AvailableVenues(Candidate{City: "New York", Date: "2024-06-15", TimeSlot: SlotMorning}, venues, events)
	if len(got) != 0 {
		t.Fatalf("expected whole-day block against slotted candidate, got %v", names(got))
	}
}

func TestSameSlotConflictExcludesVenue(t *testing.T) {
	venues := []models.Business{venue("Royal Hall Services", "New York")}
	events := []models.Event{
		event("e1", "Royal Hall Services", "2024-06-15", SlotMorning, models.StatusConfirmed),
		event("e2", "Royal Hall Services", "2024-06-15", SlotDay, models.StatusConfirmed),
	}

	got := AvailableVenues(Candidate{City: "New York", Date: "2024-06-15", TimeSlot: SlotDay}, venues, events)
	if len(got) != 0 {
		t.Fatalf("expected same-slot conflict to exclude venue, got %v", names(got))
	}
}

func TestDistinctSlotsCoexist(t *testing.T) {
	venues := []models.Business{venue("Royal Hall Services", "New York")}
	events := []models.Event{
		event("e1", "Royal Hall Services", "2024-06-15", SlotMorning, models.StatusConfirmed),
		event("e2", "Royal Hall Services", "2024-06-15", SlotDay, models.StatusConfirmed),
	}

	got := AvailableVenues(Candidate{City: "New York", Date: "2024-06-15", TimeSlot: SlotEvening}, venues, events)
	if len(got) != 1 {
		t.Fatalf("expected third slot to remain bookable, got %v", names(got))
	}
}

func TestCandidateWithoutSlotNotBlockedBySlottedBookings(t *testing.T) {
	venues := []models.Business{venue("Royal Hall Services", "New York")}
	events := []models.Event{event("e1", "Royal Hall Services", "2024-06-15", SlotEvening, models.StatusConfirmed)}

	got := AvailableVenues(Candidate{City: "New York", Date: "2024-06-15"}, venues, events)
	if len(got) != 1 {
		t.Fatalf("expected permissive default for unslotted candidate, got %v", names(got))
	}
}

func TestCancelledBookingsAreIgnored(t *testing.T) {
	venues := []models.Business{venue("Royal Hall Services", "New York")}
	events := []models.Event{event("e1", "Royal Hall Services", "2024-06-15", "", models.StatusCancelled)}

	got := AvailableVenues(Candidate{City: "New York", Date: "2024-06-15"}, venues, events)
	if len(got) != 1 {
		t.Fatalf("expected cancelled booking to be ignored, got %v", names(got))
	}
}

func TestEditedEventDoesNotConflictWithItself(t *testing.T) {
	venues := []models.Business{venue("Royal Hall Services", "New York")}
	events := []models.Event{event("e1", "Royal Hall Services", "2024-06-15", "", models.StatusConfirmed)}

	got := AvailableVenues(Candidate{ID: "e1", City: "New York", Date: "2024-06-15"}, venues, events)
	if len(got) != 1 {
		t.Fatalf("expected self-exclusion by id, got %v", names(got))
	}
}

func TestDifferentDateDoesNotConflict(t *testing.T) {
	venues := []models.Business{venue("Royal Hall Services", "New York")}
	events := []models.Event{event("e1", "Royal Hall Services", "2024-06-15", "", models.StatusConfirmed)}

	got := AvailableVenues(Candidate{City: "New York", Date: "2024-06-16"}, venues, events)
	if len(got) != 1 {
		t.Fatalf("expected other dates to stay available, got %v", names(got))
	}
}

func TestValidSlot(t *testing.T) {
	for _, id := range []string{"", SlotMorning, SlotDay, SlotEvening} {
		if !ValidSlot(id) {
			t.Fatalf("expected %q to be valid", id)
		}
	}
	if ValidSlot("Midnight") {
		t.Fatal("expected unknown slot to be invalid")
	}
}
