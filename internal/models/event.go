package models

import "strings"

// BookingStatus is the lifecycle of an event record.
type BookingStatus string

const (
	StatusInquiry       BookingStatus = "Inquiry"
	StatusTourScheduled BookingStatus = "Tour Scheduled"
	StatusContractSent  BookingStatus = "Contract Sent"
	StatusConfirmed     BookingStatus = "Confirmed"
	StatusCompleted     BookingStatus = "Completed"
	StatusCancelled     BookingStatus = "Cancelled"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case StatusInquiry, StatusTourScheduled, StatusContractSent,
		StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// EventType values offered by the creation wizard. Free-text types are also
// accepted, so Event.EventType stays a plain string.
const (
	EventWedding     = "Wedding"
	EventBirthday    = "Birthday Party"
	EventCorporate   = "Corporate Event"
	EventAnniversary = "Anniversary"
	EventEngagement  = "Engagement Party"
	EventBabyShower  = "Baby Shower"
	EventHoliday     = "Holiday Party"
	EventConference  = "Conference"
	EventCustom      = "Custom Event"
	EventOther       = "Other"
)

// Event is an individual's planned event. The date field keeps its legacy
// name (weddingDate) for compatibility with stored documents and the
// frontend; it holds an ISO date string (2006-01-02). EventTime is a slot id,
// not a clock time.
type Event struct {
	ID          string        `bson:"id" json:"id"`
	EventType   string        `bson:"eventType" json:"eventType"`
	EventName   string        `bson:"eventName,omitempty" json:"eventName,omitempty"`
	Name        string        `bson:"name" json:"name"`
	PartnerName string        `bson:"partnerName,omitempty" json:"partnerName,omitempty"`
	Email       string        `bson:"email" json:"email"`
	Phone       string        `bson:"phone" json:"phone"`
	WeddingDate string        `bson:"weddingDate" json:"weddingDate"`
	EventTime   string        `bson:"eventTime,omitempty" json:"eventTime,omitempty"`
	DueDate     string        `bson:"dueDate,omitempty" json:"dueDate,omitempty"`
	Venue       string        `bson:"venue,omitempty" json:"venue,omitempty"`
	District    string        `bson:"district,omitempty" json:"district,omitempty"`
	City        string        `bson:"city,omitempty" json:"city,omitempty"`
	Country     string        `bson:"country,omitempty" json:"country,omitempty"`
	GuestCount  int           `bson:"guestCount" json:"guestCount"`
	Budget      float64       `bson:"budget,omitempty" json:"budget,omitempty"`
	Currency    string        `bson:"currency,omitempty" json:"currency,omitempty"`
	Status      BookingStatus `bson:"status" json:"status"`
	Notes       string        `bson:"notes" json:"notes"`
	Preferences string        `bson:"preferences" json:"preferences"`
}

// BelongsTo reports whether the event was created under the given login
// identifier. Events carry both contact fields, so the identifier is checked
// against each the same way the frontend filtered its lists.
func (e Event) BelongsTo(identifier string) bool {
	return strings.EqualFold(e.Email, identifier) || e.Phone == identifier
}

// EventGallery is the image list attached to one event. The frontend stored
// these under per-event keys; here they live in a galleries collection keyed
// by event id. Images are URLs or data URIs, replaced as a whole list.
type EventGallery struct {
	EventID string     `bson:"eventId" json:"eventId"`
	Images  StringList `bson:"images" json:"images"`
}
