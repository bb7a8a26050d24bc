package models

import "time"

type InquiryStatus string

const (
	InquirySent    InquiryStatus = "Sent"
	InquiryRead    InquiryStatus = "Read"
	InquiryReplied InquiryStatus = "Replied"
)

func (s InquiryStatus) Valid() bool {
	switch s {
	case InquirySent, InquiryRead, InquiryReplied:
		return true
	}
	return false
}

// VendorInquiry is an individual's outbound contact message to a vendor.
// The vendor's name and category are denormalized onto the record.
type VendorInquiry struct {
	ID               string        `bson:"id" json:"id"`
	IndividualID     string        `bson:"individualId" json:"individualId"`
	IndividualName   string        `bson:"individualName" json:"individualName"`
	BusinessID       string        `bson:"businessId" json:"businessId"`
	BusinessName     string        `bson:"businessName" json:"businessName"`
	BusinessCategory string        `bson:"businessCategory" json:"businessCategory"`
	Message          string        `bson:"message" json:"message"`
	EventDate        string        `bson:"eventDate,omitempty" json:"eventDate,omitempty"`
	DateSent         time.Time     `bson:"dateSent" json:"dateSent"`
	Status           InquiryStatus `bson:"status" json:"status"`
}
