package models

import "time"

type SuggestionStatus string

const (
	SuggestionNew      SuggestionStatus = "new"
	SuggestionReviewed SuggestionStatus = "reviewed"
)

// Suggestion is feedback submitted from the individual or business portal.
// Only the owner role may toggle its status.
type Suggestion struct {
	ID        string           `bson:"id" json:"id"`
	UserID    string           `bson:"userId" json:"userId"`
	UserName  string           `bson:"userName" json:"userName"`
	UserRole  Role             `bson:"userRole" json:"userRole"`
	Content   string           `bson:"content" json:"content"`
	Timestamp time.Time        `bson:"timestamp" json:"timestamp"`
	Status    SuggestionStatus `bson:"status" json:"status"`
}
