package models

import "time"

// ActionType classifies an activity log entry.
type ActionType string

const (
	ActionCreate  ActionType = "create"
	ActionUpdate  ActionType = "update"
	ActionDelete  ActionType = "delete"
	ActionInquiry ActionType = "inquiry"
	ActionLogin   ActionType = "login"
	ActionSignup  ActionType = "signup"
	ActionPayment ActionType = "payment"
	ActionOther   ActionType = "other"
)

// ActivityLog is an immutable audit entry. The collection is append-only and
// read newest-first; there is no retention limit.
type ActivityLog struct {
	ID          string     `bson:"id" json:"id"`
	UserID      string     `bson:"userId" json:"userId"`
	UserName    string     `bson:"userName" json:"userName"`
	UserRole    Role       `bson:"userRole" json:"userRole"`
	ActionType  ActionType `bson:"actionType" json:"actionType"`
	Description string     `bson:"description" json:"description"`
	Timestamp   time.Time  `bson:"timestamp" json:"timestamp"`
}
