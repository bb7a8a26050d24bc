package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role tags an account as one of the three portal types.
type Role string

const (
	RoleIndividual Role = "individual"
	RoleBusiness   Role = "business"
	RoleOwner      Role = "owner"
)

func (r Role) Valid() bool {
	switch r {
	case RoleIndividual, RoleBusiness, RoleOwner:
		return true
	}
	return false
}

// ContactKind records how an account identifies itself. The identifier field
// holds either an email address or a raw phone string; the kind is decided
// once at signup and carried on the document.
type ContactKind string

const (
	ContactEmail ContactKind = "email"
	ContactPhone ContactKind = "phone"
)

// UserProfile is the account document. The identifier lives in the Email
// field even when it is a phone number, matching the frontend's state shape.
type UserProfile struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Name             string             `bson:"name" json:"name"`
	Email            string             `bson:"email" json:"email"`
	ContactKind      ContactKind        `bson:"contactKind" json:"contactKind"`
	Role             Role               `bson:"role" json:"role"`
	Country          string             `bson:"country" json:"country"`
	Currency         string             `bson:"currency" json:"currency"`
	BusinessCategory string             `bson:"businessCategory,omitempty" json:"businessCategory,omitempty"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
	IsPaid           bool               `bson:"isPaid" json:"isPaid"`
	BusinessID       string             `bson:"businessId,omitempty" json:"businessId,omitempty"`
}
