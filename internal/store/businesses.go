package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"eventmanager/internal/models"
)

// Businesses provisions and looks up vendor profiles.
type Businesses struct {
	db *mongo.Database
}

func NewBusinesses(db *mongo.Database) *Businesses { return &Businesses{db: db} }

// EnsureProfile finds the vendor profile belonging to a business account, or
// creates an empty one on first signup so the portal has something to edit.
// The account identifier is matched against the profile's email or phone
// depending on its contact kind.
func (s *Businesses) EnsureProfile(ctx context.Context, u models.UserProfile) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	field := "phone"
	if u.ContactKind == models.ContactEmail {
		field = "email"
	}

	var existing models.Business
	err := s.db.Collection("businesses").FindOne(ctx, bson.M{field: u.Email}).Decode(&existing)
	if err == nil {
		return existing.ID, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return "", err
	}

	category := u.BusinessCategory
	if category == "" {
		category = "Hall Services"
	}

	profile := models.Business{
		ID:          uuid.NewString(),
		Name:        u.Name,
		Category:    category,
		ContactName: u.Name,
		Country:     u.Country,
		Services:    []models.ServiceItem{},
		Images:      models.StringList{},
	}
	if u.ContactKind == models.ContactEmail {
		profile.Email = u.Email
	} else {
		profile.Phone = u.Email
	}

	if _, err := s.db.Collection("businesses").InsertOne(ctx, profile); err != nil {
		return "", err
	}
	return profile.ID, nil
}
