// Package store holds the mongo-backed collection access used by the
// services. Handlers that only do straight collection reads keep talking to
// the database directly.
package store

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"eventmanager/internal/identity"
	"eventmanager/internal/models"
)

const queryTimeout = 5 * time.Second

// Users implements identity.UserStore over the users collection.
type Users struct {
	db *mongo.Database
}

func NewUsers(db *mongo.Database) *Users { return &Users{db: db} }

// FindByIdentifier matches emails case-insensitively and phone strings
// exactly, mirroring the resolver's contact rules.
func (s *Users) FindByIdentifier(ctx context.Context, m identity.ContactMethod) (*models.UserProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	filter := bson.M{"email": m.Value}
	if m.Kind == models.ContactEmail {
		filter = bson.M{"email": bson.M{
			"$regex":   "^" + regexp.QuoteMeta(m.Value) + "$",
			"$options": "i",
		}}
	}

	var user models.UserProfile
	err := s.db.Collection("users").FindOne(ctx, filter).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Users) Insert(ctx context.Context, u models.UserProfile) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	_, err := s.db.Collection("users").InsertOne(ctx, u)
	return err
}

// MarkPaid flips isPaid after a completed payment.
func (s *Users) MarkPaid(ctx context.Context, identifier string) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := s.db.Collection("users").UpdateOne(ctx,
		bson.M{"email": identifier},
		bson.M{"$set": bson.M{"isPaid": true}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
