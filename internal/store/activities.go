package store

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"eventmanager/internal/models"
)

// Activities implements activity.EntryStore over the activities collection.
type Activities struct {
	db *mongo.Database
}

func NewActivities(db *mongo.Database) *Activities { return &Activities{db: db} }

func (s *Activities) Append(ctx context.Context, entry models.ActivityLog) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	_, err := s.db.Collection("activities").InsertOne(ctx, entry)
	return err
}
