package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureUserIndexes makes the login identifier unique. The identifier lives
// in the email field whether it is an email or a phone string.
func EnsureUserIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("users").Indexes()

	identifierIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}},
		Options: options.Index().
			SetName("identifier_unique").
			SetUnique(true),
	}

	log.Println("EnsureUserIndexes: creating identifier_unique index")
	_, err := indexes.CreateOne(ctx, identifierIndex)
	if err != nil {
		log.Println("EnsureUserIndexes: identifier index error:", err)
		return err
	}
	log.Println("EnsureUserIndexes: identifier_unique index created")
	return nil
}

// EnsureEventIndexes keeps event ids unique and supports the availability
// matcher's venue/date lookups.
func EnsureEventIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("individuals").Indexes()

	idIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "id", Value: 1}},
		Options: options.Index().
			SetName("id_unique").
			SetUnique(true),
	}
	venueDateIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "venue", Value: 1}, {Key: "weddingDate", Value: 1}},
		Options: options.Index().SetName("venue_date_index"),
	}

	log.Println("EnsureEventIndexes: creating id_unique and venue_date_index")
	_, err := indexes.CreateMany(ctx, []mongo.IndexModel{idIndex, venueDateIndex})
	if err != nil {
		log.Println("EnsureEventIndexes: index error:", err)
		return err
	}
	log.Println("EnsureEventIndexes: indexes created")
	return nil
}

// EnsureBusinessIndexes keeps vendor ids unique.
func EnsureBusinessIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("businesses").Indexes()

	idIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "id", Value: 1}},
		Options: options.Index().
			SetName("id_unique").
			SetUnique(true),
	}

	log.Println("EnsureBusinessIndexes: creating id_unique index")
	_, err := indexes.CreateOne(ctx, idIndex)
	if err != nil {
		log.Println("EnsureBusinessIndexes: id index error:", err)
		return err
	}
	log.Println("EnsureBusinessIndexes: id_unique index created")
	return nil
}

// EnsureActivityIndexes supports the newest-first reads on the audit log and
// the per-user history filter.
func EnsureActivityIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("activities").Indexes()

	timestampIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "timestamp", Value: -1}},
		Options: options.Index().SetName("timestamp_desc"),
	}
	userIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}},
		Options: options.Index().SetName("userId_index"),
	}

	log.Println("EnsureActivityIndexes: creating timestamp_desc and userId_index")
	_, err := indexes.CreateMany(ctx, []mongo.IndexModel{timestampIndex, userIndex})
	if err != nil {
		log.Println("EnsureActivityIndexes: index error:", err)
		return err
	}
	log.Println("EnsureActivityIndexes: indexes created")
	return nil
}
