package store

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"eventmanager/internal/models"
)

// Seed inserts the demo data into empty collections. A collection that
// cannot be read is treated as empty, matching the frontend's silent
// fallback to its hardcoded lists. Seeding is best-effort.
func Seed(db *mongo.Database) {
	seedCollection(db, "individuals", toAny(seedEvents))
	seedCollection(db, "businesses", toAny(seedBusinesses))
}

func seedCollection(db *mongo.Database, name string, docs []interface{}) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	count, err := db.Collection(name).CountDocuments(ctx, bson.M{})
	if err != nil {
		log.Printf("[SEED] [WARN] count %s failed: %v", name, err)
	}
	if count > 0 {
		return
	}

	if _, err := db.Collection(name).InsertMany(ctx, docs); err != nil {
		log.Printf("[SEED] [WARN] seeding %s failed: %v", name, err)
		return
	}
	log.Printf("[SEED] [INFO] seeded %s with %d documents", name, len(docs))
}

func toAny[T any](items []T) []interface{} {
	out := make([]interface{}, len(items))
	for i, v := range items {
		out[i] = v
	}
	return out
}

var seedEvents = []models.Event{
	{
		ID:          "1",
		EventType:   models.EventWedding,
		EventName:   "Clarke & Wilson Wedding",
		Name:        "Emily Clarke",
		PartnerName: "James Wilson",
		Email:       "emily.clarke@example.com",
		Phone:       "555-0101",
		WeddingDate: "2024-06-15",
		EventTime:   "Day",
		DueDate:     "2024-05-15",
		Venue:       "Royal Hall Services",
		District:    "Downtown",
		City:        "New York",
		Country:     "United States",
		GuestCount:  150,
		Budget:      25000,
		Currency:    "USD",
		Status:      models.StatusConfirmed,
		Notes:       "Vegetarian menu required for 20 guests.",
		Preferences: "Rustic theme, outdoor ceremony, pastel colors",
	},
	{
		ID:          "2",
		EventType:   models.EventWedding,
		EventName:   "Connor Reception",
		Name:        "Sarah Connor",
		PartnerName: "Kyle Reese",
		Email:       "sarah.c@example.com",
		Phone:       "555-0102",
		WeddingDate: "2024-08-20",
		EventTime:   "Evening",
		DueDate:     "2024-07-01",
		Venue:       "Eternal Moments",
		District:    "West End",
		City:        "London",
		Country:     "United Kingdom",
		GuestCount:  80,
		Budget:      15000,
		Currency:    "GBP",
		Status:      models.StatusInquiry,
		Notes:       "Looking for available dates in August.",
		Preferences: "Modern industrial, minimal decor",
	},
	{
		ID:          "3",
		EventType:   models.EventCorporate,
		EventName:   "Scott Winter Gala",
		Name:        "Michael Scott",
		PartnerName: "Holly Flax",
		Email:       "m.scott@example.com",
		Phone:       "555-0103",
		WeddingDate: "2024-12-05",
		EventTime:   "Evening",
		DueDate:     "2024-11-01",
		Venue:       "Main Hall",
		District:    "Scranton Business Park",
		City:        "Scranton",
		Country:     "United States",
		GuestCount:  200,
		Budget:      40000,
		Currency:    "USD",
		Status:      models.StatusTourScheduled,
		Notes:       "Wants to see the grand ballroom.",
		Preferences: "Winter wonderland, lots of lights, classy",
	},
}

var seedBusinesses = []models.Business{
	{
		ID:          "1",
		Name:        "Royal Hall Services",
		Category:    "Venue / Hall Services",
		ContactName: "Elena Rose",
		Email:       "elena@royalhall.com",
		Phone:       "(555) 234-5678",
		Rating:      4.9,
		City:        "New York",
		District:    "Downtown",
		Country:     "United States",
		Description: "Experience luxury and elegance at Royal Hall Services. Located in the heart of Downtown, our historic venue offers a blend of classic charm and modern amenities.",
		Services: []models.ServiceItem{
			{Name: "Full Venue Rental", Amount: 5000, Currency: "USD", TimeCategory: "6 hours", Description: "Includes tables & chairs."},
			{Name: "Catering (Buffet)", Amount: 120, Currency: "USD", TimeCategory: "Fixed Price", Description: "3-course meal, open bar."},
			{Name: "Standard Audio/Visual Setup", Amount: 1500, Currency: "USD", TimeCategory: "Per day", Description: "Professional lighting setup."},
		},
		Images: models.StringList{
			"https://images.unsplash.com/photo-1519167758481-83f550bb49b3?auto=format&fit=crop&q=80&w=600",
			"https://images.unsplash.com/photo-1519741497674-611481863552?auto=format&fit=crop&q=80&w=600",
		},
	},
	{
		ID:          "2",
		Name:        "Saadeddin Pastry",
		Category:    "Catering Services",
		ContactName: "Saad Sales",
		Email:       "orders@saadeddin.com",
		Phone:       "+966 9200 17070",
		Rating:      4.7,
		City:        "Riyadh",
		District:    "Al Malaz",
		Country:     "Saudi Arabia",
		Description: "Famous for traditional Arabic sweets and western pastries.",
		Services: []models.ServiceItem{
			{Name: "Other", Amount: 50, Currency: "SAR", TimeCategory: "Fixed Price", Description: "Per person dessert assortment."},
		},
		Images: models.StringList{
			"https://images.unsplash.com/photo-1504674900247-0877df9cc836?auto=format&fit=crop&q=80&w=600",
		},
	},
}
