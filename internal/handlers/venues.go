package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"eventmanager/internal/booking"
	"eventmanager/internal/models"
)

// AvailableVenues answers which venue businesses are free for a given
// date, time slot and location. The client calls this from the event wizard
// before offering a venue list.
func AvailableVenues(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/venues/available"
		defer handlePanic(c, route)

		date := c.Query("date")
		if date == "" {
			respondWithError(c, http.StatusBadRequest, route, "date is required")
			return
		}
		slot := c.Query("time")
		if !booking.ValidSlot(slot) {
			respondWithError(c, http.StatusBadRequest, route, "time must be one of the defined slots")
			return
		}

		candidate := booking.Candidate{
			ID:       c.Query("exclude"),
			Date:     date,
			TimeSlot: slot,
			Country:  c.Query("country"),
			City:     c.Query("city"),
			District: c.Query("district"),
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		venues, err := loadBusinesses(ctx, db, bson.M{})
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		events, err := loadEvents(ctx, db)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		c.JSON(http.StatusOK, booking.AvailableVenues(candidate, venues, events))
	}
}

func loadBusinesses(ctx context.Context, db *mongo.Database, filter bson.M) ([]models.Business, error) {
	cursor, err := db.Collection("businesses").Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	businesses := make([]models.Business, 0)
	if err := cursor.All(ctx, &businesses); err != nil {
		return nil, err
	}
	return businesses, nil
}
