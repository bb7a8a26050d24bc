package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"eventmanager/internal/middleware"
	"eventmanager/internal/models"
)

func listActivities(ctx context.Context, db *mongo.Database, filter bson.M, limit int64) ([]models.ActivityLog, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	findOptions := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	if limit > 0 {
		findOptions.SetLimit(limit)
	}

	cursor, err := db.Collection("activities").Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	entries := make([]models.ActivityLog, 0)
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// GetActivities lists the full audit feed newest-first. Owner only.
func GetActivities(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/activities"
		defer handlePanic(c, route)

		var limit int64
		if l := c.Query("limit"); l != "" {
			_, parsed, err := parsePaginationParams("", l)
			if err != nil {
				respondWithError(c, http.StatusBadRequest, route, "invalid limit")
				return
			}
			limit = parsed
		}

		entries, err := listActivities(c.Request.Context(), db, bson.M{}, limit)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		c.JSON(http.StatusOK, entries)
	}
}

// GetMyActivities lists the caller's own entries newest-first.
func GetMyActivities(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/activities/mine"
		defer handlePanic(c, route)

		actor := middleware.Actor(c)

		entries, err := listActivities(c.Request.Context(), db, bson.M{"userId": actor.Email}, 0)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		c.JSON(http.StatusOK, entries)
	}
}
