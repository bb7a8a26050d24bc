package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"eventmanager/internal/activity"
	"eventmanager/internal/billing"
	"eventmanager/internal/middleware"
	"eventmanager/internal/models"
)

// suggestionExcerpt shortens the content for the activity feed. Truncation
// counts runes so multi-byte text is never cut mid-sequence.
func suggestionExcerpt(content string) string {
	runes := []rune(content)
	if len(runes) <= 30 {
		return content
	}
	return string(runes[:30]) + "..."
}

// newSuggestion builds the stored document for one feedback submission.
func newSuggestion(actor models.UserProfile, content string, now time.Time) models.Suggestion {
	return models.Suggestion{
		ID:        uuid.NewString(),
		UserID:    actor.Email,
		UserName:  actor.Name,
		UserRole:  actor.Role,
		Content:   content,
		Timestamp: now,
		Status:    models.SuggestionNew,
	}
}

// CreateSuggestion files portal feedback. Any signed-in role may submit.
func CreateSuggestion(db *mongo.Database, clock billing.Clock, recorder *activity.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/suggestions"
		defer handlePanic(c, route)

		var req struct {
			Content string `json:"content" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}
		if strings.TrimSpace(req.Content) == "" {
			respondWithError(c, http.StatusBadRequest, route, "content is required")
			return
		}

		actor := middleware.Actor(c)
		suggestion := newSuggestion(actor, req.Content, clock.Now())

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if _, err := db.Collection("suggestions").InsertOne(ctx, suggestion); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		recorder.Record(c.Request.Context(), actor, models.ActionOther,
			fmt.Sprintf("Submitted a suggestion: %s", suggestionExcerpt(req.Content)))
		c.JSON(http.StatusCreated, suggestion)
	}
}

// GetSuggestions lists all feedback newest-first. Owner only.
func GetSuggestions(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/suggestions"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		findOptions := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
		cursor, err := db.Collection("suggestions").Find(ctx, bson.M{}, findOptions)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		defer cursor.Close(ctx)

		suggestions := make([]models.Suggestion, 0)
		if err := cursor.All(ctx, &suggestions); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "decode error")
			return
		}

		c.JSON(http.StatusOK, suggestions)
	}
}

// UpdateSuggestionStatus toggles a suggestion between new and reviewed.
// Owner only.
func UpdateSuggestionStatus(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PATCH /api/suggestions/:id"
		defer handlePanic(c, route)

		var req struct {
			Status models.SuggestionStatus `json:"status" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}
		if req.Status != models.SuggestionNew && req.Status != models.SuggestionReviewed {
			respondWithError(c, http.StatusBadRequest, route, "invalid status")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		res, err := db.Collection("suggestions").UpdateOne(ctx,
			bson.M{"id": c.Param("id")},
			bson.M{"$set": bson.M{"status": req.Status}},
		)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		if res.MatchedCount == 0 {
			respondWithError(c, http.StatusNotFound, route, "suggestion not found")
			return
		}

		c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "status": req.Status})
	}
}
