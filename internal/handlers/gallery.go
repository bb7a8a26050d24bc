package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"eventmanager/internal/middleware"
	"eventmanager/internal/models"
)

// maxGalleryImages bounds one gallery. The frontend caps uploads at 2MB per
// image; the count cap keeps a single document within Mongo's size limit.
const maxGalleryImages = 50

// normalizeGallery trims entries and drops blanks, keeping at most
// maxGalleryImages.
func normalizeGallery(images []string) []string {
	out := make([]string, 0, len(images))
	for _, img := range images {
		img = strings.TrimSpace(img)
		if img == "" {
			continue
		}
		out = append(out, img)
		if len(out) == maxGalleryImages {
			break
		}
	}
	return out
}

// galleryEvent loads the event and enforces ownership: individuals may only
// reach galleries of their own events.
func galleryEvent(c *gin.Context, db *mongo.Database, route string) (models.Event, bool) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	var event models.Event
	if err := db.Collection("individuals").FindOne(ctx, bson.M{"id": c.Param("id")}).Decode(&event); err != nil {
		respondWithError(c, http.StatusNotFound, route, "event not found")
		return models.Event{}, false
	}

	actor := middleware.Actor(c)
	if actor.Role == models.RoleIndividual && !event.BelongsTo(actor.Email) {
		respondWithError(c, http.StatusForbidden, route, "forbidden")
		return models.Event{}, false
	}
	return event, true
}

// GetEventGallery answers the image list for an event. A missing or
// unreadable gallery decodes to an empty list, matching the frontend's
// silent fallback.
func GetEventGallery(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/events/:id/gallery"
		defer handlePanic(c, route)

		event, ok := galleryEvent(c, db, route)
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		gallery := models.EventGallery{EventID: event.ID, Images: models.StringList{}}
		err := db.Collection("galleries").FindOne(ctx, bson.M{"eventId": event.ID}).Decode(&gallery)
		if err != nil || gallery.Images == nil {
			gallery = models.EventGallery{EventID: event.ID, Images: models.StringList{}}
		}

		c.JSON(http.StatusOK, gallery)
	}
}

// UpdateEventGallery replaces the image list for an event.
func UpdateEventGallery(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /api/events/:id/gallery"
		defer handlePanic(c, route)

		var req struct {
			Images []string `json:"images"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		event, ok := galleryEvent(c, db, route)
		if !ok {
			return
		}

		gallery := models.EventGallery{
			EventID: event.ID,
			Images:  normalizeGallery(req.Images),
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		_, err := db.Collection("galleries").ReplaceOne(ctx,
			bson.M{"eventId": event.ID},
			gallery,
			options.Replace().SetUpsert(true),
		)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		c.JSON(http.StatusOK, gallery)
	}
}
