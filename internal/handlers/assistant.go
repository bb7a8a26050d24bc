package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"eventmanager/internal/assistant"
	"eventmanager/internal/models"
)

// generate calls the model and falls back to a canned message on any
// failure, matching the original portal which never surfaced model errors.
func generate(c *gin.Context, route string, gen assistant.Generator, prompt, fallback string) {
	text, err := gen.Generate(c.Request.Context(), prompt)
	if err != nil {
		log.Printf("[%s] generation failed: %v", route, err)
		text = fallback
	}
	c.JSON(http.StatusOK, gin.H{"text": text})
}

func loadEvent(c *gin.Context, db *mongo.Database, route, id string) (models.Event, bool) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	var event models.Event
	if err := db.Collection("individuals").FindOne(ctx, bson.M{"id": id}).Decode(&event); err != nil {
		respondWithError(c, http.StatusNotFound, route, "event not found")
		return models.Event{}, false
	}
	return event, true
}

// DraftClientEmail writes a follow-up email for an event booking.
func DraftClientEmail(db *mongo.Database, gen assistant.Generator) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/assistant/email"
		defer handlePanic(c, route)

		var req struct {
			EventID string `json:"eventId" binding:"required"`
			Context string `json:"context"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		event, ok := loadEvent(c, db, route, req.EventID)
		if !ok {
			return
		}

		generate(c, route, gen, assistant.EmailDraftPrompt(event, req.Context), assistant.FallbackEmailDraft)
	}
}

// DraftVendorEmail writes an outreach email to a vendor.
func DraftVendorEmail(db *mongo.Database, gen assistant.Generator) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/assistant/vendor-email"
		defer handlePanic(c, route)

		var req struct {
			BusinessID string `json:"businessId" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var business models.Business
		if err := db.Collection("businesses").FindOne(ctx, bson.M{"id": req.BusinessID}).Decode(&business); err != nil {
			respondWithError(c, http.StatusNotFound, route, "business not found")
			return
		}

		generate(c, route, gen, assistant.VendorEmailPrompt(business), assistant.FallbackVendorEmail)
	}
}

// SuggestEventIdeas proposes themes and colors for an event.
func SuggestEventIdeas(db *mongo.Database, gen assistant.Generator) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/assistant/ideas"
		defer handlePanic(c, route)

		var req struct {
			EventID string `json:"eventId" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		event, ok := loadEvent(c, db, route, req.EventID)
		if !ok {
			return
		}

		generate(c, route, gen, assistant.EventIdeasPrompt(event), assistant.FallbackEventIdeas)
	}
}

// FindVendors searches for real local vendors matched to an event, returning
// the generated write-up plus the grounding links. Failures degrade to the
// canned message with no links, like the other assistant endpoints.
func FindVendors(gen assistant.GroundedGenerator) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/assistant/find-vendors"
		defer handlePanic(c, route)

		var req struct {
			City        string `json:"city" binding:"required"`
			Category    string `json:"category" binding:"required"`
			EventType   string `json:"eventType"`
			Preferences string `json:"preferences"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		prompt := assistant.VendorSearchPrompt(req.City, req.Category, req.EventType, req.Preferences)
		text, links, err := gen.GenerateGrounded(c.Request.Context(), prompt)
		if err != nil {
			log.Printf("[%s] grounded generation failed: %v", route, err)
			text = assistant.FallbackVendorSearch
			links = nil
		}
		if links == nil {
			links = []assistant.Link{}
		}

		c.JSON(http.StatusOK, gin.H{"text": text, "links": links})
	}
}

// SuggestUpsells proposes add-on services for a booked event.
func SuggestUpsells(db *mongo.Database, gen assistant.Generator) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/assistant/upsells"
		defer handlePanic(c, route)

		var req struct {
			EventID string `json:"eventId" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		event, ok := loadEvent(c, db, route, req.EventID)
		if !ok {
			return
		}

		generate(c, route, gen, assistant.UpsellPrompt(event), assistant.FallbackUpsells)
	}
}
