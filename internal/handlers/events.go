package handlers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"eventmanager/internal/activity"
	"eventmanager/internal/billing"
	"eventmanager/internal/booking"
	"eventmanager/internal/identity"
	"eventmanager/internal/middleware"
	"eventmanager/internal/models"
	"eventmanager/internal/store"
)

// validateEvent applies the wizard's submission rules.
func validateEvent(e models.Event) error {
	if strings.TrimSpace(e.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if strings.TrimSpace(e.Email) == "" && strings.TrimSpace(e.Phone) == "" {
		return fmt.Errorf("either email or phone is required")
	}
	if strings.TrimSpace(e.WeddingDate) == "" {
		return fmt.Errorf("weddingDate is required")
	}
	if !booking.ValidSlot(e.EventTime) {
		return fmt.Errorf("eventTime must be one of the defined slots")
	}
	if e.Status != "" && !e.Status.Valid() {
		return fmt.Errorf("invalid status")
	}
	return nil
}

// eventLabel is the name used in activity descriptions.
func eventLabel(e models.Event) string {
	if e.EventName != "" {
		return e.EventName
	}
	return e.EventType
}

func loadEvents(ctx context.Context, db *mongo.Database) ([]models.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := db.Collection("individuals").Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	events := make([]models.Event, 0)
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// CreateEvent saves a new event. Individual accounts pass through the
// usage gate first: a free individual may hold one non-cancelled event, and
// a second attempt is answered with 402 so the client opens the billing
// step instead of the wizard.
func CreateEvent(db *mongo.Database, users *store.Users, recorder *activity.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/events"
		defer handlePanic(c, route)

		var event models.Event
		if err := c.ShouldBindJSON(&event); err != nil {
			respondValidationError(c, err)
			return
		}
		if err := validateEvent(event); err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		actor := middleware.Actor(c)

		if actor.Role == models.RoleIndividual {
			stored, err := users.FindByIdentifier(c.Request.Context(), identity.ParseIdentifier(actor.Email))
			if err != nil {
				respondWithError(c, http.StatusInternalServerError, route, "db error")
				return
			}
			user := models.UserProfile{Email: actor.Email, Role: models.RoleIndividual}
			if stored != nil {
				user = *stored
			}
			events, err := loadEvents(c.Request.Context(), db)
			if err != nil {
				respondWithError(c, http.StatusInternalServerError, route, "db error")
				return
			}
			active := billing.CountActiveEvents(actor.Email, events)
			if billing.IndividualBillingRequired(user, active) {
				log.Printf("[%s] creation gated for free individual (active=%d)", route, active)
				c.AbortWithStatusJSON(http.StatusPaymentRequired, gin.H{
					"error":           "payment required",
					"billingRequired": true,
				})
				return
			}
		}

		if event.ID == "" {
			event.ID = uuid.NewString()
		}
		if event.Status == "" {
			event.Status = models.StatusInquiry
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if _, err := db.Collection("individuals").InsertOne(ctx, event); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		recorder.Record(c.Request.Context(), actor, models.ActionCreate,
			fmt.Sprintf("Created new event: %s", eventLabel(event)))
		c.JSON(http.StatusCreated, event)
	}
}

// GetEvents lists events: individuals see their own, business and owner see
// everything.
func GetEvents(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/events"
		defer handlePanic(c, route)

		if err := ensureDBConnection(c.Request.Context(), db); err != nil {
			respondWithError(c, http.StatusServiceUnavailable, route, "database unavailable")
			return
		}

		events, err := loadEvents(c.Request.Context(), db)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		actor := middleware.Actor(c)
		if actor.Role == models.RoleIndividual {
			own := make([]models.Event, 0)
			for _, e := range events {
				if e.BelongsTo(actor.Email) {
					own = append(own, e)
				}
			}
			events = own
		}

		c.JSON(http.StatusOK, events)
	}
}

// UpdateEvent replaces an event by id. Individuals may only touch their own.
func UpdateEvent(db *mongo.Database, recorder *activity.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /api/events/:id"
		defer handlePanic(c, route)

		id := c.Param("id")

		var event models.Event
		if err := c.ShouldBindJSON(&event); err != nil {
			respondValidationError(c, err)
			return
		}
		event.ID = id
		if err := validateEvent(event); err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var existing models.Event
		if err := db.Collection("individuals").FindOne(ctx, bson.M{"id": id}).Decode(&existing); err != nil {
			respondWithError(c, http.StatusNotFound, route, "event not found")
			return
		}

		actor := middleware.Actor(c)
		if actor.Role == models.RoleIndividual && !existing.BelongsTo(actor.Email) {
			respondWithError(c, http.StatusForbidden, route, "forbidden")
			return
		}

		if _, err := db.Collection("individuals").ReplaceOne(ctx, bson.M{"id": id}, event); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		recorder.Record(c.Request.Context(), actor, models.ActionUpdate,
			fmt.Sprintf("Updated event details: %s", eventLabel(event)))
		c.JSON(http.StatusOK, event)
	}
}

// DeleteEvent removes an event. The confirmation step lives in the client;
// the API deletes unconditionally.
func DeleteEvent(db *mongo.Database, recorder *activity.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /api/events/:id"
		defer handlePanic(c, route)

		id := c.Param("id")

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var existing models.Event
		if err := db.Collection("individuals").FindOne(ctx, bson.M{"id": id}).Decode(&existing); err != nil {
			respondWithError(c, http.StatusNotFound, route, "event not found")
			return
		}

		actor := middleware.Actor(c)
		if actor.Role == models.RoleIndividual && !existing.BelongsTo(actor.Email) {
			respondWithError(c, http.StatusForbidden, route, "forbidden")
			return
		}

		if _, err := db.Collection("individuals").DeleteOne(ctx, bson.M{"id": id}); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		recorder.Record(c.Request.Context(), actor, models.ActionDelete,
			fmt.Sprintf("Deleted event: %s", eventLabel(existing)))
		c.JSON(http.StatusOK, gin.H{"deleted": id})
	}
}
