package handlers

import (
	"context"
	"fmt"
	"net/http"
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

type inquiryRequest struct {
	BusinessID string `json:"businessId" binding:"required"`
	Message    string `json:"message" binding:"required"`
	EventDate  string `json:"eventDate"`
}

// newVendorInquiry builds the stored document, denormalizing the vendor's
// name and category so listings don't need a join.
func newVendorInquiry(actor models.UserProfile, business models.Business, req inquiryRequest, now time.Time) models.VendorInquiry {
	return models.VendorInquiry{
		ID:               uuid.NewString(),
		BusinessID:       business.ID,
		BusinessName:     business.Name,
		BusinessCategory: business.Category,
		IndividualID:     actor.Email,
		IndividualName:   actor.Name,
		Message:          req.Message,
		EventDate:        req.EventDate,
		Status:           models.InquirySent,
		DateSent:         now,
	}
}

// ownInquiryFilter scopes an inquiry lookup to the vendor it is addressed
// to, so one business can never touch another's inquiries.
func ownInquiryFilter(inquiryID, businessID string) bson.M {
	return bson.M{"id": inquiryID, "businessId": businessID}
}

// CreateInquiry sends a message from an individual to a vendor.
func CreateInquiry(db *mongo.Database, clock billing.Clock, recorder *activity.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/inquiries"
		defer handlePanic(c, route)

		var req inquiryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var business models.Business
		if err := db.Collection("businesses").FindOne(ctx, bson.M{"id": req.BusinessID}).Decode(&business); err != nil {
			if err == mongo.ErrNoDocuments {
				respondWithError(c, http.StatusNotFound, route, "business not found")
				return
			}
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		actor := middleware.Actor(c)
		inquiry := newVendorInquiry(actor, business, req, clock.Now())

		if _, err := db.Collection("inquiries").InsertOne(ctx, inquiry); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		recorder.Record(c.Request.Context(), actor, models.ActionInquiry,
			fmt.Sprintf("Sent inquiry to %s", business.Name))
		c.JSON(http.StatusCreated, inquiry)
	}
}

// GetInquiries lists inquiries for the caller: individuals see the ones they
// sent, businesses see the ones addressed to their profile, the owner sees
// everything.
func GetInquiries(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/inquiries"
		defer handlePanic(c, route)

		actor := middleware.Actor(c)

		filter := bson.M{}
		switch actor.Role {
		case models.RoleIndividual:
			filter["individualId"] = actor.Email
		case models.RoleBusiness:
			ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
			defer cancel()
			var business models.Business
			if err := db.Collection("businesses").FindOne(ctx, contactFilter(actor.Email)).Decode(&business); err != nil {
				// No profile means no inquiries, not an error.
				c.JSON(http.StatusOK, []models.VendorInquiry{})
				return
			}
			filter["businessId"] = business.ID
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		findOptions := options.Find().SetSort(bson.D{{Key: "dateSent", Value: -1}})
		cursor, err := db.Collection("inquiries").Find(ctx, filter, findOptions)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		defer cursor.Close(ctx)

		inquiries := make([]models.VendorInquiry, 0)
		if err := cursor.All(ctx, &inquiries); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "decode error")
			return
		}

		c.JSON(http.StatusOK, inquiries)
	}
}

// UpdateInquiryStatus lets a vendor mark one of their own inquiries read or
// replied. The update filter carries the caller's business id, so an inquiry
// addressed to another vendor simply does not match.
func UpdateInquiryStatus(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PATCH /api/inquiries/:id"
		defer handlePanic(c, route)

		var req struct {
			Status models.InquiryStatus `json:"status" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}
		if !req.Status.Valid() {
			respondWithError(c, http.StatusBadRequest, route, "invalid status")
			return
		}

		actor := middleware.Actor(c)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var business models.Business
		if err := db.Collection("businesses").FindOne(ctx, contactFilter(actor.Email)).Decode(&business); err != nil {
			respondWithError(c, http.StatusNotFound, route, "business profile not found")
			return
		}

		res, err := db.Collection("inquiries").UpdateOne(ctx,
			ownInquiryFilter(c.Param("id"), business.ID),
			bson.M{"$set": bson.M{"status": req.Status}},
		)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		if res.MatchedCount == 0 {
			respondWithError(c, http.StatusNotFound, route, "inquiry not found")
			return
		}

		c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "status": req.Status})
	}
}
