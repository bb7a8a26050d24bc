package handlers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"eventmanager/internal/activity"
	"eventmanager/internal/middleware"
	"eventmanager/internal/models"
)

/*
GET /api/businesses
- Pagination is OPTIONAL
- without page + limit → ALL businesses
*/
func GetBusinesses(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/businesses"
		defer handlePanic(c, route)

		log.Printf(
			"[%s] hit page=%s limit=%s category=%s city=%s search=%s",
			route,
			c.Query("page"),
			c.Query("limit"),
			c.Query("category"),
			c.Query("city"),
			c.Query("search"),
		)

		if err := ensureDBConnection(c.Request.Context(), db); err != nil {
			respondWithError(c, http.StatusServiceUnavailable, route, "database unavailable")
			return
		}

		filter := bson.M{}

		if category := strings.TrimSpace(c.Query("category")); category != "" {
			filter["category"] = category
		}

		if city := strings.TrimSpace(c.Query("city")); city != "" {
			filter["city"] = bson.M{"$regex": "^" + regexp.QuoteMeta(city) + "$", "$options": "i"}
		}

		if search := strings.TrimSpace(c.Query("search")); search != "" {
			filter["name"] = bson.M{"$regex": regexp.QuoteMeta(search), "$options": "i"}
		}

		findOptions := options.Find().
			SetSort(bson.D{{Key: "name", Value: 1}})

		// Pagination applies only when both page + limit are present
		pageStr := c.Query("page")
		limitStr := c.Query("limit")

		if pageStr != "" && limitStr != "" {
			page, limit, err := parsePaginationParams(pageStr, limitStr)
			if err != nil {
				respondWithError(c, http.StatusBadRequest, route, "invalid pagination params")
				return
			}

			findOptions.
				SetSkip((page - 1) * limit).
				SetLimit(limit)
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		cursor, err := db.Collection("businesses").Find(ctx, filter, findOptions)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		defer cursor.Close(ctx)

		businesses := make([]models.Business, 0)
		if err := cursor.All(ctx, &businesses); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "decode error")
			return
		}

		log.Printf("[%s] returning %d businesses", route, len(businesses))
		c.JSON(http.StatusOK, businesses)
	}
}

// GetBusiness answers a single profile by id.
func GetBusiness(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/businesses/:id"
		defer handlePanic(c, route)

		id := c.Param("id")

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var business models.Business
		if err := db.Collection("businesses").FindOne(ctx, bson.M{"id": id}).Decode(&business); err != nil {
			if err == mongo.ErrNoDocuments {
				respondWithError(c, http.StatusNotFound, route, "business not found")
				return
			}
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		c.JSON(http.StatusOK, business)
	}
}

// GetMyBusiness resolves the caller's own profile by their login identifier.
func GetMyBusiness(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/businesses/me"
		defer handlePanic(c, route)

		actor := middleware.Actor(c)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var business models.Business
		err := db.Collection("businesses").FindOne(ctx, contactFilter(actor.Email)).Decode(&business)
		if err != nil {
			if err == mongo.ErrNoDocuments {
				respondWithError(c, http.StatusNotFound, route, "business profile not found")
				return
			}
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		c.JSON(http.StatusOK, business)
	}
}

// UpdateMyBusiness replaces the caller's profile. The id and contact fields
// come from the stored record, not the payload, so a vendor cannot move a
// profile to someone else.
func UpdateMyBusiness(db *mongo.Database, recorder *activity.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /api/businesses/me"
		defer handlePanic(c, route)

		var payload models.Business
		if err := c.ShouldBindJSON(&payload); err != nil {
			respondValidationError(c, err)
			return
		}

		actor := middleware.Actor(c)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var existing models.Business
		if err := db.Collection("businesses").FindOne(ctx, contactFilter(actor.Email)).Decode(&existing); err != nil {
			respondWithError(c, http.StatusNotFound, route, "business profile not found")
			return
		}

		payload.ID = existing.ID
		payload.Email = existing.Email
		payload.Phone = existing.Phone
		if payload.Category == "" {
			payload.Category = existing.Category
		}

		if _, err := db.Collection("businesses").ReplaceOne(ctx, bson.M{"id": existing.ID}, payload); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		recorder.Record(c.Request.Context(), actor, models.ActionUpdate,
			fmt.Sprintf("Updated business profile: %s", payload.Name))
		c.JSON(http.StatusOK, payload)
	}
}

// contactFilter matches a business by whichever contact field the login
// identifier represents.
func contactFilter(identifier string) bson.M {
	if strings.Contains(identifier, "@") {
		return bson.M{"email": bson.M{
			"$regex":   "^" + regexp.QuoteMeta(identifier) + "$",
			"$options": "i",
		}}
	}
	return bson.M{"phone": identifier}
}
