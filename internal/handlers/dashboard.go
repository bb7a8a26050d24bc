package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"eventmanager/internal/models"
)

// GetDashboard aggregates the owner overview: account and event counts,
// events broken down by status, revenue per currency and the latest
// activity entries.
func GetDashboard(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/dashboard"
		defer handlePanic(c, route)

		if err := ensureDBConnection(c.Request.Context(), db); err != nil {
			respondWithError(c, http.StatusServiceUnavailable, route, "database unavailable")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		userCount, err := db.Collection("users").CountDocuments(ctx, bson.M{})
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		businessCount, err := db.Collection("businesses").CountDocuments(ctx, bson.M{})
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		events, err := loadEvents(ctx, db)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		eventsByStatus := make(map[models.BookingStatus]int)
		for _, e := range events {
			eventsByStatus[e.Status]++
		}

		transactions, err := loadTransactions(ctx, db)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		revenueByCurrency := make(map[string]float64)
		for _, tx := range transactions {
			revenueByCurrency[tx.Currency] += tx.Amount
		}

		recent, err := listActivities(ctx, db, bson.M{}, 10)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"userCount":         userCount,
			"businessCount":     businessCount,
			"eventCount":        len(events),
			"eventsByStatus":    eventsByStatus,
			"transactionCount":  len(transactions),
			"revenueByCurrency": revenueByCurrency,
			"recentActivity":    recent,
		})
	}
}

// GetTransactions lists the payment ledger newest-first. Owner only.
func GetTransactions(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/transactions"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		transactions, err := loadTransactions(ctx, db)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		c.JSON(http.StatusOK, transactions)
	}
}

func loadTransactions(ctx context.Context, db *mongo.Database) ([]models.Transaction, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	cursor, err := db.Collection("transactions").Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	transactions := make([]models.Transaction, 0)
	if err := cursor.All(ctx, &transactions); err != nil {
		return nil, err
	}
	return transactions, nil
}
