package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"

	"eventmanager/internal/activity"
	"eventmanager/internal/billing"
	"eventmanager/internal/identity"
	"eventmanager/internal/middleware"
	"eventmanager/internal/models"
	"eventmanager/internal/pricing"
	"eventmanager/internal/store"
)

// BillingDeps bundles what the payment flow touches. Handlers stay thin;
// the gate math lives in the billing package.
type BillingDeps struct {
	DB       *mongo.Database
	Users    *store.Users
	Provider billing.Provider
	Clock    billing.Clock

	TrialDays      int
	IndividualBase float64
	BusinessBase   float64
}

func (d BillingDeps) profile(c *gin.Context) (models.UserProfile, bool) {
	actor := middleware.Actor(c)
	stored, err := d.Users.FindByIdentifier(c.Request.Context(), identity.ParseIdentifier(actor.Email))
	if err != nil || stored == nil {
		return actor, false
	}
	return *stored, true
}

// GetQuote prices the caller's next payment in their account currency.
func GetQuote(deps BillingDeps) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/billing/quote"
		defer handlePanic(c, route)

		user, _ := deps.profile(c)
		quote := pricing.QuoteFor(user.Role, user.Country, deps.IndividualBase, deps.BusinessBase)
		c.JSON(http.StatusOK, quote)
	}
}

// GetBillingStatus reports where the caller stands against their gate:
// trial countdown for businesses, active event count for individuals.
func GetBillingStatus(deps BillingDeps) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/billing/status"
		defer handlePanic(c, route)

		user, _ := deps.profile(c)
		now := deps.Clock.Now()

		status := gin.H{
			"isPaid": user.IsPaid,
			"role":   user.Role,
		}

		switch user.Role {
		case models.RoleBusiness:
			status["daysRemaining"] = billing.DaysRemaining(user.CreatedAt, now, deps.TrialDays)
			status["billingRequired"] = billing.BusinessBillingRequired(user, now, deps.TrialDays)
		case models.RoleIndividual:
			events, err := loadEvents(c.Request.Context(), deps.DB)
			if err != nil {
				respondWithError(c, http.StatusInternalServerError, route, "db error")
				return
			}
			active := billing.CountActiveEvents(user.Email, events)
			status["activeEvents"] = active
			status["billingRequired"] = billing.IndividualBillingRequired(user, active)
		default:
			status["billingRequired"] = false
		}

		c.JSON(http.StatusOK, status)
	}
}

// Pay charges the caller's quoted amount, marks the account paid and writes
// exactly one ledger entry for the payment.
func Pay(deps BillingDeps, recorder *activity.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/billing/pay"
		defer handlePanic(c, route)

		// The owner account has no stored record and nothing to pay for.
		if middleware.Actor(c).Role == models.RoleOwner {
			respondWithError(c, http.StatusBadRequest, route, "owner accounts have no billing")
			return
		}

		user, found := deps.profile(c)
		if !found {
			respondWithError(c, http.StatusNotFound, route, "user not found")
			return
		}
		if user.IsPaid {
			respondWithError(c, http.StatusConflict, route, "account is already paid")
			return
		}

		quote := pricing.QuoteFor(user.Role, user.Country, deps.IndividualBase, deps.BusinessBase)

		if err := deps.Provider.Charge(c.Request.Context(), quote.Amount, quote.Currency); err != nil {
			respondWithError(c, http.StatusBadGateway, route, "payment failed")
			return
		}

		if err := deps.Users.MarkPaid(c.Request.Context(), user.Email); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		tx := models.Transaction{
			ID:          uuid.NewString(),
			UserID:      user.Email,
			UserName:    user.Name,
			UserRole:    user.Role,
			Amount:      quote.Amount,
			Currency:    quote.Currency,
			Timestamp:   deps.Clock.Now(),
			Description: billing.TransactionDescription(user.Role),
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()
		if _, err := deps.DB.Collection("transactions").InsertOne(ctx, tx); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		recorder.Record(c.Request.Context(), user, models.ActionPayment,
			fmt.Sprintf("Processed payment of %s %.2f", quote.Currency, quote.Amount))

		c.JSON(http.StatusOK, gin.H{
			"paid":        true,
			"transaction": tx,
		})
	}
}
