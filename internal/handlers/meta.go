package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"eventmanager/internal/booking"
	"eventmanager/internal/models"
	"eventmanager/internal/pricing"
)

// GetCatalog serves the static form vocabularies the clients render from:
// time slots, event types, vendor categories, service options, the pricing
// countries and the location tree. One payload, no auth.
func GetCatalog() gin.HandlerFunc {
	eventTypes := []string{
		models.EventWedding,
		models.EventBirthday,
		models.EventCorporate,
		models.EventAnniversary,
		models.EventEngagement,
		models.EventBabyShower,
		models.EventHoliday,
		models.EventConference,
		models.EventCustom,
		models.EventOther,
	}

	return func(c *gin.Context) {
		const route = "GET /api/catalog"
		defer handlePanic(c, route)

		c.JSON(http.StatusOK, gin.H{
			"timeSlots":             booking.TimeSlots,
			"eventTypes":            eventTypes,
			"businessCategories":    models.BusinessCategories,
			"serviceTimeCategories": models.ServiceTimeCategories,
			"commonServiceOptions":  models.CommonServiceOptions,
			"countries":             pricing.Countries,
			"locations":             models.Locations,
		})
	}
}
