package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"eventmanager/internal/activity"
	"eventmanager/internal/assistant"
	"eventmanager/internal/billing"
	"eventmanager/internal/config"
	"eventmanager/internal/database"
	"eventmanager/internal/handlers"
	"eventmanager/internal/identity"
	"eventmanager/internal/middleware"
	"eventmanager/internal/models"
	"eventmanager/internal/store"
)

func main() {
	config.Load()

	client, err := database.Connect(config.AppEnv.MongoURI)
	if err != nil {
		log.Fatal(err)
	}

	db := client.Database(config.AppEnv.DBName)

	log.Println("MongoDB connected to:", db.Name())

	if err := database.EnsureUserIndexes(db); err != nil {
		log.Printf("user index warning: %v", err)
	}
	if err := database.EnsureEventIndexes(db); err != nil {
		log.Printf("event index warning: %v", err)
	}
	if err := database.EnsureBusinessIndexes(db); err != nil {
		log.Printf("business index warning: %v", err)
	}
	if err := database.EnsureActivityIndexes(db); err != nil {
		log.Printf("activity index warning: %v", err)
	}

	store.Seed(db)

	users := store.NewUsers(db)
	businesses := store.NewBusinesses(db)
	activities := store.NewActivities(db)

	var redisClient *redis.Client
	if config.AppEnv.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: config.AppEnv.RedisAddr})
		log.Println("activity fan-out enabled via", config.AppEnv.RedisAddr)
	}

	clock := billing.SystemClock{}
	recorder := activity.NewRecorder(activities, clock, redisClient)

	resolver := &identity.Resolver{
		Users:      users,
		Businesses: businesses,
		Activity:   recorder,
		Clock:      clock,
		AdminEmail: config.AppEnv.AdminEmail,
	}

	billingDeps := handlers.BillingDeps{
		DB:             db,
		Users:          users,
		Provider:       billing.SimulatedProvider{Delay: config.AppEnv.PaymentDelay},
		Clock:          clock,
		TrialDays:      config.AppEnv.TrialDays,
		IndividualBase: config.AppEnv.IndividualBaseFee,
		BusinessBase:   config.AppEnv.BusinessBaseFee,
	}

	generator := assistant.NewGeminiClient(
		config.AppEnv.GenAIBaseURL,
		config.AppEnv.GenAIModel,
		config.AppEnv.GenAIKey,
	)

	secret := config.AppEnv.JWTSecret
	ttl := config.AppEnv.AccessTokenTTL

	r := gin.Default()

	r.GET("/api/catalog", handlers.GetCatalog())
	r.POST("/api/login", handlers.Login(resolver, secret, ttl))
	r.POST("/api/signup", handlers.Signup(resolver, secret, ttl))

	anyRole := middleware.AuthGuard(secret,
		models.RoleIndividual, models.RoleBusiness, models.RoleOwner)

	authed := r.Group("/api")
	authed.Use(anyRole)
	{
		authed.GET("/me", handlers.GetMe(users))

		authed.GET("/events", handlers.GetEvents(db))
		authed.POST("/events", handlers.CreateEvent(db, users, recorder))
		authed.PUT("/events/:id", handlers.UpdateEvent(db, recorder))
		authed.DELETE("/events/:id", handlers.DeleteEvent(db, recorder))

		authed.GET("/events/:id/gallery", handlers.GetEventGallery(db))
		authed.PUT("/events/:id/gallery", handlers.UpdateEventGallery(db))

		authed.GET("/venues/available", handlers.AvailableVenues(db))

		authed.GET("/businesses", handlers.GetBusinesses(db))
		authed.GET("/businesses/:id", handlers.GetBusiness(db))

		authed.GET("/inquiries", handlers.GetInquiries(db))

		authed.GET("/billing/quote", handlers.GetQuote(billingDeps))
		authed.GET("/billing/status", handlers.GetBillingStatus(billingDeps))
		authed.POST("/billing/pay", handlers.Pay(billingDeps, recorder))

		authed.POST("/suggestions", handlers.CreateSuggestion(db, clock, recorder))
		authed.GET("/activities/mine", handlers.GetMyActivities(db))

		authed.POST("/assistant/email", handlers.DraftClientEmail(db, generator))
		authed.POST("/assistant/vendor-email", handlers.DraftVendorEmail(db, generator))
		authed.POST("/assistant/ideas", handlers.SuggestEventIdeas(db, generator))
		authed.POST("/assistant/upsells", handlers.SuggestUpsells(db, generator))
		authed.POST("/assistant/find-vendors", handlers.FindVendors(generator))
	}

	individual := r.Group("/api")
	individual.Use(middleware.AuthGuard(secret, models.RoleIndividual))
	{
		individual.POST("/inquiries", handlers.CreateInquiry(db, clock, recorder))
	}

	business := r.Group("/api")
	business.Use(middleware.AuthGuard(secret, models.RoleBusiness))
	{
		business.GET("/businesses/me", handlers.GetMyBusiness(db))
		business.PUT("/businesses/me", handlers.UpdateMyBusiness(db, recorder))
		business.PATCH("/inquiries/:id", handlers.UpdateInquiryStatus(db))
	}

	owner := r.Group("/api")
	owner.Use(middleware.AuthGuard(secret, models.RoleOwner))
	{
		owner.GET("/dashboard", handlers.GetDashboard(db))
		owner.GET("/transactions", handlers.GetTransactions(db))
		owner.GET("/activities", handlers.GetActivities(db))
		owner.GET("/suggestions", handlers.GetSuggestions(db))
		owner.PATCH("/suggestions/:id", handlers.UpdateSuggestionStatus(db))
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}
