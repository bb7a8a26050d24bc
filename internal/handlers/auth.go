package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"eventmanager/internal/identity"
	"eventmanager/internal/middleware"
	"eventmanager/internal/models"
	"eventmanager/internal/store"
)

type LoginRequest struct {
	Role       models.Role `json:"role" binding:"required"`
	Identifier string      `json:"identifier" binding:"required"`
}

type SignupRequest struct {
	Role         models.Role `json:"role" binding:"required"`
	Name         string      `json:"name" binding:"required"`
	Identifier   string      `json:"identifier" binding:"required"`
	Country      string      `json:"country" binding:"required"`
	BusinessType string      `json:"businessType"`
}

// Login resolves an identifier and answers {token, user}, the shape the
// remote-auth variant of the frontend expects.
func Login(resolver *identity.Resolver, jwtSecret string, accessTTL time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/login"
		defer handlePanic(c, route)

		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		user, err := resolver.Login(c.Request.Context(), req.Role, req.Identifier)
		if err != nil {
			respondAuthError(c, route, err)
			return
		}

		token, err := issueToken(user, jwtSecret, accessTTL)
		if err != nil {
			log.Printf("[%s] token generation failed: %v", route, err)
			respondWithError(c, http.StatusInternalServerError, route, "token generation failed")
			return
		}

		log.Printf("[%s] login succeeded role=%s", route, user.Role)
		c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
	}
}

// Signup creates an account and immediately authenticates it.
func Signup(resolver *identity.Resolver, jwtSecret string, accessTTL time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/signup"
		defer handlePanic(c, route)

		var req SignupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		user, err := resolver.Signup(c.Request.Context(), req.Role, req.Name, req.Identifier, req.Country, req.BusinessType)
		if err != nil {
			respondAuthError(c, route, err)
			return
		}

		token, err := issueToken(user, jwtSecret, accessTTL)
		if err != nil {
			log.Printf("[%s] token generation failed: %v", route, err)
			respondWithError(c, http.StatusInternalServerError, route, "token generation failed")
			return
		}

		log.Printf("[%s] signup succeeded role=%s country=%s", route, user.Role, user.Country)
		c.JSON(http.StatusCreated, gin.H{"token": token, "user": user})
	}
}

// GetMe returns the stored profile for the authenticated account. The owner
// has no stored record and is reconstructed from its claims.
func GetMe(users *store.Users) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/me"
		defer handlePanic(c, route)

		actor := middleware.Actor(c)
		if actor.Role == models.RoleOwner {
			actor.IsPaid = true
			actor.Country = "United States"
			actor.Currency = "USD"
			c.JSON(http.StatusOK, gin.H{"user": actor})
			return
		}

		user, err := users.FindByIdentifier(c.Request.Context(), identity.ParseIdentifier(actor.Email))
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		if user == nil {
			respondWithError(c, http.StatusNotFound, route, "user not found")
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": *user})
	}
}

func respondAuthError(c *gin.Context, route string, err error) {
	switch {
	case errors.Is(err, identity.ErrUserNotFound):
		respondWithError(c, http.StatusUnauthorized, route, err.Error())
	case errors.Is(err, identity.ErrRoleMismatch):
		respondWithError(c, http.StatusForbidden, route, err.Error())
	case errors.Is(err, identity.ErrAlreadyRegistered):
		respondWithError(c, http.StatusConflict, route, err.Error())
	case errors.Is(err, identity.ErrInvalidRole):
		respondWithError(c, http.StatusBadRequest, route, err.Error())
	default:
		log.Printf("[%s] resolver error: %v", route, err)
		respondWithError(c, http.StatusInternalServerError, route, "db error")
	}
}

func issueToken(user models.UserProfile, secret string, accessTTL time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":  user.Email,
		"role": string(user.Role),
		"name": user.Name,
		"exp":  time.Now().Add(accessTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
