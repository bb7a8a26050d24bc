package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"eventmanager/internal/models"
)

const (
	ctxIdentifier = "authIdentifier"
	ctxRole       = "authRole"
	ctxName       = "authName"
)

// AuthGuard validates the bearer token and, when roles are given, requires
// the token's role to be one of them.
func AuthGuard(secret string, allowedRoles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimSpace(c.GetHeader("Authorization"))
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			return
		}

		parts := strings.Split(raw, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		token, err := jwt.Parse(parts[1], func(t *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		sub, _ := claims["sub"].(string)
		roleStr, _ := claims["role"].(string)
		name, _ := claims["name"].(string)
		role := models.Role(roleStr)

		if sub == "" || !role.Valid() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		if len(allowedRoles) > 0 {
			match := false
			for _, r := range allowedRoles {
				if role == r {
					match = true
					break
				}
			}
			if !match {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
				return
			}
		}

		WithActor(c, sub, role, name)
		c.Next()
	}
}

// WithActor stores the authenticated identity on the request context.
func WithActor(c *gin.Context, identifier string, role models.Role, name string) {
	c.Set(ctxIdentifier, identifier)
	c.Set(ctxRole, role)
	c.Set(ctxName, name)
}

// Actor rebuilds a minimal profile from the token claims, enough to
// attribute activity entries. Handlers needing fresh billing state reload
// the stored profile instead.
func Actor(c *gin.Context) models.UserProfile {
	identifier, _ := c.Get(ctxIdentifier)
	role, _ := c.Get(ctxRole)
	name, _ := c.Get(ctxName)

	u := models.UserProfile{}
	if s, ok := identifier.(string); ok {
		u.Email = s
	}
	if r, ok := role.(models.Role); ok {
		u.Role = r
	}
	if s, ok := name.(string); ok {
		u.Name = s
	}
	return u
}
