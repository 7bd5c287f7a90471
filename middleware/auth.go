package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stockmaster/models"
	"stockmaster/store"
)

// RequireLogin blocks requests until a user has logged in.
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := store.Session()
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Login required"})
			return
		}
		c.Set("user", user)
		c.Next()
	}
}

// RequireAdmin restricts a route group to administrators.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := store.Session()
		if !ok || user.Role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Administrator access required"})
			return
		}
		c.Next()
	}
}
