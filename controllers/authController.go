package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stockmaster/models"
	"stockmaster/store"
)

// Login checks the submitted credentials against the stored user records and
// persists the session on success.
func Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, ok := store.Authenticate(req.Name, req.Password, req.Role)
	if !ok {
		// deliberately vague: does not distinguish unknown user from wrong password
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication failed. Check details."})
		return
	}

	if err := store.SetSession(user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, user.Public())
}

// Logout clears the persisted session.
func Logout(c *gin.Context) {
	if err := store.ClearSession(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// CurrentSession returns the logged-in user.
func CurrentSession(c *gin.Context) {
	user, ok := store.Session()
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not logged in"})
		return
	}
	c.JSON(http.StatusOK, user.Public())
}
