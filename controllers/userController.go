package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"stockmaster/models"
	"stockmaster/store"
)

// ListUsers returns all credential records with passwords stripped.
func ListUsers(c *gin.Context) {
	users := store.Users()
	out := make([]models.User, 0, len(users))
	for _, u := range users {
		out = append(out, u.Public())
	}
	c.JSON(http.StatusOK, out)
}

// CreateUser adds a credential record.
func CreateUser(c *gin.Context) {
	var req models.UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := store.AddUser(models.User{
		Name:     strings.TrimSpace(req.Name),
		Password: req.Password,
		Role:     req.Role,
	})
	if errors.Is(err, store.ErrUserExists) {
		c.JSON(http.StatusConflict, gin.H{"error": "User name already taken"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, user.Public())
}

// DeleteUser removes a credential record. Deleting the final remaining user is
// refused so the application stays reachable.
func DeleteUser(c *gin.Context) {
	err := store.DeleteUser(c.Param("id"))
	switch {
	case errors.Is(err, store.ErrLastUser):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot delete the last remaining user"})
	case errors.Is(err, store.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
	}
}
