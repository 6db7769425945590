package middleware

import (
	"errors"
	"log"
	"net/http"
	"planova/internal/models"
	"planova/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ActiveUser loads the authenticated user and rejects disabled accounts. It
// must run after AuthMiddleware.
func ActiveUser(users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get(ContextUserID)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Unauthorized",
				"error":   "User ID not found in token",
			})
			return
		}

		user, err := users.GetUserByID(userID.(uint))
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"status":  "error",
					"message": "Could not validate credentials",
					"error":   "User no longer exists",
				})
				return
			}
			log.Printf("Failed to load user %v: %v", userID, err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Failed to load user",
				"error":   err.Error(),
			})
			return
		}

		if !user.IsActive {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Inactive user",
				"error":   "Account is disabled",
			})
			return
		}

		c.Set(ContextCurrentUser, user)
		c.Next()
	}
}

// RequirePremium admits premium and admin users only. It must run after
// ActiveUser.
func RequirePremium() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok || !user.IsPrivileged() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"status":  "error",
				"message": "Premium subscription required for this feature",
				"error":   "Forbidden",
			})
			return
		}
		c.Next()
	}
}

// CurrentUser returns the user stored by ActiveUser.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, exists := c.Get(ContextCurrentUser)
	if !exists {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}
