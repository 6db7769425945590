package controllers

import (
	"errors"
	"log"
	"net/http"
	"planova/internal/mealplan"
	"planova/internal/middleware"
	"planova/internal/models"
	"planova/internal/nutrition"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func respondError(c *gin.Context, status int, message, detail string) {
	c.JSON(status, gin.H{
		"status":  "error",
		"message": message,
		"error":   detail,
	})
}

func respondSuccess(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, gin.H{
		"status":  "success",
		"message": message,
		"data":    data,
	})
}

// currentUser writes a 401 when no authenticated user is on the context.
func currentUser(c *gin.Context) (*models.User, bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Unauthorized", "User ID not found in token")
		return nil, false
	}
	return user, true
}

// respondCalculationError maps calculator and generator failures onto HTTP.
func respondCalculationError(c *gin.Context, err error) {
	var validation *nutrition.ValidationError
	switch {
	case errors.As(err, &validation),
		errors.Is(err, nutrition.ErrInvalidGender),
		errors.Is(err, nutrition.ErrInvalidActivityLevel),
		errors.Is(err, nutrition.ErrInvalidGoal):
		respondError(c, http.StatusBadRequest, "Invalid profile data", err.Error())
	case errors.Is(err, nutrition.ErrMacroBudgetExceeded),
		errors.Is(err, mealplan.ErrInfeasibleTarget),
		errors.Is(err, mealplan.ErrInvalidTargets):
		respondError(c, http.StatusUnprocessableEntity, "Targets cannot be met", err.Error())
	default:
		log.Printf("Unexpected calculation error: %v", err)
		respondError(c, http.StatusInternalServerError, "Failed to calculate plan", err.Error())
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// parseDay reads a day of week (1-7) and writes a 400 when it is out of range.
func parseDay(c *gin.Context, raw string) (int, bool) {
	day, err := strconv.Atoi(raw)
	if err != nil || day < 1 || day > 7 {
		respondError(c, http.StatusBadRequest, "Day must be between 1 and 7", "Invalid day: "+raw)
		return 0, false
	}
	return day, true
}

func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		respondError(c, http.StatusBadRequest, "Invalid "+name, "ID must be a valid positive integer")
		return 0, false
	}
	return uint(id), true
}
