package controllers

import (
	"log"
	"net/http"
	"planova/internal/cache"
	"planova/internal/models"
	"planova/internal/repository"
	"planova/internal/utils"
	"strings"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	repo  repository.UserRepository
	cache cache.PlanCache
}

func NewUserController(repo repository.UserRepository, planCache cache.PlanCache) *UserController {
	return &UserController{repo: repo, cache: planCache}
}

// GetCurrentUser godoc
// @Summary Get the current user
// @Description Retrieve the account behind the bearer token
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "User retrieved successfully"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Router /users/me [get]
func (uc *UserController) GetCurrentUser(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	respondSuccess(c, http.StatusOK, "User retrieved successfully", user)
}

// UpdateCurrentUser godoc
// @Summary Update the current user
// @Description Change the email and/or password of the current account
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.UserUpdateRequest true "Fields to change"
// @Success 200 {object} map[string]interface{} "User updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data or email taken"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /users/me [put]
func (uc *UserController) UpdateCurrentUser(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req models.UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request data", err.Error())
		return
	}

	changes := map[string]interface{}{}
	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if email != user.Email {
			existing, err := uc.repo.GetUserByEmail(email)
			if err != nil && !isNotFound(err) {
				respondError(c, http.StatusInternalServerError, "Failed to update user", err.Error())
				return
			}
			if existing != nil {
				respondError(c, http.StatusBadRequest, "Email already registered", "An account with this email already exists")
				return
			}
			changes["email"] = email
		}
	}

	if req.Password != nil {
		hashed, err := utils.HashPassword(*req.Password)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "Failed to update user", err.Error())
			return
		}
		changes["password"] = hashed
	}

	if len(changes) > 0 {
		if err := uc.repo.PatchUser(user.ID, changes); err != nil {
			respondError(c, http.StatusInternalServerError, "Failed to update user", "Database update failed")
			return
		}
		if email, ok := changes["email"].(string); ok {
			user.Email = email
		}
		if hashed, ok := changes["password"].(string); ok {
			user.Password = hashed
		}
	}

	respondSuccess(c, http.StatusOK, "User updated successfully", user)
}

// DeleteCurrentUser godoc
// @Summary Delete the current account
// @Description Remove the account together with its profile, meal plans, workout plans and subscription
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "User deleted successfully"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /users/me [delete]
func (uc *UserController) DeleteCurrentUser(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	if err := uc.repo.DeleteUser(user.ID); err != nil {
		if isNotFound(err) {
			respondError(c, http.StatusNotFound, "User not found", "The account no longer exists")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to delete user", err.Error())
		return
	}
	if err := uc.cache.InvalidateUser(c.Request.Context(), user.ID); err != nil {
		log.Printf("Failed to invalidate plan cache for user %d: %v", user.ID, err)
	}

	log.Printf("Deleted account %d", user.ID)
	respondSuccess(c, http.StatusOK, "User deleted successfully", nil)
}
