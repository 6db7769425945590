package controllers

import (
	"log"
	"net/http"
	"planova/internal/models"
	"planova/internal/repository"
	"planova/internal/services"
	"time"

	"github.com/gin-gonic/gin"
)

type UserProfileController struct {
	repo repository.UserProfileRepository
	now  func() time.Time
}

func NewUserProfileController(repo repository.UserProfileRepository) *UserProfileController {
	return &UserProfileController{
		repo: repo,
		now:  time.Now,
	}
}

// GetUserProfile godoc
// @Summary Get user profile
// @Description Retrieve the profile and computed nutrition targets of the current user
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Profile retrieved successfully"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 404 {object} map[string]interface{} "Profile not found"
// @Router /user/profile [get]
func (pc *UserProfileController) GetUserProfile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	profile, err := pc.repo.FindByUserID(user.ID)
	if err != nil {
		if isNotFound(err) {
			respondError(c, http.StatusNotFound, "Profile not found", "No profile exists for this user")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to retrieve profile", err.Error())
		return
	}

	respondSuccess(c, http.StatusOK, "Profile retrieved successfully", profile)
}

// CreateUserProfile godoc
// @Summary Create user profile
// @Description Create the profile of the current user and compute BMR, TDEE, daily calories and macros
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profile body models.ProfileCreateRequest true "Profile information"
// @Success 201 {object} map[string]interface{} "Profile created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data or profile already exists"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 422 {object} map[string]interface{} "Targets cannot be met"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /user/profile [post]
func (pc *UserProfileController) CreateUserProfile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req models.ProfileCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request data", err.Error())
		return
	}

	existing, err := pc.repo.FindByUserID(user.ID)
	if err != nil && !isNotFound(err) {
		respondError(c, http.StatusInternalServerError, "Failed to retrieve profile", err.Error())
		return
	}
	if existing != nil {
		respondError(c, http.StatusBadRequest, "Profile already exists", "Use PUT /user/profile to change it")
		return
	}

	dob, err := time.Parse(time.DateOnly, req.DateOfBirth)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request data", err.Error())
		return
	}

	profile := models.UserProfile{
		UserID:         user.ID,
		Gender:         req.Gender,
		DateOfBirth:    dob,
		HeightCm:       req.HeightCm,
		WeightKg:       req.WeightKg,
		ActivityLevel:  req.ActivityLevel,
		Goal:           req.Goal,
		BodyFatPercent: req.BodyFatPercent,
	}
	if err := services.ApplyTargets(&profile, pc.now()); err != nil {
		respondCalculationError(c, err)
		return
	}

	if err := pc.repo.Create(&profile); err != nil {
		log.Printf("Failed to create profile for user %d: %v", user.ID, err)
		respondError(c, http.StatusInternalServerError, "Failed to create profile", err.Error())
		return
	}

	respondSuccess(c, http.StatusCreated, "Profile created successfully", profile)
}

// UpdateUserProfile godoc
// @Summary Update user profile
// @Description Change any subset of the profile fields. Targets are recomputed from the merged profile. A null body_fat_percent clears it.
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profile body models.ProfileUpdateRequest true "Fields to change"
// @Success 200 {object} map[string]interface{} "Profile updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 404 {object} map[string]interface{} "Profile not found"
// @Failure 422 {object} map[string]interface{} "Targets cannot be met"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /user/profile [put]
func (pc *UserProfileController) UpdateUserProfile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req models.ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request data", err.Error())
		return
	}

	existing, err := pc.repo.FindByUserID(user.ID)
	if err != nil {
		if isNotFound(err) {
			respondError(c, http.StatusNotFound, "Profile not found", "No profile exists for this user")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to retrieve profile", err.Error())
		return
	}

	updated := *existing
	if req.Gender != nil {
		updated.Gender = *req.Gender
	}
	if req.DateOfBirth != nil {
		dob, err := time.Parse(time.DateOnly, *req.DateOfBirth)
		if err != nil {
			respondError(c, http.StatusBadRequest, "Invalid request data", err.Error())
			return
		}
		updated.DateOfBirth = dob
	}
	if req.HeightCm != nil {
		updated.HeightCm = *req.HeightCm
	}
	if req.WeightKg != nil {
		updated.WeightKg = *req.WeightKg
	}
	if req.ActivityLevel != nil {
		updated.ActivityLevel = *req.ActivityLevel
	}
	if req.Goal != nil {
		updated.Goal = *req.Goal
	}
	if req.BodyFatPercent.Set {
		updated.BodyFatPercent = req.BodyFatPercent.Value
	}

	if err := services.ApplyTargets(&updated, pc.now()); err != nil {
		respondCalculationError(c, err)
		return
	}

	if err := pc.repo.Update(&updated); err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to update profile", err.Error())
		return
	}

	respondSuccess(c, http.StatusOK, "Profile updated successfully", updated)
}

// DeleteUserProfile godoc
// @Summary Delete user profile
// @Description Delete the profile of the current user
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Profile deleted successfully"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 404 {object} map[string]interface{} "Profile not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /user/profile [delete]
func (pc *UserProfileController) DeleteUserProfile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	if err := pc.repo.DeleteByUserID(user.ID); err != nil {
		if isNotFound(err) {
			respondError(c, http.StatusNotFound, "Profile not found", "No profile exists for this user")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to delete profile", err.Error())
		return
	}

	respondSuccess(c, http.StatusOK, "Profile deleted successfully", nil)
}
