package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"planova/internal/cache"
	"planova/internal/models"
	"planova/internal/repository"
	"planova/internal/workoutplan"

	"github.com/gin-gonic/gin"
)

type WorkoutController struct {
	profiles repository.UserProfileRepository
	workouts repository.WorkoutPlanRepository
	cache    cache.PlanCache
}

func NewWorkoutController(
	profiles repository.UserProfileRepository,
	workouts repository.WorkoutPlanRepository,
	planCache cache.PlanCache,
) *WorkoutController {
	return &WorkoutController{
		profiles: profiles,
		workouts: workouts,
		cache:    planCache,
	}
}

func (wc *WorkoutController) invalidate(c *gin.Context, userID uint) {
	if err := wc.cache.InvalidateUser(c.Request.Context(), userID); err != nil {
		log.Printf("Failed to invalidate plan cache for user %d: %v", userID, err)
	}
}

// loadPlan fetches a workout day owned by the user, writing 404/500 on failure.
func (wc *WorkoutController) loadPlan(c *gin.Context, id, userID uint) (*models.WorkoutPlan, bool) {
	plan, err := wc.workouts.FindByIDForUser(id, userID)
	if err != nil {
		if isNotFound(err) {
			respondError(c, http.StatusNotFound, "Workout plan not found", "No workout plan with this ID belongs to the user")
			return nil, false
		}
		respondError(c, http.StatusInternalServerError, "Failed to retrieve workout plan", err.Error())
		return nil, false
	}
	return plan, true
}

func (wc *WorkoutController) loadExercise(c *gin.Context, id, userID uint) (*models.Exercise, bool) {
	exercise, err := wc.workouts.FindExerciseForUser(id, userID)
	if err != nil {
		if isNotFound(err) {
			respondError(c, http.StatusNotFound, "Exercise not found", "No exercise with this ID belongs to the user")
			return nil, false
		}
		respondError(c, http.StatusInternalServerError, "Failed to retrieve exercise", err.Error())
		return nil, false
	}
	return exercise, true
}

// ListWorkoutPlans godoc
// @Summary List workout days
// @Description Return every stored workout day of the current user, ordered by day
// @Tags workout
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Workout plans retrieved successfully"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Router /workout/plan [get]
func (wc *WorkoutController) ListWorkoutPlans(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	plans, err := wc.workouts.FindAllByUserID(user.ID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to retrieve workout plans", err.Error())
		return
	}

	respondSuccess(c, http.StatusOK, "Workout plans retrieved successfully", plans)
}

// GenerateWorkoutPlan godoc
// @Summary Generate a weekly workout plan
// @Description Replace the user's week with the split for the given level, with notes tuned to the profile goal. Replacing an existing week requires premium.
// @Tags workout
// @Produce json
// @Security BearerAuth
// @Param level query string true "beginner, intermediate or advanced"
// @Success 201 {object} map[string]interface{} "Workout plan generated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid level or plan already exists"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 404 {object} map[string]interface{} "Profile not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /workout/plan/generate [post]
func (wc *WorkoutController) GenerateWorkoutPlan(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	level := models.Level(c.Query("level"))
	if level == "" {
		respondError(c, http.StatusBadRequest, "Level is required", "Use level=beginner, intermediate or advanced")
		return
	}
	if !level.Valid() {
		respondError(c, http.StatusBadRequest, "Invalid level", "Use level=beginner, intermediate or advanced")
		return
	}

	profile, err := wc.profiles.FindByUserID(user.ID)
	if err != nil {
		if isNotFound(err) {
			respondError(c, http.StatusNotFound, profileMissingMessage, "No profile exists for this user")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to retrieve profile", err.Error())
		return
	}

	existing, err := wc.workouts.FindAllByUserID(user.ID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to retrieve workout plans", err.Error())
		return
	}
	if len(existing) > 0 && !user.IsPrivileged() {
		respondError(c, http.StatusBadRequest,
			"Workout plan already exists. Premium subscription required to regenerate.",
			"Plan exists")
		return
	}

	plan, err := workoutplan.Generate(level, profile.Goal)
	if err != nil {
		if errors.Is(err, workoutplan.ErrInvalidGoal) || errors.Is(err, workoutplan.ErrInvalidLevel) {
			respondError(c, http.StatusBadRequest, "Invalid workout parameters", err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to generate workout plan", err.Error())
		return
	}

	rows := plan.Models(user.ID)
	if err := wc.workouts.ReplaceAll(user.ID, rows); err != nil {
		log.Printf("Failed to store workout plan for user %d: %v", user.ID, err)
		respondError(c, http.StatusInternalServerError, "Failed to store workout plan", err.Error())
		return
	}
	wc.invalidate(c, user.ID)

	ids := make([]uint, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ID)
	}

	respondSuccess(c, http.StatusCreated, "Workout plan generated successfully", gin.H{
		"workout_plan_ids": ids,
		"days":             plan.Days(),
	})
}

// GetWorkoutPlanByDay godoc
// @Summary Get the workout of a day
// @Tags workout
// @Produce json
// @Security BearerAuth
// @Param day path int true "Day of week (1-7)"
// @Success 200 {object} map[string]interface{} "Workout plan retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid day"
// @Failure 404 {object} map[string]interface{} "Workout plan not found"
// @Router /workout/plan/{day} [get]
func (wc *WorkoutController) GetWorkoutPlanByDay(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	day, ok := parseDay(c, c.Param("day"))
	if !ok {
		return
	}

	ctx := c.Request.Context()
	key := cache.WorkoutPlanKey(user.ID, day)

	var cached models.WorkoutPlan
	found, err := wc.cache.Get(ctx, key, &cached)
	if err != nil {
		log.Printf("Plan cache read failed for %s: %v", key, err)
	}
	if found {
		respondSuccess(c, http.StatusOK, "Workout plan retrieved successfully", cached)
		return
	}

	plan, err := wc.workouts.FindByUserIDAndDay(user.ID, day)
	if err != nil {
		if isNotFound(err) {
			respondError(c, http.StatusNotFound, "Workout plan not found", "No workout for this day")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to retrieve workout plan", err.Error())
		return
	}

	if err := wc.cache.Set(ctx, key, plan); err != nil {
		log.Printf("Plan cache write failed for %s: %v", key, err)
	}

	respondSuccess(c, http.StatusOK, "Workout plan retrieved successfully", plan)
}

// UpdateWorkoutPlan godoc
// @Summary Update a workout day
// @Description Change the day, muscle group, level or notes of a workout day. Premium only.
// @Tags workout
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Workout plan ID"
// @Param plan body models.WorkoutPlanUpdateRequest true "Fields to change"
// @Success 200 {object} map[string]interface{} "Workout plan updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 403 {object} map[string]interface{} "Premium subscription required"
// @Failure 404 {object} map[string]interface{} "Workout plan not found"
// @Failure 409 {object} map[string]interface{} "Workout day already scheduled"
// @Router /workout/plan/{id} [put]
func (wc *WorkoutController) UpdateWorkoutPlan(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req models.WorkoutPlanUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request data", err.Error())
		return
	}
	if req.Level != nil && !req.Level.Valid() {
		respondError(c, http.StatusBadRequest, "Invalid level", "Use beginner, intermediate or advanced")
		return
	}

	plan, ok := wc.loadPlan(c, id, user.ID)
	if !ok {
		return
	}

	if req.Day != nil {
		plan.Day = *req.Day
	}
	if req.MuscleGroup != nil {
		plan.MuscleGroup = *req.MuscleGroup
	}
	if req.Level != nil {
		plan.Level = *req.Level
	}
	if req.Notes != nil {
		plan.Notes = *req.Notes
	}

	if err := wc.workouts.Update(plan); err != nil {
		if errors.Is(err, repository.ErrDayTaken) {
			respondError(c, http.StatusConflict, "Workout day already scheduled",
				fmt.Sprintf("Another workout is already planned for day %d", plan.Day))
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to update workout plan", err.Error())
		return
	}
	wc.invalidate(c, user.ID)

	respondSuccess(c, http.StatusOK, "Workout plan updated successfully", plan)
}

// AddExercise godoc
// @Summary Add an exercise to a workout day
// @Description Premium only. Sets must be positive and rest must not be negative.
// @Tags workout
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Workout plan ID"
// @Param exercise body models.ExerciseCreateRequest true "Exercise"
// @Success 201 {object} map[string]interface{} "Exercise added successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 403 {object} map[string]interface{} "Premium subscription required"
// @Failure 404 {object} map[string]interface{} "Workout plan not found"
// @Router /workout/plan/{id}/exercise [post]
func (wc *WorkoutController) AddExercise(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req models.ExerciseCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request data", err.Error())
		return
	}

	plan, ok := wc.loadPlan(c, id, user.ID)
	if !ok {
		return
	}

	exercise := models.Exercise{
		WorkoutPlanID: plan.ID,
		Name:          req.Name,
		Sets:          req.Sets,
		Reps:          req.Reps,
		RestSeconds:   req.RestSeconds,
		Notes:         req.Notes,
	}
	if err := wc.workouts.AddExercise(&exercise); err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to add exercise", err.Error())
		return
	}
	wc.invalidate(c, user.ID)

	respondSuccess(c, http.StatusCreated, "Exercise added successfully", exercise)
}

// UpdateExercise godoc
// @Summary Update an exercise
// @Description Premium only.
// @Tags workout
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Exercise ID"
// @Param exercise body models.ExerciseUpdateRequest true "Fields to change"
// @Success 200 {object} map[string]interface{} "Exercise updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 403 {object} map[string]interface{} "Premium subscription required"
// @Failure 404 {object} map[string]interface{} "Exercise not found"
// @Router /workout/exercise/{id} [put]
func (wc *WorkoutController) UpdateExercise(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req models.ExerciseUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request data", err.Error())
		return
	}

	exercise, ok := wc.loadExercise(c, id, user.ID)
	if !ok {
		return
	}

	if req.Name != nil {
		exercise.Name = *req.Name
	}
	if req.Sets != nil {
		exercise.Sets = *req.Sets
	}
	if req.Reps != nil {
		exercise.Reps = *req.Reps
	}
	if req.RestSeconds != nil {
		exercise.RestSeconds = *req.RestSeconds
	}
	if req.Notes != nil {
		exercise.Notes = req.Notes
	}

	if err := wc.workouts.UpdateExercise(exercise); err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to update exercise", err.Error())
		return
	}
	wc.invalidate(c, user.ID)

	respondSuccess(c, http.StatusOK, "Exercise updated successfully", exercise)
}

// DeleteExercise godoc
// @Summary Delete an exercise
// @Description Premium only.
// @Tags workout
// @Produce json
// @Security BearerAuth
// @Param id path int true "Exercise ID"
// @Success 200 {object} map[string]interface{} "Exercise deleted successfully"
// @Failure 403 {object} map[string]interface{} "Premium subscription required"
// @Failure 404 {object} map[string]interface{} "Exercise not found"
// @Router /workout/exercise/{id} [delete]
func (wc *WorkoutController) DeleteExercise(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	exercise, ok := wc.loadExercise(c, id, user.ID)
	if !ok {
		return
	}

	if err := wc.workouts.DeleteExercise(exercise.ID); err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to delete exercise", err.Error())
		return
	}
	wc.invalidate(c, user.ID)

	respondSuccess(c, http.StatusOK, "Exercise deleted successfully", nil)
}
