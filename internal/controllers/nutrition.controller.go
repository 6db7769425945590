package controllers

import (
	"log"
	"net/http"
	"planova/internal/cache"
	"planova/internal/mealplan"
	"planova/internal/models"
	"planova/internal/repository"
	"planova/internal/services"
	"strings"

	"github.com/gin-gonic/gin"
)

const profileMissingMessage = "Profile not found, please create a profile first"

type NutritionController struct {
	profiles  repository.UserProfileRepository
	mealPlans repository.MealPlanRepository
	cache     cache.PlanCache
}

func NewNutritionController(
	profiles repository.UserProfileRepository,
	mealPlans repository.MealPlanRepository,
	planCache cache.PlanCache,
) *NutritionController {
	return &NutritionController{
		profiles:  profiles,
		mealPlans: mealPlans,
		cache:     planCache,
	}
}

// loadProfile writes a 404 or 500 when the user's profile cannot be read.
func (nc *NutritionController) loadProfile(c *gin.Context, userID uint) (*models.UserProfile, bool) {
	profile, err := nc.profiles.FindByUserID(userID)
	if err != nil {
		if isNotFound(err) {
			respondError(c, http.StatusNotFound, profileMissingMessage, "No profile exists for this user")
			return nil, false
		}
		respondError(c, http.StatusInternalServerError, "Failed to retrieve profile", err.Error())
		return nil, false
	}
	return profile, true
}

func (nc *NutritionController) invalidate(c *gin.Context, userID uint) {
	if err := nc.cache.InvalidateUser(c.Request.Context(), userID); err != nil {
		log.Printf("Failed to invalidate plan cache for user %d: %v", userID, err)
	}
}

// GetNutritionPlan godoc
// @Summary Get nutrition targets
// @Description Return the BMR, TDEE, daily calories and macro targets stored on the profile
// @Tags nutrition
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Nutrition plan retrieved successfully"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 404 {object} map[string]interface{} "Profile not found"
// @Router /nutrition/plan [get]
func (nc *NutritionController) GetNutritionPlan(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	profile, ok := nc.loadProfile(c, user.ID)
	if !ok {
		return
	}

	respondSuccess(c, http.StatusOK, "Nutrition plan retrieved successfully", services.StoredTargets(profile))
}

// ListMealPlans godoc
// @Summary List meal plans
// @Description Return every stored meal plan of the current user, ordered by day
// @Tags nutrition
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Meal plans retrieved successfully"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /nutrition/meal-plan [get]
func (nc *NutritionController) ListMealPlans(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	plans, err := nc.mealPlans.FindAllByUserID(user.ID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to retrieve meal plans", err.Error())
		return
	}

	respondSuccess(c, http.StatusOK, "Meal plans retrieved successfully", plans)
}

// GenerateMealPlan godoc
// @Summary Generate a meal plan
// @Description Build and store the meal plan of one day from the profile targets. Replacing an existing day requires premium.
// @Tags nutrition
// @Produce json
// @Security BearerAuth
// @Param day query int true "Day of week (1-7)"
// @Success 201 {object} map[string]interface{} "Meal plan generated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid day or plan already exists"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 404 {object} map[string]interface{} "Profile not found"
// @Failure 422 {object} map[string]interface{} "Targets cannot be met"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /nutrition/meal-plan/generate [post]
func (nc *NutritionController) GenerateMealPlan(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	day, ok := parseDay(c, c.Query("day"))
	if !ok {
		return
	}
	profile, ok := nc.loadProfile(c, user.ID)
	if !ok {
		return
	}

	existing, err := nc.mealPlans.FindByUserIDAndDay(user.ID, day)
	if err != nil && !isNotFound(err) {
		respondError(c, http.StatusInternalServerError, "Failed to retrieve meal plan", err.Error())
		return
	}
	if existing != nil && !user.IsPrivileged() {
		respondError(c, http.StatusBadRequest,
			"Meal plan already exists for this day. Premium subscription required to regenerate.",
			"Plan exists")
		return
	}

	plan, err := mealplan.Generate(services.MealTargets(profile), profile.Goal)
	if err != nil {
		respondCalculationError(c, err)
		return
	}

	record := plan.Model(user.ID, day)
	if err := nc.mealPlans.ReplaceForDay(record); err != nil {
		log.Printf("Failed to store meal plan for user %d day %d: %v", user.ID, day, err)
		respondError(c, http.StatusInternalServerError, "Failed to store meal plan", err.Error())
		return
	}
	nc.invalidate(c, user.ID)

	respondSuccess(c, http.StatusCreated, "Meal plan generated successfully", record)
}

// PreviewMealPlan godoc
// @Summary Preview a meal plan
// @Description Build a meal plan from the profile targets without storing it
// @Tags nutrition
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Meal plan preview"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 404 {object} map[string]interface{} "Profile not found"
// @Failure 422 {object} map[string]interface{} "Targets cannot be met"
// @Router /nutrition/meal-plan/preview [get]
func (nc *NutritionController) PreviewMealPlan(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	profile, ok := nc.loadProfile(c, user.ID)
	if !ok {
		return
	}

	plan, err := mealplan.Generate(services.MealTargets(profile), profile.Goal)
	if err != nil {
		respondCalculationError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Meal plan preview", plan)
}

// GetMealPlanByDay godoc
// @Summary Get the meal plan of a day
// @Tags nutrition
// @Produce json
// @Security BearerAuth
// @Param day path int true "Day of week (1-7)"
// @Success 200 {object} map[string]interface{} "Meal plan retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid day"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 404 {object} map[string]interface{} "Meal plan not found"
// @Router /nutrition/meal-plan/{day} [get]
func (nc *NutritionController) GetMealPlanByDay(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	day, ok := parseDay(c, c.Param("day"))
	if !ok {
		return
	}

	ctx := c.Request.Context()
	key := cache.MealPlanKey(user.ID, day)

	var cached models.MealPlan
	found, err := nc.cache.Get(ctx, key, &cached)
	if err != nil {
		log.Printf("Plan cache read failed for %s: %v", key, err)
	}
	if found {
		respondSuccess(c, http.StatusOK, "Meal plan retrieved successfully", cached)
		return
	}

	plan, err := nc.mealPlans.FindByUserIDAndDay(user.ID, day)
	if err != nil {
		if isNotFound(err) {
			respondError(c, http.StatusNotFound, "Meal plan not found", "No meal plan for this day")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to retrieve meal plan", err.Error())
		return
	}

	if err := nc.cache.Set(ctx, key, plan); err != nil {
		log.Printf("Plan cache write failed for %s: %v", key, err)
	}

	respondSuccess(c, http.StatusOK, "Meal plan retrieved successfully", plan)
}

// AddMeal godoc
// @Summary Add a custom meal
// @Description Append a meal to the stored plan of a day and add its nutrients to the plan totals. Premium only.
// @Tags nutrition
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param day path int true "Day of week (1-7)"
// @Param meal body models.MealCreateRequest true "Meal"
// @Success 201 {object} map[string]interface{} "Meal added successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 403 {object} map[string]interface{} "Premium subscription required"
// @Failure 404 {object} map[string]interface{} "Meal plan not found"
// @Router /nutrition/meal-plan/{day}/meal [post]
func (nc *NutritionController) AddMeal(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	day, ok := parseDay(c, c.Param("day"))
	if !ok {
		return
	}

	var req models.MealCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request data", err.Error())
		return
	}

	plan, err := nc.mealPlans.FindByUserIDAndDay(user.ID, day)
	if err != nil {
		if isNotFound(err) {
			respondError(c, http.StatusNotFound, "Meal plan not found", "Generate a meal plan for this day first")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to retrieve meal plan", err.Error())
		return
	}

	meal := models.Meal{
		Name:        req.Name,
		Calories:    req.Calories,
		Protein:     req.Protein,
		Carbs:       req.Carbs,
		Fat:         req.Fat,
		Description: req.Description,
		FoodItems:   []models.FoodItem{},
	}
	if err := nc.mealPlans.AddMeal(plan, &meal); err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to add meal", err.Error())
		return
	}
	nc.invalidate(c, user.ID)

	respondSuccess(c, http.StatusCreated, "Meal added successfully", meal)
}

// AddFoodItem godoc
// @Summary Add a food item to a meal
// @Description Add a catalog food (by food_id) or a custom food to a meal. Meal and plan totals grow by its nutrients. Premium only.
// @Tags nutrition
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param meal_id path int true "Meal ID"
// @Param food body models.FoodItemCreateRequest true "Food item"
// @Success 201 {object} map[string]interface{} "Food item added successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 403 {object} map[string]interface{} "Premium subscription required"
// @Failure 404 {object} map[string]interface{} "Meal not found"
// @Router /nutrition/meal/{meal_id}/food [post]
func (nc *NutritionController) AddFoodItem(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	mealID, ok := parseID(c, "meal_id")
	if !ok {
		return
	}

	var req models.FoodItemCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request data", err.Error())
		return
	}

	item, ok := foodItemFromRequest(c, req)
	if !ok {
		return
	}

	meal, err := nc.mealPlans.FindMealForUser(mealID, user.ID)
	if err != nil {
		if isNotFound(err) {
			respondError(c, http.StatusNotFound, "Meal not found", "No meal with this ID belongs to the user")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to retrieve meal", err.Error())
		return
	}

	if err := nc.mealPlans.AddFoodItem(meal, &item); err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to add food item", err.Error())
		return
	}
	nc.invalidate(c, user.ID)

	respondSuccess(c, http.StatusCreated, "Food item added successfully", gin.H{
		"food_item": item,
		"meal":      meal,
	})
}

func foodItemFromRequest(c *gin.Context, req models.FoodItemCreateRequest) (models.FoodItem, bool) {
	if req.FoodID != "" {
		food, found := mealplan.LookupFood(req.FoodID)
		if !found {
			respondError(c, http.StatusBadRequest, "Unknown food", "No catalog food with id "+req.FoodID)
			return models.FoodItem{}, false
		}
		scaled := food.Scaled(req.Quantity)
		return models.FoodItem{
			Name:     scaled.Name,
			Quantity: scaled.Quantity,
			Unit:     scaled.Unit,
			Calories: scaled.Calories,
			Protein:  scaled.Protein,
			Carbs:    scaled.Carbs,
			Fat:      scaled.Fat,
		}, true
	}

	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Unit) == "" {
		respondError(c, http.StatusBadRequest, "Invalid request data", "name and unit are required without food_id")
		return models.FoodItem{}, false
	}
	return models.FoodItem{
		Name:     req.Name,
		Quantity: req.Quantity,
		Unit:     req.Unit,
		Calories: req.Calories,
		Protein:  req.Protein,
		Carbs:    req.Carbs,
		Fat:      req.Fat,
	}, true
}

// ListFoods godoc
// @Summary List the food catalog
// @Description Return the built-in foods, optionally filtered by category. Nutrients are per 100 units.
// @Tags nutrition
// @Produce json
// @Security BearerAuth
// @Param category query string false "protein, carb, fat, vegetable or fruit"
// @Success 200 {object} map[string]interface{} "Foods retrieved successfully"
// @Router /nutrition/foods [get]
func (nc *NutritionController) ListFoods(c *gin.Context) {
	var foods []mealplan.Food
	if category := c.Query("category"); category != "" {
		foods = mealplan.FoodsIn(mealplan.Category(category))
	} else {
		foods = mealplan.Foods()
	}
	if foods == nil {
		foods = []mealplan.Food{}
	}

	respondSuccess(c, http.StatusOK, "Foods retrieved successfully", foods)
}
