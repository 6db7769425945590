package repository

import (
	"planova/internal/models"

	"gorm.io/gorm"
)

type MealPlanRepository interface {
	FindAllByUserID(userID uint) ([]models.MealPlan, error)
	FindByUserIDAndDay(userID uint, day int) (*models.MealPlan, error)
	ReplaceForDay(plan *models.MealPlan) error
	AddMeal(plan *models.MealPlan, meal *models.Meal) error
	FindMealForUser(mealID, userID uint) (*models.Meal, error)
	AddFoodItem(meal *models.Meal, item *models.FoodItem) error
	DeleteAllByUserID(userID uint) error
}

type mealPlanRepository struct {
	db *gorm.DB
}

func NewMealPlanRepository(db *gorm.DB) MealPlanRepository {
	return &mealPlanRepository{db: db}
}

func (r *mealPlanRepository) FindAllByUserID(userID uint) ([]models.MealPlan, error) {
	var plans []models.MealPlan
	err := r.db.
		Preload("Meals", func(db *gorm.DB) *gorm.DB { return db.Order("meals.id") }).
		Preload("Meals.FoodItems", func(db *gorm.DB) *gorm.DB { return db.Order("food_items.id") }).
		Where("user_id = ?", userID).
		Order("day").
		Find(&plans).Error
	return plans, err
}

func (r *mealPlanRepository) FindByUserIDAndDay(userID uint, day int) (*models.MealPlan, error) {
	var plan models.MealPlan
	err := r.db.
		Preload("Meals", func(db *gorm.DB) *gorm.DB { return db.Order("meals.id") }).
		Preload("Meals.FoodItems", func(db *gorm.DB) *gorm.DB { return db.Order("food_items.id") }).
		Where("user_id = ? AND day = ?", userID, day).
		First(&plan).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// ReplaceForDay drops the user's plan for plan.Day, if any, and stores plan
// with its meals and food items in a single transaction.
func (r *mealPlanRepository) ReplaceForDay(plan *models.MealPlan) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		planIDs := tx.Model(&models.MealPlan{}).Select("id").
			Where("user_id = ? AND day = ?", plan.UserID, plan.Day)
		if err := deleteMealPlans(tx, planIDs); err != nil {
			return err
		}
		return tx.Create(plan).Error
	})
}

func (r *mealPlanRepository) DeleteAllByUserID(userID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		planIDs := tx.Model(&models.MealPlan{}).Select("id").Where("user_id = ?", userID)
		return deleteMealPlans(tx, planIDs)
	})
}

func deleteMealPlans(tx *gorm.DB, planIDs *gorm.DB) error {
	mealIDs := tx.Model(&models.Meal{}).Select("id").Where("meal_plan_id IN (?)", planIDs)
	if err := tx.Where("meal_id IN (?)", mealIDs).Delete(&models.FoodItem{}).Error; err != nil {
		return err
	}
	if err := tx.Where("meal_plan_id IN (?)", planIDs).Delete(&models.Meal{}).Error; err != nil {
		return err
	}
	return tx.Where("id IN (?)", planIDs).Delete(&models.MealPlan{}).Error
}

// AddMeal stores a custom meal and adds its nutrients to the plan totals.
func (r *mealPlanRepository) AddMeal(plan *models.MealPlan, meal *models.Meal) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		meal.MealPlanID = plan.ID
		if err := tx.Create(meal).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.MealPlan{}).Where("id = ?", plan.ID).Updates(map[string]interface{}{
			"total_calories": gorm.Expr("total_calories + ?", meal.Calories),
			"total_protein":  gorm.Expr("total_protein + ?", meal.Protein),
			"total_carbs":    gorm.Expr("total_carbs + ?", meal.Carbs),
			"total_fat":      gorm.Expr("total_fat + ?", meal.Fat),
		}).Error; err != nil {
			return err
		}
		plan.AddMealTotals(meal)
		return nil
	})
}

func (r *mealPlanRepository) FindMealForUser(mealID, userID uint) (*models.Meal, error) {
	var meal models.Meal
	err := r.db.
		Joins("JOIN meal_plans ON meal_plans.id = meals.meal_plan_id").
		Where("meals.id = ? AND meal_plans.user_id = ?", mealID, userID).
		First(&meal).Error
	if err != nil {
		return nil, err
	}
	return &meal, nil
}

// AddFoodItem stores a food item and adds its nutrients to both the meal and
// the owning plan.
func (r *mealPlanRepository) AddFoodItem(meal *models.Meal, item *models.FoodItem) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		item.MealID = meal.ID
		if err := tx.Create(item).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Meal{}).Where("id = ?", meal.ID).Updates(map[string]interface{}{
			"calories": gorm.Expr("calories + ?", item.Calories),
			"protein":  gorm.Expr("protein + ?", item.Protein),
			"carbs":    gorm.Expr("carbs + ?", item.Carbs),
			"fat":      gorm.Expr("fat + ?", item.Fat),
		}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.MealPlan{}).Where("id = ?", meal.MealPlanID).Updates(map[string]interface{}{
			"total_calories": gorm.Expr("total_calories + ?", item.Calories),
			"total_protein":  gorm.Expr("total_protein + ?", item.Protein),
			"total_carbs":    gorm.Expr("total_carbs + ?", item.Carbs),
			"total_fat":      gorm.Expr("total_fat + ?", item.Fat),
		}).Error; err != nil {
			return err
		}
		meal.AddFoodTotals(item)
		return nil
	})
}
