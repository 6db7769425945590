package models

import (
	"time"
)

type MealPlan struct {
	ID            uint      `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt     time.Time `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt     time.Time `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	UserID        uint      `gorm:"not null;uniqueIndex:idx_meal_plans_user_day" json:"user_id" example:"1"`
	User          User      `gorm:"foreignKey:UserID" json:"-"`
	Day           int       `gorm:"not null;uniqueIndex:idx_meal_plans_user_day;check:day BETWEEN 1 AND 7" json:"day" example:"1"`
	TotalCalories float64   `json:"total_calories" example:"2759"`
	TotalProtein  float64   `json:"total_protein" example:"128"`
	TotalCarbs    float64   `json:"total_carbs" example:"345.7"`
	TotalFat      float64   `json:"total_fat" example:"76.6"`
	Meals         []Meal    `gorm:"foreignKey:MealPlanID" json:"meals"`
}

type Meal struct {
	ID          uint       `gorm:"primaryKey" json:"id" example:"1"`
	MealPlanID  uint       `gorm:"not null;index" json:"meal_plan_id" example:"1"`
	Name        string     `json:"name" example:"Breakfast"`
	Calories    float64    `json:"calories" example:"689.8"`
	Protein     float64    `json:"protein" example:"38.4"`
	Carbs       float64    `json:"carbs" example:"155.6"`
	Fat         float64    `json:"fat" example:"19.2"`
	Description string     `gorm:"type:text" json:"description" example:"Balanced breakfast with moderate carbs"`
	FoodItems   []FoodItem `gorm:"foreignKey:MealID" json:"food_items"`
}

type FoodItem struct {
	ID       uint    `gorm:"primaryKey" json:"id" example:"1"`
	MealID   uint    `gorm:"not null;index" json:"meal_id" example:"1"`
	Name     string  `json:"name" example:"Greek Yogurt"`
	Quantity float64 `json:"quantity" example:"384"`
	Unit     string  `gorm:"type:varchar(10)" json:"unit" example:"g"`
	Calories float64 `json:"calories" example:"227"`
	Protein  float64 `json:"protein" example:"38.4"`
	Carbs    float64 `json:"carbs" example:"13.8"`
	Fat      float64 `json:"fat" example:"1.5"`
}

// AddMealTotals bumps the plan totals by a custom meal's nutrients.
func (p *MealPlan) AddMealTotals(m *Meal) {
	p.TotalCalories += m.Calories
	p.TotalProtein += m.Protein
	p.TotalCarbs += m.Carbs
	p.TotalFat += m.Fat
}

// AddFoodTotals bumps the meal's nutrients by an added food item.
func (m *Meal) AddFoodTotals(f *FoodItem) {
	m.Calories += f.Calories
	m.Protein += f.Protein
	m.Carbs += f.Carbs
	m.Fat += f.Fat
	m.FoodItems = append(m.FoodItems, *f)
}
