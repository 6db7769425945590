// Package mealplan builds a deterministic one-day meal plan from daily macro
// targets, a goal and the built-in food catalog.
package mealplan

import (
	"errors"
	"fmt"
	"hash/fnv"
	"math"
	"planova/internal/models"
)

var (
	ErrInfeasibleTarget = errors.New("infeasible target")
	ErrInvalidTargets   = errors.New("invalid targets")
)

// InfeasibleTargetError is returned when the food chosen for a macro target
// carries none of that macro, so no quantity can meet it.
type InfeasibleTargetError struct {
	Meal     string
	Food     string
	Nutrient string
}

func (e *InfeasibleTargetError) Error() string {
	return fmt.Sprintf("%s: %s has no %s to cover the target", e.Meal, e.Food, e.Nutrient)
}

func (e *InfeasibleTargetError) Unwrap() error {
	return ErrInfeasibleTarget
}

// Targets are the daily intake goals a plan is built against.
type Targets struct {
	DailyCalories float64 `json:"daily_calories"`
	ProteinGram   float64 `json:"protein_gram"`
	CarbGram      float64 `json:"carb_gram"`
	FatGram       float64 `json:"fat_gram"`
}

type FoodItem struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

type Meal struct {
	Name        string     `json:"name"`
	Calories    float64    `json:"calories"`
	Protein     float64    `json:"protein"`
	Carbs       float64    `json:"carbs"`
	Fat         float64    `json:"fat"`
	Description string     `json:"description"`
	FoodItems   []FoodItem `json:"food_items"`
}

type Plan struct {
	TotalCalories float64 `json:"total_calories"`
	TotalProtein  float64 `json:"total_protein"`
	TotalCarbs    float64 `json:"total_carbs"`
	TotalFat      float64 `json:"total_fat"`
	Meals         []Meal  `json:"meals"`
}

type nutrient int

const (
	nutrientProtein nutrient = iota
	nutrientCarbs
	nutrientFat
)

func (n nutrient) String() string {
	switch n {
	case nutrientProtein:
		return "protein"
	case nutrientCarbs:
		return "carbs"
	default:
		return "fat"
	}
}

func (n nutrient) of(f Food) float64 {
	switch n {
	case nutrientProtein:
		return f.Protein
	case nutrientCarbs:
		return f.Carbs
	default:
		return f.Fat
	}
}

// Generate produces breakfast, lunch, dinner and snack for the targets. The
// result depends only on its inputs. Plan totals echo the targets rather than
// summing rounded meal values.
func Generate(targets Targets, goal models.Goal) (Plan, error) {
	if err := targets.validate(); err != nil {
		return Plan{}, err
	}

	plan := Plan{
		TotalCalories: targets.DailyCalories,
		TotalProtein:  targets.ProteinGram,
		TotalCarbs:    targets.CarbGram,
		TotalFat:      targets.FatGram,
		Meals:         make([]Meal, 0, len(slots)),
	}

	for _, slot := range slots {
		meal, err := buildMeal(slot, Template(slot, goal), targets)
		if err != nil {
			return Plan{}, err
		}
		plan.Meals = append(plan.Meals, meal)
	}

	return plan, nil
}

func (t Targets) validate() error {
	for name, v := range map[string]float64{
		"daily_calories": t.DailyCalories,
		"protein_gram":   t.ProteinGram,
		"carb_gram":      t.CarbGram,
		"fat_gram":       t.FatGram,
	} {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s is %v", ErrInvalidTargets, name, v)
		}
	}
	return nil
}

func buildMeal(slot Slot, tmpl MealTemplate, targets Targets) (Meal, error) {
	protein := targets.ProteinGram * tmpl.ProteinPercent
	carbs := targets.CarbGram * tmpl.CarbPercent
	fat := targets.FatGram * tmpl.FatPercent

	meal := Meal{
		Name:        tmpl.Name,
		Calories:    math.Round(targets.DailyCalories * tmpl.CaloriePercent),
		Protein:     round1(protein),
		Carbs:       round1(carbs),
		Fat:         round1(fat),
		Description: tmpl.Description,
	}

	portions := []struct {
		category Category
		key      string
		driver   nutrient
		target   float64
	}{
		{CategoryProtein, tmpl.Name, nutrientProtein, protein},
		{CategoryCarb, tmpl.Name + "carb", nutrientCarbs, carbs},
		{CategoryFat, tmpl.Name + "fat", nutrientFat, fat},
	}

	for _, p := range portions {
		item, err := portion(tmpl.Name, pick(p.category, p.key), p.driver, p.target)
		if err != nil {
			return Meal{}, err
		}
		meal.FoodItems = append(meal.FoodItems, item)
	}

	switch slot {
	case SlotLunch, SlotDinner:
		meal.FoodItems = append(meal.FoodItems, serving(pick(CategoryVegetable, tmpl.Name+"veg")))
	case SlotBreakfast, SlotSnack:
		meal.FoodItems = append(meal.FoodItems, serving(pick(CategoryFruit, tmpl.Name+"fruit")))
	}

	return meal, nil
}

// pick indexes the category's foods with the 32-bit FNV-1a hash of key.
func pick(c Category, key string) Food {
	foods := FoodsIn(c)
	h := fnv.New32a()
	h.Write([]byte(key))
	return foods[h.Sum32()%uint32(len(foods))]
}

// portion sizes food so that its driver nutrient meets target.
func portion(meal string, food Food, driver nutrient, target float64) (FoodItem, error) {
	per100 := driver.of(food)
	if per100 <= 0 {
		return FoodItem{}, &InfeasibleTargetError{Meal: meal, Food: food.Name, Nutrient: driver.String()}
	}

	amount := target / per100 * servingSize
	scale := amount / servingSize

	return FoodItem{
		Name:     food.Name,
		Quantity: math.Round(amount),
		Unit:     food.Unit,
		Calories: math.Round(scale * food.Calories),
		Protein:  round1(scale * food.Protein),
		Carbs:    round1(scale * food.Carbs),
		Fat:      round1(scale * food.Fat),
	}, nil
}

func serving(food Food) FoodItem {
	return FoodItem{
		Name:     food.Name,
		Quantity: servingSize,
		Unit:     food.Unit,
		Calories: food.Calories,
		Protein:  food.Protein,
		Carbs:    food.Carbs,
		Fat:      food.Fat,
	}
}

// Scaled returns quantity units of the food with nutrients scaled from the
// per-100 catalog values.
func (f Food) Scaled(quantity float64) FoodItem {
	scale := quantity / servingSize
	return FoodItem{
		Name:     f.Name,
		Quantity: quantity,
		Unit:     f.Unit,
		Calories: math.Round(scale * f.Calories),
		Protein:  round1(scale * f.Protein),
		Carbs:    round1(scale * f.Carbs),
		Fat:      round1(scale * f.Fat),
	}
}

// Model converts the plan into its persisted form for a user and day.
func (p Plan) Model(userID uint, day int) *models.MealPlan {
	mp := &models.MealPlan{
		UserID:        userID,
		Day:           day,
		TotalCalories: p.TotalCalories,
		TotalProtein:  p.TotalProtein,
		TotalCarbs:    p.TotalCarbs,
		TotalFat:      p.TotalFat,
		Meals:         make([]models.Meal, 0, len(p.Meals)),
	}
	for _, m := range p.Meals {
		meal := models.Meal{
			Name:        m.Name,
			Calories:    m.Calories,
			Protein:     m.Protein,
			Carbs:       m.Carbs,
			Fat:         m.Fat,
			Description: m.Description,
			FoodItems:   make([]models.FoodItem, 0, len(m.FoodItems)),
		}
		for _, f := range m.FoodItems {
			meal.FoodItems = append(meal.FoodItems, models.FoodItem{
				Name:     f.Name,
				Quantity: f.Quantity,
				Unit:     f.Unit,
				Calories: f.Calories,
				Protein:  f.Protein,
				Carbs:    f.Carbs,
				Fat:      f.Fat,
			})
		}
		mp.Meals = append(mp.Meals, meal)
	}
	return mp
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
