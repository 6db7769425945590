package mealplan

import "planova/internal/models"

type Slot string

const (
	SlotBreakfast Slot = "breakfast"
	SlotLunch     Slot = "lunch"
	SlotDinner    Slot = "dinner"
	SlotSnack     Slot = "snack"
)

var slots = [...]Slot{SlotBreakfast, SlotLunch, SlotDinner, SlotSnack}

// Slots lists the meals of a day in serving order. The result is a copy.
func Slots() []Slot {
	out := slots
	return out[:]
}

// MealTemplate gives the share of each daily target assigned to one meal.
type MealTemplate struct {
	Name           string  `json:"name"`
	ProteinPercent float64 `json:"protein_percent"`
	CarbPercent    float64 `json:"carb_percent"`
	FatPercent     float64 `json:"fat_percent"`
	CaloriePercent float64 `json:"calorie_percent"`
	Description    string  `json:"description"`
}

type templateKey struct {
	slot Slot
	goal models.Goal
}

var templates = map[templateKey]MealTemplate{
	{SlotBreakfast, models.GoalLoseFat}:    {"Breakfast", 0.35, 0.40, 0.25, 0.25, "High protein breakfast to keep you full"},
	{SlotBreakfast, models.GoalMaintain}:   {"Breakfast", 0.30, 0.45, 0.25, 0.25, "Balanced breakfast with moderate carbs"},
	{SlotBreakfast, models.GoalGainMuscle}: {"Breakfast", 0.30, 0.50, 0.20, 0.25, "Carb-rich breakfast to fuel morning workouts"},

	{SlotLunch, models.GoalLoseFat}:    {"Lunch", 0.40, 0.30, 0.30, 0.35, "Protein-focused lunch with moderate fats"},
	{SlotLunch, models.GoalMaintain}:   {"Lunch", 0.35, 0.40, 0.25, 0.30, "Balanced lunch with lean protein and complex carbs"},
	{SlotLunch, models.GoalGainMuscle}: {"Lunch", 0.35, 0.45, 0.20, 0.30, "High-calorie lunch with focus on protein and carbs"},

	{SlotDinner, models.GoalLoseFat}:    {"Dinner", 0.45, 0.25, 0.30, 0.30, "Protein-rich dinner with lower carbs"},
	{SlotDinner, models.GoalMaintain}:   {"Dinner", 0.40, 0.35, 0.25, 0.30, "Balanced dinner with moderate carbs"},
	{SlotDinner, models.GoalGainMuscle}: {"Dinner", 0.40, 0.40, 0.20, 0.30, "Protein and carb-rich dinner to support muscle growth"},

	{SlotSnack, models.GoalLoseFat}:    {"Snack", 0.40, 0.20, 0.40, 0.10, "Protein-rich snack to maintain satiety"},
	{SlotSnack, models.GoalMaintain}:   {"Snack", 0.30, 0.40, 0.30, 0.15, "Balanced snack with moderate carbs"},
	{SlotSnack, models.GoalGainMuscle}: {"Snack", 0.25, 0.50, 0.25, 0.15, "Carb-rich snack to fuel workouts and recovery"},
}

// Template returns the template of a slot for a goal. Unknown combinations
// fall back to the maintain snack.
func Template(slot Slot, goal models.Goal) MealTemplate {
	if t, ok := templates[templateKey{slot, goal}]; ok {
		return t
	}
	return templates[templateKey{SlotSnack, models.GoalMaintain}]
}
