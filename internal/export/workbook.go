// Package export renders a user's targets and stored plans as an XLSX workbook.
package export

import (
	"fmt"
	"planova/internal/models"

	"github.com/xuri/excelize/v2"
)

const (
	SheetTargets  = "Targets"
	SheetMeals    = "Meal Plans"
	SheetWorkouts = "Workouts"

	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var dayNames = [...]string{"", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

func dayName(day int) string {
	if day < 1 || day >= len(dayNames) {
		return fmt.Sprintf("Day %d", day)
	}
	return dayNames[day]
}

// PlansWorkbook builds one sheet for the profile targets, one row per food
// item of every meal plan and one row per exercise of every workout day.
// A nil profile leaves the targets sheet with headers only.
func PlansWorkbook(profile *models.UserProfile, mealPlans []models.MealPlan, workouts []models.WorkoutPlan) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", SheetTargets); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(SheetMeals); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(SheetWorkouts); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"2E75B6"}, Pattern: 1},
	})
	if err != nil {
		return nil, err
	}

	if err := writeTargets(f, headerStyle, profile); err != nil {
		return nil, fmt.Errorf("targets sheet: %w", err)
	}
	if err := writeMeals(f, headerStyle, mealPlans); err != nil {
		return nil, fmt.Errorf("meal plan sheet: %w", err)
	}
	if err := writeWorkouts(f, headerStyle, workouts); err != nil {
		return nil, fmt.Errorf("workout sheet: %w", err)
	}

	f.SetActiveSheet(0)
	return f, nil
}

func writeHeader(f *excelize.File, sheet string, style int, headers []string) error {
	row := make([]interface{}, len(headers))
	for i, h := range headers {
		row[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &row); err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "A1", last, style)
}

func writeRow(f *excelize.File, sheet string, rowNum int, values ...interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func writeTargets(f *excelize.File, style int, p *models.UserProfile) error {
	if err := writeHeader(f, SheetTargets, style, []string{"Metric", "Value"}); err != nil {
		return err
	}
	if err := f.SetColWidth(SheetTargets, "A", "A", 22); err != nil {
		return err
	}
	if p == nil {
		return nil
	}

	rows := [][]interface{}{
		{"Age", p.Age},
		{"BMR (kcal)", p.BMR},
		{"TDEE (kcal)", p.TDEE},
		{"Daily calories (kcal)", p.DailyCalories},
		{"Protein (g)", p.ProteinGram},
		{"Carbs (g)", p.CarbGram},
		{"Fat (g)", p.FatGram},
	}
	if p.LeanMassKg != nil {
		rows = append(rows, []interface{}{"Lean mass (kg)", *p.LeanMassKg})
	}
	for i, r := range rows {
		if err := writeRow(f, SheetTargets, i+2, r...); err != nil {
			return err
		}
	}
	return nil
}

func writeMeals(f *excelize.File, style int, plans []models.MealPlan) error {
	headers := []string{"Day", "Meal", "Food", "Quantity", "Unit", "Calories", "Protein", "Carbs", "Fat"}
	if err := writeHeader(f, SheetMeals, style, headers); err != nil {
		return err
	}
	if err := f.SetColWidth(SheetMeals, "B", "C", 24); err != nil {
		return err
	}

	row := 2
	for _, plan := range plans {
		for _, meal := range plan.Meals {
			if len(meal.FoodItems) == 0 {
				err := writeRow(f, SheetMeals, row, dayName(plan.Day), meal.Name, "", "", "",
					meal.Calories, meal.Protein, meal.Carbs, meal.Fat)
				if err != nil {
					return err
				}
				row++
				continue
			}
			for _, item := range meal.FoodItems {
				err := writeRow(f, SheetMeals, row, dayName(plan.Day), meal.Name, item.Name, item.Quantity, item.Unit,
					item.Calories, item.Protein, item.Carbs, item.Fat)
				if err != nil {
					return err
				}
				row++
			}
		}
		err := writeRow(f, SheetMeals, row, dayName(plan.Day), "Total", "", "", "",
			plan.TotalCalories, plan.TotalProtein, plan.TotalCarbs, plan.TotalFat)
		if err != nil {
			return err
		}
		row++
	}
	return nil
}

func writeWorkouts(f *excelize.File, style int, plans []models.WorkoutPlan) error {
	headers := []string{"Day", "Muscle Group", "Level", "Exercise", "Sets", "Reps", "Rest (s)", "Notes"}
	if err := writeHeader(f, SheetWorkouts, style, headers); err != nil {
		return err
	}
	if err := f.SetColWidth(SheetWorkouts, "B", "D", 22); err != nil {
		return err
	}

	row := 2
	for _, plan := range plans {
		for _, e := range plan.Exercises {
			notes := ""
			if e.Notes != nil {
				notes = *e.Notes
			}
			err := writeRow(f, SheetWorkouts, row, dayName(plan.Day), plan.MuscleGroup, string(plan.Level),
				e.Name, e.Sets, e.Reps, e.RestSeconds, notes)
			if err != nil {
				return err
			}
			row++
		}
	}
	return nil
}

// Filename is the attachment name offered to the client.
func Filename(userID uint) string {
	return fmt.Sprintf("planova-plans-%d.xlsx", userID)
}
