// Package nutrition derives metabolic and macronutrient targets from a
// biometric profile. Every function here is pure and safe for concurrent use.
package nutrition

import (
	"fmt"
	"math"
	"planova/internal/models"
	"time"
)

// Profile is the biometric input of the calculator.
type Profile struct {
	Gender         models.Gender
	DateOfBirth    time.Time
	HeightCm       float64
	WeightKg       float64
	ActivityLevel  models.ActivityLevel
	Goal           models.Goal
	BodyFatPercent *float64
}

// MacroSplit holds the goal-adjusted daily intake.
type MacroSplit struct {
	ProteinGram   float64 `json:"protein_gram"`
	CarbGram      float64 `json:"carb_gram"`
	FatGram       float64 `json:"fat_gram"`
	DailyCalories float64 `json:"daily_calories"`
}

// Targets is the full result of Calculate.
type Targets struct {
	Age           int      `json:"age"`
	BMR           float64  `json:"bmr"`
	TDEE          float64  `json:"tdee"`
	ProteinGram   float64  `json:"protein_gram"`
	CarbGram      float64  `json:"carb_gram"`
	FatGram       float64  `json:"fat_gram"`
	DailyCalories float64  `json:"daily_calories"`
	LeanMassKg    *float64 `json:"lean_mass_kg,omitempty"`
}

const (
	fatCalorieShare = 0.25
	kcalPerGramFat  = 9
	kcalPerGramProt = 4
	kcalPerGramCarb = 4
)

// Validate checks the profile against the accepted ranges.
func (p Profile) Validate(today time.Time) error {
	if !p.Gender.Valid() {
		return &ValidationError{Field: "gender", Reason: fmt.Sprintf("%q is not one of male, female, other", p.Gender)}
	}
	if !p.ActivityLevel.Valid() {
		return &ValidationError{Field: "activity_level", Reason: fmt.Sprintf("%q is not one of sedentary, light, moderate, intense", p.ActivityLevel)}
	}
	if !p.Goal.Valid() {
		return &ValidationError{Field: "goal", Reason: fmt.Sprintf("%q is not one of lose_fat, maintain, gain_muscle", p.Goal)}
	}
	if p.HeightCm <= 0 || math.IsNaN(p.HeightCm) || math.IsInf(p.HeightCm, 0) {
		return &ValidationError{Field: "height_cm", Reason: "must be greater than 0"}
	}
	if p.WeightKg <= 0 || math.IsNaN(p.WeightKg) || math.IsInf(p.WeightKg, 0) {
		return &ValidationError{Field: "weight_kg", Reason: "must be greater than 0"}
	}
	if p.BodyFatPercent != nil && (*p.BodyFatPercent < 0 || *p.BodyFatPercent > 100) {
		return &ValidationError{Field: "body_fat_percent", Reason: "must be between 0 and 100"}
	}
	if p.DateOfBirth.IsZero() {
		return &ValidationError{Field: "date_of_birth", Reason: "is required"}
	}
	if p.DateOfBirth.After(today) {
		return &ValidationError{Field: "date_of_birth", Reason: "cannot be in the future"}
	}
	return nil
}

// Age returns the whole years elapsed between birth and today.
func Age(birth, today time.Time) int {
	age := today.Year() - birth.Year()
	if today.Month() < birth.Month() || (today.Month() == birth.Month() && today.Day() < birth.Day()) {
		age--
	}
	return age
}

// BMR uses the Mifflin-St Jeor equation. Gender "other" falls back to the
// female constant.
func BMR(gender models.Gender, weightKg, heightCm float64, age int) (float64, error) {
	base := 10*weightKg + 6.25*heightCm - 5*float64(age)
	switch gender {
	case models.GenderMale:
		return base + 5, nil
	case models.GenderFemale, models.GenderOther:
		return base - 161, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidGender, gender)
	}
}

// Multiplier returns the TDEE factor of an activity level.
func Multiplier(level models.ActivityLevel) (float64, error) {
	switch level {
	case models.ActivitySedentary:
		return 1.2, nil
	case models.ActivityLight:
		return 1.375, nil
	case models.ActivityModerate:
		return 1.55, nil
	case models.ActivityIntense:
		return 1.725, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidActivityLevel, level)
	}
}

// TDEE scales bmr by the multiplier of the activity level. The result is
// not rounded.
func TDEE(bmr float64, level models.ActivityLevel) (float64, error) {
	m, err := Multiplier(level)
	if err != nil {
		return 0, err
	}
	return bmr * m, nil
}

func calorieFactor(goal models.Goal) (float64, error) {
	switch goal {
	case models.GoalLoseFat:
		return 0.8, nil
	case models.GoalMaintain:
		return 1.0, nil
	case models.GoalGainMuscle:
		return 1.1, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidGoal, goal)
	}
}

// proteinPerKg is grams of protein per kilogram of body weight.
func proteinPerKg(goal models.Goal) (float64, error) {
	switch goal {
	case models.GoalLoseFat:
		return 1.8, nil
	case models.GoalMaintain:
		return 1.6, nil
	case models.GoalGainMuscle:
		return 2.0, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidGoal, goal)
	}
}

// Macros splits the goal-adjusted calorie budget into protein, fat and
// carbohydrates. A negative carbohydrate remainder is reported as a
// *MacroBudgetError instead of being returned.
func Macros(weightKg, tdee float64, goal models.Goal) (MacroSplit, error) {
	factor, err := calorieFactor(goal)
	if err != nil {
		return MacroSplit{}, err
	}
	perKg, err := proteinPerKg(goal)
	if err != nil {
		return MacroSplit{}, err
	}

	daily := tdee * factor
	protein := weightKg * perKg
	fat := daily * fatCalorieShare / kcalPerGramFat
	carb := (daily - protein*kcalPerGramProt - fat*kcalPerGramFat) / kcalPerGramCarb

	if carb < 0 {
		return MacroSplit{}, &MacroBudgetError{
			DailyCalories: math.Round(daily),
			ProteinGram:   round1(protein),
			FatGram:       round1(fat),
			CarbGram:      round1(carb),
		}
	}

	return MacroSplit{
		ProteinGram:   round1(protein),
		CarbGram:      round1(carb),
		FatGram:       round1(fat),
		DailyCalories: math.Round(daily),
	}, nil
}

// LeanMassKg returns nil when no body fat percentage is known.
func LeanMassKg(weightKg float64, bodyFatPercent *float64) *float64 {
	if bodyFatPercent == nil {
		return nil
	}
	lean := round1(weightKg * (1 - *bodyFatPercent/100))
	return &lean
}

// Calculate runs the whole pipeline: age, BMR, TDEE, macros and lean mass.
func Calculate(p Profile, today time.Time) (Targets, error) {
	if err := p.Validate(today); err != nil {
		return Targets{}, err
	}

	age := Age(p.DateOfBirth, today)
	bmr, err := BMR(p.Gender, p.WeightKg, p.HeightCm, age)
	if err != nil {
		return Targets{}, err
	}
	tdee, err := TDEE(bmr, p.ActivityLevel)
	if err != nil {
		return Targets{}, err
	}
	macros, err := Macros(p.WeightKg, tdee, p.Goal)
	if err != nil {
		return Targets{}, err
	}

	return Targets{
		Age:           age,
		BMR:           math.Round(bmr),
		TDEE:          math.Round(tdee),
		ProteinGram:   macros.ProteinGram,
		CarbGram:      macros.CarbGram,
		FatGram:       macros.FatGram,
		DailyCalories: macros.DailyCalories,
		LeanMassKg:    LeanMassKg(p.WeightKg, p.BodyFatPercent),
	}, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
