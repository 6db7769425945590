package services

import (
	"planova/internal/mealplan"
	"planova/internal/models"
	"planova/internal/nutrition"
	"time"
)

// CalculatorInput maps a stored profile onto the calculator's input.
func CalculatorInput(p *models.UserProfile) nutrition.Profile {
	return nutrition.Profile{
		Gender:         p.Gender,
		DateOfBirth:    p.DateOfBirth,
		HeightCm:       p.HeightCm,
		WeightKg:       p.WeightKg,
		ActivityLevel:  p.ActivityLevel,
		Goal:           p.Goal,
		BodyFatPercent: p.BodyFatPercent,
	}
}

// ApplyTargets recomputes every derived column of the profile. The profile is
// left untouched when the calculator rejects it.
func ApplyTargets(p *models.UserProfile, today time.Time) error {
	targets, err := nutrition.Calculate(CalculatorInput(p), today)
	if err != nil {
		return err
	}

	p.Age = targets.Age
	p.BMR = targets.BMR
	p.TDEE = targets.TDEE
	p.DailyCalories = targets.DailyCalories
	p.ProteinGram = targets.ProteinGram
	p.CarbGram = targets.CarbGram
	p.FatGram = targets.FatGram
	p.LeanMassKg = targets.LeanMassKg
	return nil
}

// StoredTargets reads the targets persisted on the profile.
func StoredTargets(p *models.UserProfile) nutrition.Targets {
	return nutrition.Targets{
		Age:           p.Age,
		BMR:           p.BMR,
		TDEE:          p.TDEE,
		ProteinGram:   p.ProteinGram,
		CarbGram:      p.CarbGram,
		FatGram:       p.FatGram,
		DailyCalories: p.DailyCalories,
		LeanMassKg:    p.LeanMassKg,
	}
}

func MealTargets(p *models.UserProfile) mealplan.Targets {
	return mealplan.Targets{
		DailyCalories: p.DailyCalories,
		ProteinGram:   p.ProteinGram,
		CarbGram:      p.CarbGram,
		FatGram:       p.FatGram,
	}
}
