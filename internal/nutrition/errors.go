package nutrition

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidGender        = errors.New("invalid gender")
	ErrInvalidActivityLevel = errors.New("invalid activity level")
	ErrInvalidGoal          = errors.New("invalid goal")
	ErrMacroBudgetExceeded  = errors.New("macro budget exceeded")
)

// ValidationError rejects a malformed or out-of-range profile field before any
// calculation runs.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// MacroBudgetError is returned when protein and fat targets alone exceed the
// daily calorie budget, leaving a negative carbohydrate target.
type MacroBudgetError struct {
	DailyCalories float64
	ProteinGram   float64
	FatGram       float64
	CarbGram      float64
}

func (e *MacroBudgetError) Error() string {
	return fmt.Sprintf("macro budget exceeded: %.0f kcal cannot cover %.1f g protein and %.1f g fat (carbs would be %.1f g)",
		e.DailyCalories, e.ProteinGram, e.FatGram, e.CarbGram)
}

func (e *MacroBudgetError) Unwrap() error {
	return ErrMacroBudgetExceeded
}
