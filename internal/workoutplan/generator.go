// Package workoutplan assigns a weekly training split and exercise
// prescriptions from an experience level and a goal.
package workoutplan

import (
	"errors"
	"fmt"
	"planova/internal/models"
	"sort"
)

var (
	ErrInvalidLevel = errors.New("invalid level")
	ErrInvalidGoal  = errors.New("invalid goal")
)

const (
	hiitSuffix     = ". Add 15-20 min HIIT at the end"
	overloadSuffix = ". Focus on progressive overload and time under tension"
)

// Session is one training day of a split.
type Session struct {
	Day         int          `json:"day"`
	MuscleGroup string       `json:"muscle_group"`
	Level       models.Level `json:"level"`
	Notes       string       `json:"notes"`
}

type Day struct {
	Workout   Session    `json:"workout"`
	Exercises []Exercise `json:"exercises"`
}

// Plan maps day numbers (1-7) to their workout. Rest days are absent.
type Plan map[int]Day

// Days returns the training days in ascending order.
func (p Plan) Days() []int {
	days := make([]int, 0, len(p))
	for d := range p {
		days = append(days, d)
	}
	sort.Ints(days)
	return days
}

var splits = map[models.Level][]Session{
	models.LevelBeginner: {
		{Day: 1, MuscleGroup: "Full Body A", Level: models.LevelBeginner, Notes: "Focus on form and technique"},
		{Day: 3, MuscleGroup: "Full Body B", Level: models.LevelBeginner, Notes: "Slightly higher intensity than day 1"},
		{Day: 5, MuscleGroup: "Full Body C", Level: models.LevelBeginner, Notes: "Focus on progressive overload"},
	},
	models.LevelIntermediate: {
		{Day: 1, MuscleGroup: "Upper Body A", Level: models.LevelIntermediate, Notes: "Focus on pushing movements"},
		{Day: 2, MuscleGroup: "Lower Body A", Level: models.LevelIntermediate, Notes: "Focus on quad-dominant exercises"},
		{Day: 4, MuscleGroup: "Upper Body B", Level: models.LevelIntermediate, Notes: "Focus on pulling movements"},
		{Day: 5, MuscleGroup: "Lower Body B", Level: models.LevelIntermediate, Notes: "Focus on hip-dominant exercises"},
	},
	models.LevelAdvanced: {
		{Day: 1, MuscleGroup: "Chest & Triceps", Level: models.LevelAdvanced, Notes: "High volume, moderate intensity"},
		{Day: 2, MuscleGroup: "Back & Biceps", Level: models.LevelAdvanced, Notes: "Focus on width and thickness"},
		{Day: 3, MuscleGroup: "Legs", Level: models.LevelAdvanced, Notes: "High intensity, compound movements"},
		{Day: 5, MuscleGroup: "Shoulders & Arms", Level: models.LevelAdvanced, Notes: "Focus on all three deltoid heads"},
		{Day: 6, MuscleGroup: "Full Body (Light)", Level: models.LevelAdvanced, Notes: "Active recovery, light weights"},
	},
}

// Split returns the sessions of a level with goal-specific notes appended.
func Split(level models.Level, goal models.Goal) ([]Session, error) {
	base, ok := splits[level]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLevel, level)
	}

	var suffix string
	switch goal {
	case models.GoalLoseFat:
		suffix = hiitSuffix
	case models.GoalGainMuscle:
		suffix = overloadSuffix
	case models.GoalMaintain:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidGoal, goal)
	}

	out := make([]Session, len(base))
	for i, s := range base {
		s.Notes += suffix
		out[i] = s
	}
	return out, nil
}

func Generate(level models.Level, goal models.Goal) (Plan, error) {
	sessions, err := Split(level, goal)
	if err != nil {
		return nil, err
	}

	plan := make(Plan, len(sessions))
	for _, s := range sessions {
		plan[s.Day] = Day{
			Workout:   s,
			Exercises: Exercises(s.MuscleGroup, level),
		}
	}
	return plan, nil
}

// Models converts the plan into persisted workout days, ordered by day.
func (p Plan) Models(userID uint) []models.WorkoutPlan {
	out := make([]models.WorkoutPlan, 0, len(p))
	for _, d := range p.Days() {
		day := p[d]
		wp := models.WorkoutPlan{
			UserID:      userID,
			Day:         day.Workout.Day,
			MuscleGroup: day.Workout.MuscleGroup,
			Level:       day.Workout.Level,
			Notes:       day.Workout.Notes,
			Exercises:   make([]models.Exercise, 0, len(day.Exercises)),
		}
		for _, e := range day.Exercises {
			wp.Exercises = append(wp.Exercises, models.Exercise{
				Name:        e.Name,
				Sets:        e.Sets,
				Reps:        e.Reps,
				RestSeconds: e.RestSeconds,
				Notes:       e.Notes,
			})
		}
		out = append(out, wp)
	}
	return out
}
