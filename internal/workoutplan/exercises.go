package workoutplan

import "planova/internal/models"

type Exercise struct {
	Name        string  `json:"name"`
	Sets        int     `json:"sets"`
	Reps        string  `json:"reps"`
	RestSeconds int     `json:"rest_seconds"`
	Notes       *string `json:"notes,omitempty"`
}

type exerciseKey struct {
	muscleGroup string
	level       models.Level
}

var exerciseDB = map[exerciseKey][]Exercise{
	{"Full Body A", models.LevelBeginner}: {
		{Name: "Goblet Squat", Sets: 3, Reps: "8-12", RestSeconds: 90},
		{Name: "Dumbbell Bench Press", Sets: 3, Reps: "8-12", RestSeconds: 90},
		{Name: "Lat Pulldown", Sets: 3, Reps: "8-12", RestSeconds: 90},
		{Name: "Dumbbell Shoulder Press", Sets: 2, Reps: "10-15", RestSeconds: 60},
		{Name: "Plank", Sets: 3, Reps: "30 sec", RestSeconds: 60},
	},
	{"Full Body B", models.LevelBeginner}: {
		{Name: "Romanian Deadlift", Sets: 3, Reps: "8-12", RestSeconds: 90},
		{Name: "Push-ups", Sets: 3, Reps: "8-12", RestSeconds: 90},
		{Name: "Seated Cable Row", Sets: 3, Reps: "8-12", RestSeconds: 90},
		{Name: "Dumbbell Lateral Raise", Sets: 2, Reps: "12-15", RestSeconds: 60},
		{Name: "Bicycle Crunches", Sets: 3, Reps: "15-20", RestSeconds: 60},
	},
	{"Full Body C", models.LevelBeginner}: {
		{Name: "Leg Press", Sets: 3, Reps: "10-12", RestSeconds: 90},
		{Name: "Incline Dumbbell Press", Sets: 3, Reps: "8-12", RestSeconds: 90},
		{Name: "Dumbbell Row", Sets: 3, Reps: "8-12", RestSeconds: 90},
		{Name: "Face Pull", Sets: 3, Reps: "12-15", RestSeconds: 60},
		{Name: "Russian Twist", Sets: 3, Reps: "15 each side", RestSeconds: 60},
	},

	{"Upper Body A", models.LevelIntermediate}: {
		{Name: "Barbell Bench Press", Sets: 4, Reps: "6-8", RestSeconds: 120},
		{Name: "Weighted Pull-ups", Sets: 4, Reps: "6-8", RestSeconds: 120},
		{Name: "Overhead Press", Sets: 3, Reps: "8-10", RestSeconds: 90},
		{Name: "Cable Fly", Sets: 3, Reps: "10-12", RestSeconds: 60},
		{Name: "Face Pull", Sets: 3, Reps: "12-15", RestSeconds: 60},
		{Name: "Tricep Pushdown", Sets: 3, Reps: "10-12", RestSeconds: 60},
	},
	{"Lower Body A", models.LevelIntermediate}: {
		{Name: "Back Squat", Sets: 4, Reps: "6-8", RestSeconds: 180},
		{Name: "Walking Lunges", Sets: 3, Reps: "10 each leg", RestSeconds: 90},
		{Name: "Leg Extension", Sets: 3, Reps: "10-12", RestSeconds: 60},
		{Name: "Seated Leg Curl", Sets: 3, Reps: "10-12", RestSeconds: 60},
		{Name: "Standing Calf Raise", Sets: 4, Reps: "12-15", RestSeconds: 60},
		{Name: "Hanging Leg Raise", Sets: 3, Reps: "10-15", RestSeconds: 60},
	},
	{"Upper Body B", models.LevelIntermediate}: {
		{Name: "Barbell Row", Sets: 4, Reps: "6-8", RestSeconds: 120},
		{Name: "Incline Dumbbell Press", Sets: 4, Reps: "8-10", RestSeconds: 90},
		{Name: "Lat Pulldown", Sets: 3, Reps: "10-12", RestSeconds: 90},
		{Name: "Lateral Raise", Sets: 3, Reps: "12-15", RestSeconds: 60},
		{Name: "Dumbbell Curl", Sets: 3, Reps: "10-12", RestSeconds: 60},
		{Name: "Skull Crusher", Sets: 3, Reps: "10-12", RestSeconds: 60},
	},
	{"Lower Body B", models.LevelIntermediate}: {
		{Name: "Deadlift", Sets: 4, Reps: "5-6", RestSeconds: 180},
		{Name: "Bulgarian Split Squat", Sets: 3, Reps: "8-10 each leg", RestSeconds: 90},
		{Name: "Romanian Deadlift", Sets: 3, Reps: "8-10", RestSeconds: 90},
		{Name: "Leg Press (Narrow Stance)", Sets: 3, Reps: "10-12", RestSeconds: 90},
		{Name: "Seated Calf Raise", Sets: 4, Reps: "15-20", RestSeconds: 60},
		{Name: "Cable Crunch", Sets: 3, Reps: "15-20", RestSeconds: 60},
	},

	{"Chest & Triceps", models.LevelAdvanced}: {
		{Name: "Barbell Bench Press", Sets: 5, Reps: "5-8", RestSeconds: 180},
		{Name: "Incline Dumbbell Press", Sets: 4, Reps: "8-10", RestSeconds: 120},
		{Name: "Weighted Dips", Sets: 4, Reps: "8-10", RestSeconds: 120},
		{Name: "Cable Fly", Sets: 3, Reps: "10-12", RestSeconds: 60},
		{Name: "Close-Grip Bench Press", Sets: 4, Reps: "8-10", RestSeconds: 120},
		{Name: "Overhead Tricep Extension", Sets: 3, Reps: "10-12", RestSeconds: 60},
		{Name: "Tricep Pushdown", Sets: 3, Reps: "12-15", RestSeconds: 60},
	},
	{"Back & Biceps", models.LevelAdvanced}: {
		{Name: "Weighted Pull-ups", Sets: 5, Reps: "5-8", RestSeconds: 180},
		{Name: "Barbell Row", Sets: 4, Reps: "6-8", RestSeconds: 120},
		{Name: "T-Bar Row", Sets: 4, Reps: "8-10", RestSeconds: 120},
		{Name: "Lat Pulldown", Sets: 3, Reps: "10-12", RestSeconds: 90},
		{Name: "Barbell Curl", Sets: 4, Reps: "8-10", RestSeconds: 90},
		{Name: "Hammer Curl", Sets: 3, Reps: "10-12", RestSeconds: 60},
		{Name: "Cable Curl", Sets: 3, Reps: "12-15", RestSeconds: 60},
	},
	{"Legs", models.LevelAdvanced}: {
		{Name: "Back Squat", Sets: 5, Reps: "5-8", RestSeconds: 180},
		{Name: "Romanian Deadlift", Sets: 4, Reps: "8-10", RestSeconds: 120},
		{Name: "Hack Squat", Sets: 4, Reps: "8-10", RestSeconds: 120},
		{Name: "Walking Lunges", Sets: 3, Reps: "10 each leg", RestSeconds: 90},
		{Name: "Leg Extension", Sets: 3, Reps: "12-15", RestSeconds: 60},
		{Name: "Leg Curl", Sets: 3, Reps: "12-15", RestSeconds: 60},
		{Name: "Standing Calf Raise", Sets: 5, Reps: "15-20", RestSeconds: 60},
	},
	{"Shoulders & Arms", models.LevelAdvanced}: {
		{Name: "Overhead Press", Sets: 5, Reps: "5-8", RestSeconds: 180},
		{Name: "Lateral Raise", Sets: 4, Reps: "10-12", RestSeconds: 60},
		{Name: "Face Pull", Sets: 4, Reps: "12-15", RestSeconds: 60},
		{Name: "Rear Delt Fly", Sets: 3, Reps: "12-15", RestSeconds: 60},
		{Name: "EZ Bar Curl", Sets: 4, Reps: "8-10", RestSeconds: 90},
		{Name: "Skull Crusher", Sets: 4, Reps: "8-10", RestSeconds: 90},
		{Name: "Cable Curl/Pushdown Superset", Sets: 3, Reps: "12-15", RestSeconds: 45},
	},
	{"Full Body (Light)", models.LevelAdvanced}: {
		{Name: "Goblet Squat", Sets: 3, Reps: "12-15", RestSeconds: 60},
		{Name: "Push-ups", Sets: 3, Reps: "15-20", RestSeconds: 60},
		{Name: "TRX Row", Sets: 3, Reps: "15-20", RestSeconds: 60},
		{Name: "Dumbbell Lateral Raise", Sets: 3, Reps: "15-20", RestSeconds: 45},
		{Name: "Dumbbell Curl", Sets: 3, Reps: "15-20", RestSeconds: 45},
		{Name: "Tricep Dips", Sets: 3, Reps: "15-20", RestSeconds: 45},
	},
}

// Exercises looks up the prescription for a muscle group at a level, falling
// back to the beginner list and then to an empty list. The returned slice is a
// fresh copy.
func Exercises(muscleGroup string, level models.Level) []Exercise {
	list, ok := exerciseDB[exerciseKey{muscleGroup, level}]
	if !ok {
		list = exerciseDB[exerciseKey{muscleGroup, models.LevelBeginner}]
	}
	out := make([]Exercise, len(list))
	copy(out, list)
	return out
}
