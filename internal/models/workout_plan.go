package models

import (
	"time"
)

type WorkoutPlan struct {
	ID          uint       `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt   time.Time  `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt   time.Time  `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	UserID      uint       `gorm:"not null;uniqueIndex:idx_workout_plans_user_day" json:"user_id" example:"1"`
	User        User       `gorm:"foreignKey:UserID" json:"-"`
	Day         int        `gorm:"not null;uniqueIndex:idx_workout_plans_user_day;check:day BETWEEN 1 AND 7" json:"day" example:"1"`
	MuscleGroup string     `json:"muscle_group" example:"Full Body A"`
	Level       Level      `gorm:"type:varchar(20);check:level IN ('beginner','intermediate','advanced')" json:"level" example:"beginner"`
	Notes       string     `gorm:"type:text" json:"notes" example:"Focus on form and technique"`
	Exercises   []Exercise `gorm:"foreignKey:WorkoutPlanID" json:"exercises"`
}

type Exercise struct {
	ID            uint    `gorm:"primaryKey" json:"id" example:"1"`
	WorkoutPlanID uint    `gorm:"not null;index" json:"workout_plan_id" example:"1"`
	Name          string  `json:"name" example:"Goblet Squat"`
	Sets          int     `json:"sets" example:"3"`
	Reps          string  `json:"reps" example:"8-12"`
	RestSeconds   int     `json:"rest_seconds" example:"90"`
	Notes         *string `gorm:"type:text" json:"notes,omitempty"`
}
