package models

import (
	"time"

	"gorm.io/gorm"
)

type UserProfile struct {
	ID             uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt      time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt      time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	UserID         uint           `gorm:"unique" json:"user_id" example:"1"`
	Gender         Gender         `gorm:"type:varchar(10);check:gender IN ('male','female','other')" json:"gender" example:"male"`
	DateOfBirth    time.Time      `gorm:"type:date" json:"date_of_birth" example:"1994-06-15T00:00:00Z"`
	Age            int            `json:"age" example:"30"`
	HeightCm       float64        `json:"height_cm" example:"180"`
	WeightKg       float64        `json:"weight_kg" example:"80"`
	ActivityLevel  ActivityLevel  `gorm:"type:varchar(20);check:activity_level IN ('sedentary','light','moderate','intense')" json:"activity_level" example:"moderate"`
	Goal           Goal           `gorm:"type:varchar(20);check:goal IN ('lose_fat','maintain','gain_muscle')" json:"goal" example:"maintain"`
	BodyFatPercent *float64       `json:"body_fat_percent" example:"18"`
	LeanMassKg     *float64       `json:"lean_mass_kg" example:"65.6"`
	BMR            float64        `gorm:"column:bmr" json:"bmr" example:"1780"`
	TDEE           float64        `gorm:"column:tdee" json:"tdee" example:"2759"`
	DailyCalories  float64        `json:"daily_calories" example:"2759"`
	ProteinGram    float64        `json:"protein_gram" example:"128"`
	CarbGram       float64        `json:"carb_gram" example:"345.7"`
	FatGram        float64        `json:"fat_gram" example:"76.6"`
}
