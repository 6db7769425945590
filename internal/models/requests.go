package models

import "encoding/json"

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email" example:"john.doe@example.com"`
	Password string `json:"password" binding:"required,min=8" example:"s3cretpass"`
}

// LoginRequest accepts JSON or the OAuth2 password form (username/password).
type LoginRequest struct {
	Email    string `json:"email" form:"username" binding:"required" example:"john.doe@example.com"`
	Password string `json:"password" form:"password" binding:"required" example:"s3cretpass"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	TokenType   string `json:"token_type" example:"bearer"`
}

type UserUpdateRequest struct {
	Email    *string `json:"email" binding:"omitempty,email" example:"jane.doe@example.com"`
	Password *string `json:"password" binding:"omitempty,min=8" example:"n3wpassword"`
}

type ProfileCreateRequest struct {
	Gender         Gender        `json:"gender" binding:"required" example:"male"`
	DateOfBirth    string        `json:"date_of_birth" binding:"required,datetime=2006-01-02" example:"1994-06-15"`
	HeightCm       float64       `json:"height_cm" binding:"required" example:"180"`
	WeightKg       float64       `json:"weight_kg" binding:"required" example:"80"`
	ActivityLevel  ActivityLevel `json:"activity_level" binding:"required" example:"moderate"`
	Goal           Goal          `json:"goal" binding:"required" example:"maintain"`
	BodyFatPercent *float64      `json:"body_fat_percent" example:"18"`
}

// ProfileUpdateRequest carries only the fields being changed. An explicit
// null body_fat_percent clears the stored value.
type ProfileUpdateRequest struct {
	Gender         *Gender        `json:"gender" example:"female"`
	DateOfBirth    *string        `json:"date_of_birth" binding:"omitempty,datetime=2006-01-02" example:"1994-06-15"`
	HeightCm       *float64       `json:"height_cm" example:"165"`
	WeightKg       *float64       `json:"weight_kg" example:"60"`
	ActivityLevel  *ActivityLevel `json:"activity_level" example:"light"`
	Goal           *Goal          `json:"goal" example:"lose_fat"`
	BodyFatPercent NullableFloat  `json:"body_fat_percent" swaggertype:"number" example:"24"`
}

// NullableFloat tells an omitted key apart from an explicit null. Set is true
// whenever the key was present; Value is nil for null.
type NullableFloat struct {
	Set   bool
	Value *float64
}

func (n *NullableFloat) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		n.Value = nil
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	n.Value = &v
	return nil
}

type MealCreateRequest struct {
	Name        string  `json:"name" binding:"required" example:"Post-workout shake"`
	Calories    float64 `json:"calories" binding:"gte=0" example:"320"`
	Protein     float64 `json:"protein" binding:"gte=0" example:"40"`
	Carbs       float64 `json:"carbs" binding:"gte=0" example:"30"`
	Fat         float64 `json:"fat" binding:"gte=0" example:"5"`
	Description string  `json:"description" example:"Whey with banana"`
}

// FoodItemCreateRequest either names a catalog food (food_id), whose
// nutrients are scaled to the quantity, or spells the food out in full.
type FoodItemCreateRequest struct {
	FoodID   string  `json:"food_id" example:"oats"`
	Name     string  `json:"name" example:"Oats"`
	Quantity float64 `json:"quantity" binding:"required,gt=0" example:"80"`
	Unit     string  `json:"unit" example:"g"`
	Calories float64 `json:"calories" binding:"gte=0" example:"311"`
	Protein  float64 `json:"protein" binding:"gte=0" example:"13.5"`
	Carbs    float64 `json:"carbs" binding:"gte=0" example:"53"`
	Fat      float64 `json:"fat" binding:"gte=0" example:"5.5"`
}

type WorkoutPlanUpdateRequest struct {
	Day         *int    `json:"day" binding:"omitempty,min=1,max=7" example:"2"`
	MuscleGroup *string `json:"muscle_group" example:"Upper Body A"`
	Level       *Level  `json:"level" example:"intermediate"`
	Notes       *string `json:"notes" example:"Deload week"`
}

type ExerciseCreateRequest struct {
	Name        string  `json:"name" binding:"required" example:"Face Pull"`
	Sets        int     `json:"sets" binding:"required,gt=0" example:"3"`
	Reps        string  `json:"reps" binding:"required" example:"15"`
	RestSeconds int     `json:"rest_seconds" binding:"gte=0" example:"60"`
	Notes       *string `json:"notes" example:"Light weight"`
}

type ExerciseUpdateRequest struct {
	Name        *string `json:"name" example:"Cable Face Pull"`
	Sets        *int    `json:"sets" binding:"omitempty,gt=0" example:"4"`
	Reps        *string `json:"reps" example:"12-15"`
	RestSeconds *int    `json:"rest_seconds" binding:"omitempty,gte=0" example:"45"`
	Notes       *string `json:"notes" example:"Pause at peak"`
}
