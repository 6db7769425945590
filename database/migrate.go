package database

import (
	"log"
	"planova/internal/models"

	"gorm.io/gorm"
)

func MigrateDatabase(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.MealPlan{},
		&models.Meal{},
		&models.FoodItem{},
		&models.WorkoutPlan{},
		&models.Exercise{},
		&models.Subscription{},
	)
	if err != nil {
		log.Printf("Error during migration: %v", err)
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}
