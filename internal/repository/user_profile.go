package repository

import (
	"planova/internal/models"

	"gorm.io/gorm"
)

type UserProfileRepository interface {
	Create(profile *models.UserProfile) error
	FindByUserID(userID uint) (*models.UserProfile, error)
	Update(profile *models.UserProfile) error
	DeleteByUserID(userID uint) error
}

// profileColumns are the biometric inputs and the targets derived from them.
// user_id and created_at never change after creation.
var profileColumns = []string{
	"gender", "date_of_birth", "age", "height_cm", "weight_kg", "activity_level", "goal",
	"body_fat_percent", "lean_mass_kg", "bmr", "tdee", "daily_calories",
	"protein_gram", "carb_gram", "fat_gram", "updated_at",
}

type userProfileRepository struct {
	db *gorm.DB
}

func NewUserProfileRepository(db *gorm.DB) UserProfileRepository {
	return &userProfileRepository{db: db}
}

func (r *userProfileRepository) Create(profile *models.UserProfile) error {
	return r.db.Create(profile).Error
}

func (r *userProfileRepository) FindByUserID(userID uint) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := r.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// Update writes every input and derived column in one statement, so a
// cleared body fat also clears the stored lean mass.
func (r *userProfileRepository) Update(profile *models.UserProfile) error {
	result := r.db.Model(profile).Select(profileColumns).Updates(profile)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *userProfileRepository) DeleteByUserID(userID uint) error {
	result := r.db.Unscoped().Where("user_id = ?", userID).Delete(&models.UserProfile{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
