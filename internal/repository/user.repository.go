package repository

import (
	"planova/internal/models"

	"gorm.io/gorm"
)

type UserRepository interface {
	CreateUser(user *models.User) error
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	UpdateUser(user *models.User) error
	PatchUser(id uint, data map[string]interface{}) error
	DeleteUser(id uint) error
	CountByRole(role models.Role) (int64, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{
		db: db,
	}
}

func (ur *userRepository) CreateUser(user *models.User) error {
	if user.Role == "" {
		user.Role = models.RoleFree
	}
	return ur.db.Create(user).Error
}

func (ur *userRepository) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := ur.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (ur *userRepository) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := ur.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (ur *userRepository) PatchUser(id uint, data map[string]interface{}) error {
	var user models.User

	if err := ur.db.First(&user, id).Error; err != nil {
		return err
	}

	return ur.db.Model(&user).Updates(data).Error
}

func (ur *userRepository) UpdateUser(user *models.User) error {
	return ur.db.Save(user).Error
}

// DeleteUser removes the account with its profile, plans and subscription in
// one transaction. The rows are hard-deleted so the email can register again.
func (ur *userRepository) DeleteUser(id uint) error {
	return ur.db.Transaction(func(tx *gorm.DB) error {
		if err := NewMealPlanRepository(tx).DeleteAllByUserID(id); err != nil {
			return err
		}
		if err := NewWorkoutPlanRepository(tx).ReplaceAll(id, nil); err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Subscription{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("user_id = ?", id).Delete(&models.UserProfile{}).Error; err != nil {
			return err
		}

		result := tx.Unscoped().Delete(&models.User{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (ur *userRepository) CountByRole(role models.Role) (int64, error) {
	var count int64
	err := ur.db.Model(&models.User{}).Where("role = ?", role).Count(&count).Error
	return count, err
}
