package repository

import (
	"planova/internal/models"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SubscriptionRepository interface {
	FindByUserID(userID uint) (*models.Subscription, error)
	Save(sub *models.Subscription, role models.Role) error
	FindExpired(now time.Time) ([]models.Subscription, error)
	Expire(sub *models.Subscription, at time.Time) error
}

type subscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) FindByUserID(userID uint) (*models.Subscription, error) {
	var sub models.Subscription
	if err := r.db.Where("user_id = ?", userID).First(&sub).Error; err != nil {
		return nil, err
	}
	return &sub, nil
}

// Save upserts the user's subscription row and sets the user's role in the
// same transaction. Admins keep their role.
func (r *subscriptionRepository) Save(sub *models.Subscription, role models.Role) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"tier", "start_date", "end_date", "is_active", "updated_at"}),
		}).Create(sub).Error
		if err != nil {
			return err
		}
		return setRole(tx, sub.UserID, role)
	})
}

// FindExpired lists active subscriptions whose end date is not after now.
func (r *subscriptionRepository) FindExpired(now time.Time) ([]models.Subscription, error) {
	var subs []models.Subscription
	err := r.db.
		Where("is_active = ? AND end_date IS NOT NULL AND end_date <= ?", true, now).
		Find(&subs).Error
	return subs, err
}

// Expire deactivates the subscription and downgrades the user to free.
func (r *subscriptionRepository) Expire(sub *models.Subscription, at time.Time) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		sub.IsActive = false
		sub.EndDate = &at
		if err := tx.Model(&models.Subscription{}).Where("id = ?", sub.ID).Updates(map[string]interface{}{
			"is_active": false,
			"end_date":  at,
		}).Error; err != nil {
			return err
		}
		return setRole(tx, sub.UserID, models.RoleFree)
	})
}

func setRole(tx *gorm.DB, userID uint, role models.Role) error {
	return tx.Model(&models.User{}).
		Where("id = ? AND role <> ?", userID, models.RoleAdmin).
		Update("role", role).Error
}
