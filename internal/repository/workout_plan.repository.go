package repository

import (
	"errors"
	"planova/internal/models"

	"gorm.io/gorm"
)

// ErrDayTaken is returned when a workout day is moved onto a day that already
// holds another session of the same user.
var ErrDayTaken = errors.New("workout day already scheduled")

type WorkoutPlanRepository interface {
	FindAllByUserID(userID uint) ([]models.WorkoutPlan, error)
	FindByUserIDAndDay(userID uint, day int) (*models.WorkoutPlan, error)
	FindByIDForUser(id, userID uint) (*models.WorkoutPlan, error)
	ReplaceAll(userID uint, plans []models.WorkoutPlan) error
	Update(plan *models.WorkoutPlan) error
	AddExercise(exercise *models.Exercise) error
	FindExerciseForUser(id, userID uint) (*models.Exercise, error)
	UpdateExercise(exercise *models.Exercise) error
	DeleteExercise(id uint) error
}

type workoutPlanRepository struct {
	db *gorm.DB
}

func NewWorkoutPlanRepository(db *gorm.DB) WorkoutPlanRepository {
	return &workoutPlanRepository{db: db}
}

func orderedExercises(db *gorm.DB) *gorm.DB {
	return db.Order("exercises.id")
}

func (r *workoutPlanRepository) FindAllByUserID(userID uint) ([]models.WorkoutPlan, error) {
	var plans []models.WorkoutPlan
	err := r.db.Preload("Exercises", orderedExercises).
		Where("user_id = ?", userID).
		Order("day").
		Find(&plans).Error
	return plans, err
}

func (r *workoutPlanRepository) FindByUserIDAndDay(userID uint, day int) (*models.WorkoutPlan, error) {
	var plan models.WorkoutPlan
	err := r.db.Preload("Exercises", orderedExercises).
		Where("user_id = ? AND day = ?", userID, day).
		First(&plan).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *workoutPlanRepository) FindByIDForUser(id, userID uint) (*models.WorkoutPlan, error) {
	var plan models.WorkoutPlan
	err := r.db.Preload("Exercises", orderedExercises).
		Where("id = ? AND user_id = ?", id, userID).
		First(&plan).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// ReplaceAll removes every workout day of the user and stores plans in one
// transaction. IDs are filled into plans on success.
func (r *workoutPlanRepository) ReplaceAll(userID uint, plans []models.WorkoutPlan) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		planIDs := tx.Model(&models.WorkoutPlan{}).Select("id").Where("user_id = ?", userID)
		if err := tx.Where("workout_plan_id IN (?)", planIDs).Delete(&models.Exercise{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.WorkoutPlan{}).Error; err != nil {
			return err
		}
		if len(plans) == 0 {
			return nil
		}
		for i := range plans {
			plans[i].UserID = userID
		}
		return tx.Create(&plans).Error
	})
}

func (r *workoutPlanRepository) Update(plan *models.WorkoutPlan) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var clashes int64
		err := tx.Model(&models.WorkoutPlan{}).
			Where("user_id = ? AND day = ? AND id <> ?", plan.UserID, plan.Day, plan.ID).
			Count(&clashes).Error
		if err != nil {
			return err
		}
		if clashes > 0 {
			return ErrDayTaken
		}
		return tx.Omit("Exercises").Save(plan).Error
	})
}

func (r *workoutPlanRepository) AddExercise(exercise *models.Exercise) error {
	return r.db.Create(exercise).Error
}

func (r *workoutPlanRepository) FindExerciseForUser(id, userID uint) (*models.Exercise, error) {
	var exercise models.Exercise
	err := r.db.
		Joins("JOIN workout_plans ON workout_plans.id = exercises.workout_plan_id").
		Where("exercises.id = ? AND workout_plans.user_id = ?", id, userID).
		First(&exercise).Error
	if err != nil {
		return nil, err
	}
	return &exercise, nil
}

func (r *workoutPlanRepository) UpdateExercise(exercise *models.Exercise) error {
	return r.db.Save(exercise).Error
}

func (r *workoutPlanRepository) DeleteExercise(id uint) error {
	return r.db.Delete(&models.Exercise{}, id).Error
}
