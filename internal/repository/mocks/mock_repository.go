package mocks

import (
	"planova/internal/models"
	"planova/internal/repository"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) PatchUser(id uint, data map[string]interface{}) error {
	args := m.Called(id, data)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteUser(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockUserRepository) CountByRole(role models.Role) (int64, error) {
	args := m.Called(role)
	return args.Get(0).(int64), args.Error(1)
}

// MockUserProfileRepository
type MockUserProfileRepository struct {
	mock.Mock
}

func (m *MockUserProfileRepository) Create(profile *models.UserProfile) error {
	args := m.Called(profile)
	return args.Error(0)
}

func (m *MockUserProfileRepository) FindByUserID(userID uint) (*models.UserProfile, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserProfile), args.Error(1)
}

func (m *MockUserProfileRepository) Update(profile *models.UserProfile) error {
	args := m.Called(profile)
	return args.Error(0)
}

func (m *MockUserProfileRepository) DeleteByUserID(userID uint) error {
	args := m.Called(userID)
	return args.Error(0)
}

// MockMealPlanRepository
type MockMealPlanRepository struct {
	mock.Mock
}

func (m *MockMealPlanRepository) FindAllByUserID(userID uint) ([]models.MealPlan, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MealPlan), args.Error(1)
}

func (m *MockMealPlanRepository) FindByUserIDAndDay(userID uint, day int) (*models.MealPlan, error) {
	args := m.Called(userID, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MealPlan), args.Error(1)
}

func (m *MockMealPlanRepository) ReplaceForDay(plan *models.MealPlan) error {
	args := m.Called(plan)
	return args.Error(0)
}

func (m *MockMealPlanRepository) AddMeal(plan *models.MealPlan, meal *models.Meal) error {
	args := m.Called(plan, meal)
	return args.Error(0)
}

func (m *MockMealPlanRepository) FindMealForUser(mealID, userID uint) (*models.Meal, error) {
	args := m.Called(mealID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Meal), args.Error(1)
}

func (m *MockMealPlanRepository) AddFoodItem(meal *models.Meal, item *models.FoodItem) error {
	args := m.Called(meal, item)
	return args.Error(0)
}

func (m *MockMealPlanRepository) DeleteAllByUserID(userID uint) error {
	args := m.Called(userID)
	return args.Error(0)
}

// MockWorkoutPlanRepository
type MockWorkoutPlanRepository struct {
	mock.Mock
}

func (m *MockWorkoutPlanRepository) FindAllByUserID(userID uint) ([]models.WorkoutPlan, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.WorkoutPlan), args.Error(1)
}

func (m *MockWorkoutPlanRepository) FindByUserIDAndDay(userID uint, day int) (*models.WorkoutPlan, error) {
	args := m.Called(userID, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WorkoutPlan), args.Error(1)
}

func (m *MockWorkoutPlanRepository) FindByIDForUser(id, userID uint) (*models.WorkoutPlan, error) {
	args := m.Called(id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WorkoutPlan), args.Error(1)
}

func (m *MockWorkoutPlanRepository) ReplaceAll(userID uint, plans []models.WorkoutPlan) error {
	args := m.Called(userID, plans)
	return args.Error(0)
}

func (m *MockWorkoutPlanRepository) Update(plan *models.WorkoutPlan) error {
	args := m.Called(plan)
	return args.Error(0)
}

func (m *MockWorkoutPlanRepository) AddExercise(exercise *models.Exercise) error {
	args := m.Called(exercise)
	return args.Error(0)
}

func (m *MockWorkoutPlanRepository) FindExerciseForUser(id, userID uint) (*models.Exercise, error) {
	args := m.Called(id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Exercise), args.Error(1)
}

func (m *MockWorkoutPlanRepository) UpdateExercise(exercise *models.Exercise) error {
	args := m.Called(exercise)
	return args.Error(0)
}

func (m *MockWorkoutPlanRepository) DeleteExercise(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockSubscriptionRepository
type MockSubscriptionRepository struct {
	mock.Mock
}

func (m *MockSubscriptionRepository) FindByUserID(userID uint) (*models.Subscription, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Subscription), args.Error(1)
}

func (m *MockSubscriptionRepository) Save(sub *models.Subscription, role models.Role) error {
	args := m.Called(sub, role)
	return args.Error(0)
}

func (m *MockSubscriptionRepository) FindExpired(now time.Time) ([]models.Subscription, error) {
	args := m.Called(now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Subscription), args.Error(1)
}

func (m *MockSubscriptionRepository) Expire(sub *models.Subscription, at time.Time) error {
	args := m.Called(sub, at)
	return args.Error(0)
}

var (
	_ repository.UserRepository         = (*MockUserRepository)(nil)
	_ repository.UserProfileRepository  = (*MockUserProfileRepository)(nil)
	_ repository.MealPlanRepository     = (*MockMealPlanRepository)(nil)
	_ repository.WorkoutPlanRepository  = (*MockWorkoutPlanRepository)(nil)
	_ repository.SubscriptionRepository = (*MockSubscriptionRepository)(nil)
)
