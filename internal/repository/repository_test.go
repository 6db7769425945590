package repository

import (
	"errors"
	"planova/database"
	"planova/internal/mealplan"
	"planova/internal/models"
	"planova/internal/workoutplan"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.MigrateDatabase(db))
	return db
}

func createUser(t *testing.T, repo UserRepository, email string, role models.Role) *models.User {
	t.Helper()
	user := &models.User{Email: email, Password: "hash", IsActive: true, Role: role}
	require.NoError(t, repo.CreateUser(user))
	return user
}

func TestUserRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	user := &models.User{Email: "a@example.com", Password: "hash"}
	require.NoError(t, repo.CreateUser(user))
	assert.Equal(t, models.RoleFree, user.Role)

	found, err := repo.GetUserByEmail("a@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	_, err = repo.GetUserByEmail("missing@example.com")
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	createUser(t, repo, "admin@example.com", models.RoleAdmin)
	count, err := repo.CountByRole(models.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	require.NoError(t, repo.PatchUser(user.ID, map[string]interface{}{"is_active": false}))
	found, err = repo.GetUserByID(user.ID)
	require.NoError(t, err)
	assert.False(t, found.IsActive)
}

func TestUserRepositoryDeleteUser(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	owner := createUser(t, users, "gone@example.com", models.RolePremium)
	other := createUser(t, users, "stays@example.com", models.RoleFree)

	for _, u := range []*models.User{owner, other} {
		profile := &models.UserProfile{
			UserID:        u.ID,
			Gender:        models.GenderFemale,
			DateOfBirth:   time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
			HeightCm:      165,
			WeightKg:      60,
			ActivityLevel: models.ActivityLight,
			Goal:          models.GoalLoseFat,
		}
		require.NoError(t, NewUserProfileRepository(db).Create(profile))
		require.NoError(t, NewMealPlanRepository(db).ReplaceForDay(generatedMealPlan(t, u.ID, 1, models.GoalLoseFat)))

		week, err := workoutplan.Generate(models.LevelBeginner, models.GoalLoseFat)
		require.NoError(t, err)
		require.NoError(t, NewWorkoutPlanRepository(db).ReplaceAll(u.ID, week.Models(u.ID)))
	}
	require.NoError(t, NewSubscriptionRepository(db).Save(&models.Subscription{
		UserID: owner.ID, Tier: models.RolePremium, StartDate: time.Now(), IsActive: true,
	}, models.RolePremium))

	require.NoError(t, users.DeleteUser(owner.ID))

	_, err := users.GetUserByID(owner.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
	var unscoped int64
	require.NoError(t, db.Unscoped().Model(&models.User{}).Where("id = ?", owner.ID).Count(&unscoped).Error)
	assert.Zero(t, unscoped)

	for _, table := range []interface{}{&models.UserProfile{}, &models.MealPlan{}, &models.WorkoutPlan{}, &models.Subscription{}} {
		var n int64
		require.NoError(t, db.Unscoped().Model(table).Where("user_id = ?", owner.ID).Count(&n).Error)
		assert.Zero(t, n, "%T", table)
	}

	var meals, items, exercises int64
	require.NoError(t, db.Model(&models.Meal{}).Count(&meals).Error)
	require.NoError(t, db.Model(&models.FoodItem{}).Count(&items).Error)
	require.NoError(t, db.Model(&models.Exercise{}).Count(&exercises).Error)
	assert.Equal(t, int64(4), meals)
	assert.Equal(t, int64(16), items)
	assert.Positive(t, exercises)

	plans, err := NewMealPlanRepository(db).FindAllByUserID(other.ID)
	require.NoError(t, err)
	assert.Len(t, plans, 1)

	assert.True(t, errors.Is(users.DeleteUser(owner.ID), gorm.ErrRecordNotFound))

	again := createUser(t, users, "gone@example.com", models.RoleFree)
	assert.NotZero(t, again.ID)
}

func TestUserProfileRepository(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	repo := NewUserProfileRepository(db)
	user := createUser(t, users, "p@example.com", models.RoleFree)

	profile := &models.UserProfile{
		UserID:        user.ID,
		Gender:        models.GenderMale,
		DateOfBirth:   time.Date(1994, 6, 15, 0, 0, 0, 0, time.UTC),
		HeightCm:      180,
		WeightKg:      80,
		ActivityLevel: models.ActivityModerate,
		Goal:          models.GoalMaintain,
	}
	require.NoError(t, repo.Create(profile))

	found, err := repo.FindByUserID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 80.0, found.WeightKg)

	duplicate := *profile
	duplicate.ID = 0
	assert.Error(t, repo.Create(&duplicate))

	bodyFat, lean := 20.0, 64.0
	found.BodyFatPercent, found.LeanMassKg = &bodyFat, &lean
	found.WeightKg = 80
	require.NoError(t, repo.Update(found))

	found.BodyFatPercent, found.LeanMassKg = nil, nil
	found.UserID = 999
	require.NoError(t, repo.Update(found))

	reloaded, err := repo.FindByUserID(user.ID)
	require.NoError(t, err)
	assert.Nil(t, reloaded.BodyFatPercent)
	assert.Nil(t, reloaded.LeanMassKg)

	missing := *reloaded
	missing.ID = 4242
	assert.True(t, errors.Is(repo.Update(&missing), gorm.ErrRecordNotFound))

	require.NoError(t, repo.DeleteByUserID(user.ID))
	_, err = repo.FindByUserID(user.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
	assert.True(t, errors.Is(repo.DeleteByUserID(user.ID), gorm.ErrRecordNotFound))
}

func generatedMealPlan(t *testing.T, userID uint, day int, goal models.Goal) *models.MealPlan {
	t.Helper()
	plan, err := mealplan.Generate(mealplan.Targets{
		DailyCalories: 2759,
		ProteinGram:   128,
		CarbGram:      389.3,
		FatGram:       76.6,
	}, goal)
	require.NoError(t, err)
	return plan.Model(userID, day)
}

func TestMealPlanReplaceForDay(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	repo := NewMealPlanRepository(db)
	user := createUser(t, users, "m@example.com", models.RoleFree)

	require.NoError(t, repo.ReplaceForDay(generatedMealPlan(t, user.ID, 1, models.GoalMaintain)))
	require.NoError(t, repo.ReplaceForDay(generatedMealPlan(t, user.ID, 2, models.GoalMaintain)))
	require.NoError(t, repo.ReplaceForDay(generatedMealPlan(t, user.ID, 1, models.GoalLoseFat)))

	plans, err := repo.FindAllByUserID(user.ID)
	require.NoError(t, err)
	require.Len(t, plans, 2)
	assert.Equal(t, 1, plans[0].Day)
	assert.Equal(t, 2, plans[1].Day)

	day1, err := repo.FindByUserIDAndDay(user.ID, 1)
	require.NoError(t, err)
	require.Len(t, day1.Meals, 4)
	assert.Equal(t, "High protein breakfast to keep you full", day1.Meals[0].Description)
	assert.Len(t, day1.Meals[0].FoodItems, 4)

	var meals, items int64
	require.NoError(t, db.Model(&models.Meal{}).Count(&meals).Error)
	require.NoError(t, db.Model(&models.FoodItem{}).Count(&items).Error)
	assert.Equal(t, int64(8), meals)
	assert.Equal(t, int64(32), items)

	_, err = repo.FindByUserIDAndDay(user.ID, 5)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	require.NoError(t, repo.DeleteAllByUserID(user.ID))
	plans, err = repo.FindAllByUserID(user.ID)
	require.NoError(t, err)
	assert.Empty(t, plans)
}

func TestMealPlanCustomMealAndFood(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	repo := NewMealPlanRepository(db)
	owner := createUser(t, users, "owner@example.com", models.RolePremium)
	other := createUser(t, users, "other@example.com", models.RolePremium)

	require.NoError(t, repo.ReplaceForDay(generatedMealPlan(t, owner.ID, 3, models.GoalMaintain)))
	plan, err := repo.FindByUserIDAndDay(owner.ID, 3)
	require.NoError(t, err)

	meal := &models.Meal{Name: "Shake", Calories: 300, Protein: 40, Carbs: 20, Fat: 5}
	require.NoError(t, repo.AddMeal(plan, meal))
	assert.NotZero(t, meal.ID)
	assert.Equal(t, 3059.0, plan.TotalCalories)

	stored, err := repo.FindByUserIDAndDay(owner.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 3059.0, stored.TotalCalories)
	assert.InDelta(t, 168.0, stored.TotalProtein, 1e-9)
	assert.Len(t, stored.Meals, 5)

	_, err = repo.FindMealForUser(meal.ID, other.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	found, err := repo.FindMealForUser(meal.ID, owner.ID)
	require.NoError(t, err)

	item := &models.FoodItem{Name: "Banana", Quantity: 120, Unit: "g", Calories: 107, Protein: 1.3, Carbs: 27.4, Fat: 0.4}
	require.NoError(t, repo.AddFoodItem(found, item))
	assert.Equal(t, 407.0, found.Calories)

	stored, err = repo.FindByUserIDAndDay(owner.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 3166.0, stored.TotalCalories)
	assert.Equal(t, 407.0, stored.Meals[4].Calories)
	require.Len(t, stored.Meals[4].FoodItems, 1)
	assert.Equal(t, "Banana", stored.Meals[4].FoodItems[0].Name)
}

func TestWorkoutPlanRepository(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	repo := NewWorkoutPlanRepository(db)
	owner := createUser(t, users, "w@example.com", models.RolePremium)
	other := createUser(t, users, "x@example.com", models.RoleFree)

	beginner, err := workoutplan.Generate(models.LevelBeginner, models.GoalMaintain)
	require.NoError(t, err)
	require.NoError(t, repo.ReplaceAll(owner.ID, beginner.Models(owner.ID)))

	advanced, err := workoutplan.Generate(models.LevelAdvanced, models.GoalLoseFat)
	require.NoError(t, err)
	rows := advanced.Models(owner.ID)
	require.NoError(t, repo.ReplaceAll(owner.ID, rows))
	for _, r := range rows {
		assert.NotZero(t, r.ID)
	}

	plans, err := repo.FindAllByUserID(owner.ID)
	require.NoError(t, err)
	require.Len(t, plans, 5)
	assert.Equal(t, "Chest & Triceps", plans[0].MuscleGroup)
	assert.Len(t, plans[0].Exercises, 7)

	var exercises int64
	require.NoError(t, db.Model(&models.Exercise{}).Count(&exercises).Error)
	assert.Equal(t, int64(7+7+7+7+6), exercises)

	legs, err := repo.FindByUserIDAndDay(owner.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, "Legs", legs.MuscleGroup)

	_, err = repo.FindByIDForUser(legs.ID, other.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	legs.Notes = "Heavy day"
	require.NoError(t, repo.Update(legs))

	chest, err := repo.FindByUserIDAndDay(owner.ID, 1)
	require.NoError(t, err)
	chest.Day = 3
	assert.True(t, errors.Is(repo.Update(chest), ErrDayTaken))
	chest.Day = 4
	require.NoError(t, repo.Update(chest))
	_, err = repo.FindByUserIDAndDay(owner.ID, 4)
	require.NoError(t, err)

	clash := &models.WorkoutPlan{UserID: owner.ID, Day: 3, MuscleGroup: "Legs", Level: models.LevelAdvanced}
	assert.Error(t, db.Create(clash).Error)

	extra := &models.Exercise{WorkoutPlanID: legs.ID, Name: "Sled Push", Sets: 3, Reps: "20 m", RestSeconds: 90}
	require.NoError(t, repo.AddExercise(extra))

	found, err := repo.FindExerciseForUser(extra.ID, owner.ID)
	require.NoError(t, err)
	found.Sets = 4
	require.NoError(t, repo.UpdateExercise(found))

	_, err = repo.FindExerciseForUser(extra.ID, other.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	legs, err = repo.FindByUserIDAndDay(owner.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, "Heavy day", legs.Notes)
	require.Len(t, legs.Exercises, 8)
	assert.Equal(t, 4, legs.Exercises[7].Sets)

	require.NoError(t, repo.DeleteExercise(extra.ID))
	legs, err = repo.FindByUserIDAndDay(owner.ID, 3)
	require.NoError(t, err)
	assert.Len(t, legs.Exercises, 7)
}

func TestSubscriptionRepository(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	repo := NewSubscriptionRepository(db)
	user := createUser(t, users, "s@example.com", models.RoleFree)
	admin := createUser(t, users, "root@example.com", models.RoleAdmin)

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	end := now.AddDate(0, 0, 30)
	sub := &models.Subscription{UserID: user.ID, Tier: models.RolePremium, StartDate: now, EndDate: &end, IsActive: true}
	require.NoError(t, repo.Save(sub, models.RolePremium))

	stored, err := users.GetUserByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RolePremium, stored.Role)

	expired, err := repo.FindExpired(now)
	require.NoError(t, err)
	assert.Empty(t, expired)

	expired, err = repo.FindExpired(end.Add(time.Minute))
	require.NoError(t, err)
	require.Len(t, expired, 1)

	require.NoError(t, repo.Expire(&expired[0], end.Add(time.Minute)))
	stored, err = users.GetUserByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleFree, stored.Role)

	found, err := repo.FindByUserID(user.ID)
	require.NoError(t, err)
	assert.False(t, found.IsActive)

	renewed := &models.Subscription{UserID: user.ID, Tier: models.RolePremium, StartDate: end, EndDate: &end, IsActive: true}
	require.NoError(t, repo.Save(renewed, models.RolePremium))
	found, err = repo.FindByUserID(user.ID)
	require.NoError(t, err)
	assert.True(t, found.IsActive)

	adminSub := &models.Subscription{UserID: admin.ID, Tier: models.RolePremium, StartDate: now, EndDate: &end, IsActive: true}
	require.NoError(t, repo.Save(adminSub, models.RolePremium))
	require.NoError(t, repo.Expire(adminSub, end))
	stored, err = users.GetUserByID(admin.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, stored.Role)
}
