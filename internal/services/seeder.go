package services

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"planova/internal/mealplan"
	"planova/internal/models"
	"planova/internal/repository"
	"planova/internal/utils"
	"planova/internal/workoutplan"
	"time"

	"gorm.io/gorm"
)

const (
	DefaultDemoUsers = 25
	DemoPassword     = "DemoPassword123!"
	demoEmailPattern = "demo%@planova.dev"
)

// EnsureAdminUser creates the configured admin account, or promotes an
// existing account with that email. An empty email is a no-op.
func EnsureAdminUser(users repository.UserRepository, email, password string) (*models.User, error) {
	if email == "" {
		admins, err := users.CountByRole(models.RoleAdmin)
		if err != nil {
			return nil, fmt.Errorf("failed to count admin users: %w", err)
		}
		if admins == 0 {
			log.Println("Warning: no admin account exists and ADMIN_EMAIL is not set")
		}
		return nil, nil
	}

	user, err := users.GetUserByEmail(email)
	switch {
	case err == nil:
		if user.Role == models.RoleAdmin {
			return user, nil
		}
		user.Role = models.RoleAdmin
		if err := users.UpdateUser(user); err != nil {
			return nil, fmt.Errorf("failed to promote %s to admin: %w", email, err)
		}
		log.Printf("Promoted %s to admin", email)
		return user, nil
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, fmt.Errorf("failed to look up admin user: %w", err)
	}

	if password == "" {
		return nil, fmt.Errorf("ADMIN_PASSWORD is required to create admin user %s", email)
	}
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user = &models.User{
		Email:    email,
		Password: hashed,
		IsActive: true,
		Role:     models.RoleAdmin,
	}
	if err := users.CreateUser(user); err != nil {
		return nil, fmt.Errorf("failed to create admin user: %w", err)
	}
	log.Printf("Created admin user %s", email)
	return user, nil
}

func demoEmail(index int) string {
	return fmt.Sprintf("demo%d@planova.dev", index)
}

// SeedDemoUsers creates numUsers free accounts with a random profile, a
// week of meal plans and a generated workout split. Existing demo emails are
// skipped, so the seeder can be rerun. It returns how many users it created.
func SeedDemoUsers(db *gorm.DB, numUsers int, seed int64, today time.Time) (int, error) {
	hashed, err := utils.HashPassword(DemoPassword)
	if err != nil {
		return 0, err
	}

	r := rand.New(rand.NewSource(seed))
	startTime := time.Now()
	created := 0

	for i := 1; i <= numUsers; i++ {
		profile := randomProfile(r, today)
		level := randomLevel(r)

		var count int64
		if err := db.Unscoped().Model(&models.User{}).Where("email = ?", demoEmail(i)).Count(&count).Error; err != nil {
			return created, fmt.Errorf("failed to check %s: %w", demoEmail(i), err)
		}
		if count > 0 {
			continue
		}

		if err := ApplyTargets(profile, today); err != nil {
			log.Printf("Skipping %s: %v", demoEmail(i), err)
			continue
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			return seedDemoUser(tx, demoEmail(i), hashed, profile, level)
		})
		if err != nil {
			return created, fmt.Errorf("failed to seed %s: %w", demoEmail(i), err)
		}
		created++

		if created%100 == 0 {
			log.Printf("Seeded %d demo users", created)
		}
	}

	log.Printf("Seeded %d demo users in %s", created, time.Since(startTime))
	return created, nil
}

func seedDemoUser(tx *gorm.DB, email, hashed string, profile *models.UserProfile, level models.Level) error {
	user := &models.User{Email: email, Password: hashed, IsActive: true, Role: models.RoleFree}
	if err := tx.Create(user).Error; err != nil {
		return err
	}

	profile.UserID = user.ID
	if err := tx.Create(profile).Error; err != nil {
		return err
	}

	plan, err := mealplan.Generate(MealTargets(profile), profile.Goal)
	if err != nil {
		return err
	}
	for day := 1; day <= 7; day++ {
		if err := tx.Create(plan.Model(user.ID, day)).Error; err != nil {
			return err
		}
	}

	week, err := workoutplan.Generate(level, profile.Goal)
	if err != nil {
		return err
	}
	workouts := week.Models(user.ID)
	return tx.Create(&workouts).Error
}

// CleanupDemoUsers hard-deletes every demo account and everything it owns.
func CleanupDemoUsers(db *gorm.DB) (int64, error) {
	var ids []uint
	err := db.Unscoped().Model(&models.User{}).Where("email LIKE ?", demoEmailPattern).Pluck("id", &ids).Error
	if err != nil {
		return 0, fmt.Errorf("failed to list demo users: %w", err)
	}

	users := repository.NewUserRepository(db)
	var deleted int64
	for _, id := range ids {
		if err := users.DeleteUser(id); err != nil {
			return deleted, fmt.Errorf("failed to delete demo user %d: %w", id, err)
		}
		deleted++
	}

	log.Printf("Deleted %d demo users", deleted)
	return deleted, nil
}

func randomProfile(r *rand.Rand, today time.Time) *models.UserProfile {
	genders := []models.Gender{models.GenderMale, models.GenderFemale, models.GenderOther}
	activities := []models.ActivityLevel{models.ActivitySedentary, models.ActivityLight, models.ActivityModerate, models.ActivityIntense}
	goals := []models.Goal{models.GoalLoseFat, models.GoalMaintain, models.GoalGainMuscle}

	age := r.Intn(41) + 20 // 20-60
	dob := time.Date(today.Year()-age, time.Month(r.Intn(12)+1), r.Intn(28)+1, 0, 0, 0, 0, time.UTC)

	profile := &models.UserProfile{
		Gender:        genders[r.Intn(len(genders))],
		DateOfBirth:   dob,
		HeightCm:      float64(155 + r.Intn(41)),
		WeightKg:      float64(50 + r.Intn(61)),
		ActivityLevel: activities[r.Intn(len(activities))],
		Goal:          goals[r.Intn(len(goals))],
	}
	if r.Intn(3) == 0 {
		bf := float64(10 + r.Intn(21))
		profile.BodyFatPercent = &bf
	}
	return profile
}

func randomLevel(r *rand.Rand) models.Level {
	levels := []models.Level{models.LevelBeginner, models.LevelIntermediate, models.LevelAdvanced}
	return levels[r.Intn(len(levels))]
}
