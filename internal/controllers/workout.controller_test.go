package controllers

import (
	"errors"
	"net/http"
	"planova/internal/models"
	"planova/internal/repository"
	"planova/internal/repository/mocks"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type workoutFixture struct {
	profiles *mocks.MockUserProfileRepository
	workouts *mocks.MockWorkoutPlanRepository
	cache    *memoryCache
	ctrl     *WorkoutController
}

func newWorkoutFixture() *workoutFixture {
	f := &workoutFixture{
		profiles: new(mocks.MockUserProfileRepository),
		workouts: new(mocks.MockWorkoutPlanRepository),
		cache:    newMemoryCache(),
	}
	f.ctrl = NewWorkoutController(f.profiles, f.workouts, f.cache)
	return f
}

func TestGenerateWorkoutPlan(t *testing.T) {
	existing := []models.WorkoutPlan{{ID: 3, UserID: 1, Day: 1}}

	tests := []struct {
		name           string
		user           *models.User
		query          string
		setupMock      func(*testing.T, *workoutFixture)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:           "level missing",
			user:           freeUser(),
			setupMock:      func(*testing.T, *workoutFixture) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Level is required",
		},
		{
			name:           "level unknown",
			user:           freeUser(),
			query:          "?level=elite",
			setupMock:      func(*testing.T, *workoutFixture) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid level",
		},
		{
			name:  "no profile",
			user:  freeUser(),
			query: "?level=beginner",
			setupMock: func(t *testing.T, f *workoutFixture) {
				f.profiles.On("FindByUserID", uint(1)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    profileMissingMessage,
		},
		{
			name:  "free user cannot regenerate",
			user:  freeUser(),
			query: "?level=beginner",
			setupMock: func(t *testing.T, f *workoutFixture) {
				f.profiles.On("FindByUserID", uint(1)).Return(referenceProfile(t), nil)
				f.workouts.On("FindAllByUserID", uint(1)).Return(existing, nil)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Workout plan already exists. Premium subscription required to regenerate.",
		},
		{
			name:  "premium user replaces",
			user:  premiumUser(),
			query: "?level=beginner",
			setupMock: func(t *testing.T, f *workoutFixture) {
				f.profiles.On("FindByUserID", uint(1)).Return(referenceProfile(t), nil)
				f.workouts.On("FindAllByUserID", uint(1)).Return(existing, nil)
				f.workouts.On("ReplaceAll", uint(1), mock.AnythingOfType("[]models.WorkoutPlan")).Return(nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "Workout plan generated successfully",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newWorkoutFixture()
			tt.setupMock(t, f)

			router := setupTestRouter(tt.user)
			router.POST("/workout/plan/generate", f.ctrl.GenerateWorkoutPlan)

			w := performRequest(router, http.MethodPost, "/workout/plan/generate"+tt.query, nil)

			assertStatus(t, w, tt.expectedStatus)
			assert.Equal(t, tt.expectedMsg, decodeBody(t, w)["message"])
			f.profiles.AssertExpectations(t)
			f.workouts.AssertExpectations(t)
		})
	}
}

func TestGenerateWorkoutPlanResponse(t *testing.T) {
	f := newWorkoutFixture()
	f.profiles.On("FindByUserID", uint(1)).Return(referenceProfile(t), nil)
	f.workouts.On("FindAllByUserID", uint(1)).Return([]models.WorkoutPlan{}, nil)
	f.workouts.On("ReplaceAll", uint(1), mock.MatchedBy(func(plans []models.WorkoutPlan) bool {
		return len(plans) == 3 && plans[0].MuscleGroup == "Full Body A" && plans[0].Notes == "Focus on form and technique"
	})).Run(func(args mock.Arguments) {
		plans := args.Get(1).([]models.WorkoutPlan)
		for i := range plans {
			plans[i].ID = uint(10 + i)
		}
	}).Return(nil)

	router := setupTestRouter(freeUser())
	router.POST("/workout/plan/generate", f.ctrl.GenerateWorkoutPlan)

	w := performRequest(router, http.MethodPost, "/workout/plan/generate?level=beginner", nil)

	assertStatus(t, w, http.StatusCreated)
	data := dataOf(t, w)
	assert.Equal(t, []interface{}{10.0, 11.0, 12.0}, data["workout_plan_ids"])
	assert.Equal(t, []interface{}{1.0, 3.0, 5.0}, data["days"])
	assert.Equal(t, []uint{1}, f.cache.invalidated)
}

func TestGetWorkoutPlanByDay(t *testing.T) {
	t.Run("cached after first read", func(t *testing.T) {
		f := newWorkoutFixture()
		stored := &models.WorkoutPlan{ID: 3, UserID: 1, Day: 1, MuscleGroup: "Full Body A"}
		f.workouts.On("FindByUserIDAndDay", uint(1), 1).Return(stored, nil).Once()

		router := setupTestRouter(freeUser())
		router.GET("/workout/plan/:day", f.ctrl.GetWorkoutPlanByDay)

		for i := 0; i < 2; i++ {
			w := performRequest(router, http.MethodGet, "/workout/plan/1", nil)
			assertStatus(t, w, http.StatusOK)
			assert.Equal(t, "Full Body A", dataOf(t, w)["muscle_group"])
		}
		f.workouts.AssertNumberOfCalls(t, "FindByUserIDAndDay", 1)
	})

	t.Run("rest day", func(t *testing.T) {
		f := newWorkoutFixture()
		f.workouts.On("FindByUserIDAndDay", uint(1), 2).Return(nil, gorm.ErrRecordNotFound)

		router := setupTestRouter(freeUser())
		router.GET("/workout/plan/:day", f.ctrl.GetWorkoutPlanByDay)

		w := performRequest(router, http.MethodGet, "/workout/plan/2", nil)

		assertStatus(t, w, http.StatusNotFound)
	})

	t.Run("invalid day", func(t *testing.T) {
		f := newWorkoutFixture()
		router := setupTestRouter(freeUser())
		router.GET("/workout/plan/:day", f.ctrl.GetWorkoutPlanByDay)

		w := performRequest(router, http.MethodGet, "/workout/plan/0", nil)

		assertStatus(t, w, http.StatusBadRequest)
	})
}

func TestUpdateWorkoutPlan(t *testing.T) {
	t.Run("partial update", func(t *testing.T) {
		f := newWorkoutFixture()
		f.workouts.On("FindByIDForUser", uint(3), uint(1)).
			Return(&models.WorkoutPlan{ID: 3, UserID: 1, Day: 1, MuscleGroup: "Full Body A", Level: models.LevelBeginner}, nil)
		f.workouts.On("Update", mock.MatchedBy(func(p *models.WorkoutPlan) bool {
			return p.Day == 2 && p.Notes == "Deload week" && p.MuscleGroup == "Full Body A"
		})).Return(nil)

		router := setupTestRouter(premiumUser())
		router.PUT("/workout/plan/:id", f.ctrl.UpdateWorkoutPlan)

		w := performRequest(router, http.MethodPut, "/workout/plan/3", map[string]interface{}{"day": 2, "notes": "Deload week"})

		assertStatus(t, w, http.StatusOK)
		f.workouts.AssertExpectations(t)
	})

	t.Run("day out of range", func(t *testing.T) {
		f := newWorkoutFixture()
		router := setupTestRouter(premiumUser())
		router.PUT("/workout/plan/:id", f.ctrl.UpdateWorkoutPlan)

		w := performRequest(router, http.MethodPut, "/workout/plan/3", map[string]interface{}{"day": 9})

		assertStatus(t, w, http.StatusBadRequest)
	})

	t.Run("invalid level", func(t *testing.T) {
		f := newWorkoutFixture()
		router := setupTestRouter(premiumUser())
		router.PUT("/workout/plan/:id", f.ctrl.UpdateWorkoutPlan)

		w := performRequest(router, http.MethodPut, "/workout/plan/3", map[string]interface{}{"level": "elite"})

		assertStatus(t, w, http.StatusBadRequest)
	})

	t.Run("day already scheduled", func(t *testing.T) {
		f := newWorkoutFixture()
		f.workouts.On("FindByIDForUser", uint(3), uint(1)).
			Return(&models.WorkoutPlan{ID: 3, UserID: 1, Day: 1, MuscleGroup: "Full Body A", Level: models.LevelBeginner}, nil)
		f.workouts.On("Update", mock.AnythingOfType("*models.WorkoutPlan")).Return(repository.ErrDayTaken)

		router := setupTestRouter(premiumUser())
		router.PUT("/workout/plan/:id", f.ctrl.UpdateWorkoutPlan)

		w := performRequest(router, http.MethodPut, "/workout/plan/3", map[string]interface{}{"day": 3})

		assertStatus(t, w, http.StatusConflict)
		assert.Equal(t, "Workout day already scheduled", decodeBody(t, w)["message"])
		assert.Empty(t, f.cache.invalidated)
	})

	t.Run("update failure", func(t *testing.T) {
		f := newWorkoutFixture()
		f.workouts.On("FindByIDForUser", uint(3), uint(1)).Return(&models.WorkoutPlan{ID: 3, UserID: 1, Day: 1}, nil)
		f.workouts.On("Update", mock.AnythingOfType("*models.WorkoutPlan")).Return(errors.New("database error"))

		router := setupTestRouter(premiumUser())
		router.PUT("/workout/plan/:id", f.ctrl.UpdateWorkoutPlan)

		w := performRequest(router, http.MethodPut, "/workout/plan/3", map[string]interface{}{"notes": "x"})

		assertStatus(t, w, http.StatusInternalServerError)
	})

	t.Run("plan of another user", func(t *testing.T) {
		f := newWorkoutFixture()
		f.workouts.On("FindByIDForUser", uint(8), uint(1)).Return(nil, gorm.ErrRecordNotFound)

		router := setupTestRouter(premiumUser())
		router.PUT("/workout/plan/:id", f.ctrl.UpdateWorkoutPlan)

		w := performRequest(router, http.MethodPut, "/workout/plan/8", map[string]interface{}{"notes": "x"})

		assertStatus(t, w, http.StatusNotFound)
	})
}

func TestAddExercise(t *testing.T) {
	tests := []struct {
		name           string
		body           map[string]interface{}
		setupMock      func(*workoutFixture)
		expectedStatus int
	}{
		{
			name: "added",
			body: map[string]interface{}{"name": "Face Pull", "sets": 3, "reps": "15", "rest_seconds": 60},
			setupMock: func(f *workoutFixture) {
				f.workouts.On("FindByIDForUser", uint(3), uint(1)).Return(&models.WorkoutPlan{ID: 3, UserID: 1}, nil)
				f.workouts.On("AddExercise", mock.MatchedBy(func(e *models.Exercise) bool {
					return e.WorkoutPlanID == 3 && e.Name == "Face Pull" && e.Sets == 3
				})).Return(nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "zero sets",
			body:           map[string]interface{}{"name": "Face Pull", "sets": 0, "reps": "15"},
			setupMock:      func(f *workoutFixture) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "negative rest",
			body:           map[string]interface{}{"name": "Face Pull", "sets": 3, "reps": "15", "rest_seconds": -10},
			setupMock:      func(f *workoutFixture) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newWorkoutFixture()
			tt.setupMock(f)

			router := setupTestRouter(premiumUser())
			router.POST("/workout/plan/:id/exercise", f.ctrl.AddExercise)

			w := performRequest(router, http.MethodPost, "/workout/plan/3/exercise", tt.body)

			assertStatus(t, w, tt.expectedStatus)
			f.workouts.AssertExpectations(t)
		})
	}
}

func TestUpdateAndDeleteExercise(t *testing.T) {
	t.Run("update", func(t *testing.T) {
		f := newWorkoutFixture()
		f.workouts.On("FindExerciseForUser", uint(21), uint(1)).
			Return(&models.Exercise{ID: 21, WorkoutPlanID: 3, Name: "Face Pull", Sets: 3, Reps: "15", RestSeconds: 60}, nil)
		f.workouts.On("UpdateExercise", mock.MatchedBy(func(e *models.Exercise) bool {
			return e.Sets == 4 && e.RestSeconds == 60 && e.Name == "Face Pull"
		})).Return(nil)

		router := setupTestRouter(premiumUser())
		router.PUT("/workout/exercise/:id", f.ctrl.UpdateExercise)

		w := performRequest(router, http.MethodPut, "/workout/exercise/21", map[string]interface{}{"sets": 4})

		assertStatus(t, w, http.StatusOK)
		f.workouts.AssertExpectations(t)
	})

	t.Run("update unknown", func(t *testing.T) {
		f := newWorkoutFixture()
		f.workouts.On("FindExerciseForUser", uint(22), uint(1)).Return(nil, gorm.ErrRecordNotFound)

		router := setupTestRouter(premiumUser())
		router.PUT("/workout/exercise/:id", f.ctrl.UpdateExercise)

		w := performRequest(router, http.MethodPut, "/workout/exercise/22", map[string]interface{}{"sets": 4})

		assertStatus(t, w, http.StatusNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		f := newWorkoutFixture()
		f.workouts.On("FindExerciseForUser", uint(21), uint(1)).Return(&models.Exercise{ID: 21}, nil)
		f.workouts.On("DeleteExercise", uint(21)).Return(nil)

		router := setupTestRouter(premiumUser())
		router.DELETE("/workout/exercise/:id", f.ctrl.DeleteExercise)

		w := performRequest(router, http.MethodDelete, "/workout/exercise/21", nil)

		assertStatus(t, w, http.StatusOK)
		assert.Equal(t, []uint{1}, f.cache.invalidated)
		f.workouts.AssertExpectations(t)
	})
}
