package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"planova/internal/cache"
	"planova/internal/controllers"
	"planova/internal/models"
	"planova/internal/repository/mocks"
	"planova/internal/utils"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testSecret = "routes-secret"

type pinger struct{}

func (pinger) PingContext(context.Context) error { return nil }

type fixture struct {
	router    *gin.Engine
	users     *mocks.MockUserRepository
	profiles  *mocks.MockUserProfileRepository
	mealPlans *mocks.MockMealPlanRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	f := &fixture{
		router:    gin.New(),
		users:     new(mocks.MockUserRepository),
		profiles:  new(mocks.MockUserProfileRepository),
		mealPlans: new(mocks.MockMealPlanRepository),
	}
	workouts := new(mocks.MockWorkoutPlanRepository)
	subs := new(mocks.MockSubscriptionRepository)

	RegisterRoutes(f.router, Handlers{
		Auth:         controllers.NewAuthController(f.users, testSecret, time.Hour),
		User:         controllers.NewUserController(f.users, cache.NoopCache{}),
		Profile:      controllers.NewUserProfileController(f.profiles),
		Nutrition:    controllers.NewNutritionController(f.profiles, f.mealPlans, cache.NoopCache{}),
		Workout:      controllers.NewWorkoutController(f.profiles, workouts, cache.NoopCache{}),
		Subscription: controllers.NewSubscriptionController(subs, nil, 30),
		Export:       controllers.NewExportController(f.profiles, f.mealPlans, workouts),
		Health:       controllers.NewHealthController(pinger{}, nil, "test"),
	}, NewGuards(testSecret, f.users))
	return f
}

func (f *fixture) do(t *testing.T, method, path string, user *models.User) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if user != nil {
		token, err := utils.GenerateToken(user.ID, user.Email, testSecret, time.Hour)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
		f.users.On("GetUserByID", user.ID).Return(user, nil)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	paths := []struct{ method, path string }{
		{http.MethodGet, "/api/v1/users/me"},
		{http.MethodDelete, "/api/v1/users/me"},
		{http.MethodGet, "/api/v1/user/profile"},
		{http.MethodGet, "/api/v1/nutrition/plan"},
		{http.MethodPost, "/api/v1/nutrition/meal-plan/generate?day=1"},
		{http.MethodGet, "/api/v1/workout/plan"},
		{http.MethodDelete, "/api/v1/workout/exercise/1"},
		{http.MethodGet, "/api/v1/subscription"},
		{http.MethodGet, "/api/v1/export/plans"},
	}

	f := newFixture(t)
	for _, p := range paths {
		t.Run(p.method+" "+p.path, func(t *testing.T) {
			w := f.do(t, p.method, p.path, nil)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestPremiumRoutesRejectFreeUsers(t *testing.T) {
	free := &models.User{ID: 2, Email: "free@example.com", IsActive: true, Role: models.RoleFree}
	paths := []struct{ method, path string }{
		{http.MethodPost, "/api/v1/nutrition/meal-plan/1/meal"},
		{http.MethodPost, "/api/v1/nutrition/meal/1/food"},
		{http.MethodPut, "/api/v1/workout/plan/1"},
		{http.MethodPost, "/api/v1/workout/plan/1/exercise"},
		{http.MethodPut, "/api/v1/workout/exercise/1"},
		{http.MethodDelete, "/api/v1/workout/exercise/1"},
	}

	for _, p := range paths {
		t.Run(p.method+" "+p.path, func(t *testing.T) {
			f := newFixture(t)
			w := f.do(t, p.method, p.path, free)
			assert.Equal(t, http.StatusForbidden, w.Code)
		})
	}
}

func TestStaticAndParamRoutesCoexist(t *testing.T) {
	user := &models.User{ID: 3, Email: "u@example.com", IsActive: true, Role: models.RoleFree}

	f := newFixture(t)
	f.profiles.On("FindByUserID", uint(3)).Return(nil, gorm.ErrRecordNotFound)
	w := f.do(t, http.MethodGet, "/api/v1/nutrition/meal-plan/preview", user)
	assert.Equal(t, http.StatusNotFound, w.Code)

	f = newFixture(t)
	f.mealPlans.On("FindByUserIDAndDay", uint(3), 4).Return(nil, gorm.ErrRecordNotFound)
	w = f.do(t, http.MethodGet, "/api/v1/nutrition/meal-plan/4", user)
	assert.Equal(t, http.StatusNotFound, w.Code)
	f.mealPlans.AssertExpectations(t)
}

func TestPublicRoutes(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, http.StatusOK, f.do(t, http.MethodGet, "/", nil).Code)
	assert.Equal(t, http.StatusOK, f.do(t, http.MethodGet, "/health", nil).Code)
	assert.Equal(t, http.StatusBadRequest, f.do(t, http.MethodPost, "/api/v1/auth/login", nil).Code)
}
