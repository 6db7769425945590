package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"planova/internal/middleware"
	"planova/internal/models"
	"planova/internal/services"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func setupTestRouter(user *models.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	if user != nil {
		router.Use(func(c *gin.Context) {
			c.Set(middleware.ContextUserID, user.ID)
			c.Set(middleware.ContextCurrentUser, user)
			c.Next()
		})
	}
	return router
}

func performRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func dataOf(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	data, ok := decodeBody(t, w)["data"].(map[string]interface{})
	require.True(t, ok, "response has no data object: %s", w.Body.String())
	return data
}

func freeUser() *models.User {
	return &models.User{ID: 1, Email: "free@example.com", IsActive: true, Role: models.RoleFree}
}

func premiumUser() *models.User {
	return &models.User{ID: 1, Email: "premium@example.com", IsActive: true, Role: models.RolePremium}
}

// referenceProfile is a 30 year old moderately active man with computed targets.
func referenceProfile(t *testing.T) *models.UserProfile {
	t.Helper()
	p := &models.UserProfile{
		ID:            7,
		UserID:        1,
		Gender:        models.GenderMale,
		DateOfBirth:   time.Date(1994, 6, 15, 0, 0, 0, 0, time.UTC),
		HeightCm:      180,
		WeightKg:      80,
		ActivityLevel: models.ActivityModerate,
		Goal:          models.GoalMaintain,
	}
	require.NoError(t, services.ApplyTargets(p, fixedNow))
	return p
}

// memoryCache is an in-process PlanCache that round-trips through JSON like
// the Redis one.
type memoryCache struct {
	mu          sync.Mutex
	items       map[string][]byte
	invalidated []uint
}

func newMemoryCache() *memoryCache {
	return &memoryCache{items: map[string][]byte{}}
}

func (m *memoryCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	raw, ok := m.items[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (m *memoryCache) Set(_ context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = raw
	return nil
}

func (m *memoryCache) InvalidateUser(_ context.Context, userID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.invalidated = append(m.invalidated, userID)
	m.items = map[string][]byte{}
	return nil
}

func assertStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, w.Code, w.Body.String())
}
