package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"planova/internal/models"
	"planova/internal/repository/mocks"
	"planova/internal/utils"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testSecret = "middleware-secret"

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetUint(ContextUserID)})
	})
	router.GET("/protected", handlers...)
	return router
}

func get(router *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	valid, err := utils.GenerateToken(4, "a@example.com", testSecret, time.Hour)
	require.NoError(t, err)
	expired, err := utils.GenerateToken(4, "a@example.com", testSecret, -time.Minute)
	require.NoError(t, err)
	otherKey, err := utils.GenerateToken(4, "a@example.com", "other-secret", time.Hour)
	require.NoError(t, err)
	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	tests := []struct {
		name           string
		header         string
		expectedStatus int
	}{
		{"valid token", "Bearer " + valid, http.StatusOK},
		{"lowercase scheme", "bearer " + valid, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + valid, http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-jwt", http.StatusUnauthorized},
		{"expired token", "Bearer " + expired, http.StatusUnauthorized},
		{"signed with another key", "Bearer " + otherKey, http.StatusUnauthorized},
		{"no user id claim", "Bearer " + noSubject, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(newRouter(AuthMiddleware(testSecret)), tt.header)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.JSONEq(t, `{"user_id":4}`, w.Body.String())
			}
		})
	}
}

func setUserID(id uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ContextUserID, id)
		c.Next()
	}
}

func TestActiveUser(t *testing.T) {
	tests := []struct {
		name           string
		setupMock      func(*mocks.MockUserRepository)
		expectedStatus int
	}{
		{
			name: "active user",
			setupMock: func(m *mocks.MockUserRepository) {
				m.On("GetUserByID", uint(4)).Return(&models.User{ID: 4, IsActive: true}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "inactive user",
			setupMock: func(m *mocks.MockUserRepository) {
				m.On("GetUserByID", uint(4)).Return(&models.User{ID: 4, IsActive: false}, nil)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "deleted user",
			setupMock: func(m *mocks.MockUserRepository) {
				m.On("GetUserByID", uint(4)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "database error",
			setupMock: func(m *mocks.MockUserRepository) {
				m.On("GetUserByID", uint(4)).Return(nil, errors.New("connection reset"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(mocks.MockUserRepository)
			tt.setupMock(users)

			w := get(newRouter(setUserID(4), ActiveUser(users)), "")

			assert.Equal(t, tt.expectedStatus, w.Code)
			users.AssertExpectations(t)
		})
	}

	t.Run("without auth", func(t *testing.T) {
		w := get(newRouter(ActiveUser(new(mocks.MockUserRepository))), "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRequirePremium(t *testing.T) {
	tests := []struct {
		role           models.Role
		expectedStatus int
	}{
		{models.RoleFree, http.StatusForbidden},
		{models.RolePremium, http.StatusOK},
		{models.RoleAdmin, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			users := new(mocks.MockUserRepository)
			users.On("GetUserByID", uint(4)).Return(&models.User{ID: 4, IsActive: true, Role: tt.role}, nil)

			w := get(newRouter(setUserID(4), ActiveUser(users), RequirePremium()), "")

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID())
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(ContextRequestID))
	})

	t.Run("generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		id := w.Header().Get(RequestIDHeader)
		assert.Len(t, id, 36)
		assert.Equal(t, id, w.Body.String())
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
		assert.Equal(t, "abc-123", w.Body.String())
	})
}
