package controllers

import (
	"context"
	"errors"
	"net/http"
	"planova/internal/models"
	"planova/internal/repository/mocks"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type signalMailer struct {
	sent chan string
}

func (m *signalMailer) Send(recipient, subject, message string) error {
	m.sent <- recipient
	return nil
}

func newSubscriptionController(subs *mocks.MockSubscriptionRepository, mailer *signalMailer) *SubscriptionController {
	var sc *SubscriptionController
	if mailer != nil {
		sc = NewSubscriptionController(subs, mailer, 30)
	} else {
		sc = NewSubscriptionController(subs, nil, 30)
	}
	sc.now = func() time.Time { return fixedNow }
	return sc
}

func TestSubscribe(t *testing.T) {
	wantEnd := fixedNow.AddDate(0, 0, 30)

	tests := []struct {
		name           string
		setupMock      func(*mocks.MockSubscriptionRepository)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "first subscription",
			setupMock: func(m *mocks.MockSubscriptionRepository) {
				m.On("FindByUserID", uint(1)).Return(nil, gorm.ErrRecordNotFound)
				m.On("Save", mock.MatchedBy(func(s *models.Subscription) bool {
					return s.UserID == 1 && s.Tier == models.RolePremium && s.IsActive &&
						s.EndDate != nil && s.EndDate.Equal(wantEnd)
				}), models.RolePremium).Return(nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "Subscription activated",
		},
		{
			name: "renew after cancellation",
			setupMock: func(m *mocks.MockSubscriptionRepository) {
				m.On("FindByUserID", uint(1)).Return(&models.Subscription{ID: 5, UserID: 1, Tier: models.RolePremium, IsActive: false}, nil)
				m.On("Save", mock.MatchedBy(func(s *models.Subscription) bool {
					return s.ID == 5 && s.IsActive
				}), models.RolePremium).Return(nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "Subscription activated",
		},
		{
			name: "already premium",
			setupMock: func(m *mocks.MockSubscriptionRepository) {
				m.On("FindByUserID", uint(1)).Return(&models.Subscription{ID: 5, UserID: 1, Tier: models.RolePremium, IsActive: true}, nil)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "User already has an active premium subscription",
		},
		{
			name: "save failure",
			setupMock: func(m *mocks.MockSubscriptionRepository) {
				m.On("FindByUserID", uint(1)).Return(nil, gorm.ErrRecordNotFound)
				m.On("Save", mock.AnythingOfType("*models.Subscription"), models.RolePremium).Return(errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "Failed to activate subscription",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subs := new(mocks.MockSubscriptionRepository)
			tt.setupMock(subs)

			router := setupTestRouter(freeUser())
			router.POST("/subscription/subscribe", newSubscriptionController(subs, nil).Subscribe)

			w := performRequest(router, http.MethodPost, "/subscription/subscribe", nil)

			assertStatus(t, w, tt.expectedStatus)
			assert.Equal(t, tt.expectedMsg, decodeBody(t, w)["message"])
			subs.AssertExpectations(t)
		})
	}
}

func TestSubscribeSendsConfirmation(t *testing.T) {
	subs := new(mocks.MockSubscriptionRepository)
	subs.On("FindByUserID", uint(1)).Return(nil, gorm.ErrRecordNotFound)
	subs.On("Save", mock.AnythingOfType("*models.Subscription"), models.RolePremium).Return(nil)
	mailer := &signalMailer{sent: make(chan string, 1)}

	router := setupTestRouter(freeUser())
	router.POST("/subscription/subscribe", newSubscriptionController(subs, mailer).Subscribe)

	w := performRequest(router, http.MethodPost, "/subscription/subscribe", nil)
	assertStatus(t, w, http.StatusCreated)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	select {
	case recipient := <-mailer.sent:
		assert.Equal(t, "free@example.com", recipient)
	case <-ctx.Done():
		require.Fail(t, "confirmation email was not sent")
	}
}

func TestGetSubscription(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		subs := new(mocks.MockSubscriptionRepository)
		subs.On("FindByUserID", uint(1)).Return(&models.Subscription{ID: 5, UserID: 1, Tier: models.RolePremium, IsActive: true}, nil)

		router := setupTestRouter(premiumUser())
		router.GET("/subscription", newSubscriptionController(subs, nil).GetSubscription)

		w := performRequest(router, http.MethodGet, "/subscription", nil)

		assertStatus(t, w, http.StatusOK)
		assert.Equal(t, "premium", dataOf(t, w)["tier"])
	})

	t.Run("none", func(t *testing.T) {
		subs := new(mocks.MockSubscriptionRepository)
		subs.On("FindByUserID", uint(1)).Return(nil, gorm.ErrRecordNotFound)

		router := setupTestRouter(freeUser())
		router.GET("/subscription", newSubscriptionController(subs, nil).GetSubscription)

		w := performRequest(router, http.MethodGet, "/subscription", nil)

		assertStatus(t, w, http.StatusNotFound)
		assert.Equal(t, "No subscription found", decodeBody(t, w)["message"])
	})
}

func TestCancelSubscription(t *testing.T) {
	tests := []struct {
		name           string
		setupMock      func(*mocks.MockSubscriptionRepository)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "cancels active subscription",
			setupMock: func(m *mocks.MockSubscriptionRepository) {
				sub := &models.Subscription{ID: 5, UserID: 1, Tier: models.RolePremium, IsActive: true}
				m.On("FindByUserID", uint(1)).Return(sub, nil)
				m.On("Expire", sub, fixedNow).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "Subscription cancelled",
		},
		{
			name: "never subscribed",
			setupMock: func(m *mocks.MockSubscriptionRepository) {
				m.On("FindByUserID", uint(1)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "No active subscription found",
		},
		{
			name: "already inactive",
			setupMock: func(m *mocks.MockSubscriptionRepository) {
				m.On("FindByUserID", uint(1)).Return(&models.Subscription{ID: 5, UserID: 1, IsActive: false}, nil)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "No active subscription found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subs := new(mocks.MockSubscriptionRepository)
			tt.setupMock(subs)

			router := setupTestRouter(premiumUser())
			router.POST("/subscription/cancel", newSubscriptionController(subs, nil).CancelSubscription)

			w := performRequest(router, http.MethodPost, "/subscription/cancel", nil)

			assertStatus(t, w, tt.expectedStatus)
			assert.Equal(t, tt.expectedMsg, decodeBody(t, w)["message"])
			subs.AssertExpectations(t)
		})
	}
}
