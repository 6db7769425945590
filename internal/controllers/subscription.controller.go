package controllers

import (
	"log"
	"net/http"
	"planova/internal/models"
	"planova/internal/repository"
	"planova/internal/utils"
	"time"

	"github.com/gin-gonic/gin"
)

type SubscriptionController struct {
	subs   repository.SubscriptionRepository
	mailer utils.Mailer
	period time.Duration
	now    func() time.Time
}

// NewSubscriptionController grants premium for days days per subscription.
// mailer may be nil, in which case no confirmation is sent.
func NewSubscriptionController(subs repository.SubscriptionRepository, mailer utils.Mailer, days int) *SubscriptionController {
	return &SubscriptionController{
		subs:   subs,
		mailer: mailer,
		period: time.Duration(days) * 24 * time.Hour,
		now:    time.Now,
	}
}

// Subscribe godoc
// @Summary Subscribe to premium
// @Description Start a premium subscription for the current user. Payment is not processed.
// @Tags subscription
// @Produce json
// @Security BearerAuth
// @Success 201 {object} map[string]interface{} "Subscription activated"
// @Failure 400 {object} map[string]interface{} "User already has an active premium subscription"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /subscription/subscribe [post]
func (sc *SubscriptionController) Subscribe(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	existing, err := sc.subs.FindByUserID(user.ID)
	if err != nil && !isNotFound(err) {
		respondError(c, http.StatusInternalServerError, "Failed to retrieve subscription", err.Error())
		return
	}
	if existing != nil && existing.IsActivePremium() {
		respondError(c, http.StatusBadRequest, "User already has an active premium subscription", "Subscription active")
		return
	}

	now := sc.now()
	end := now.Add(sc.period)
	sub := models.Subscription{
		UserID:    user.ID,
		Tier:      models.RolePremium,
		StartDate: now,
		EndDate:   &end,
		IsActive:  true,
	}
	if existing != nil {
		sub.ID = existing.ID
		sub.CreatedAt = existing.CreatedAt
	}

	if err := sc.subs.Save(&sub, models.RolePremium); err != nil {
		log.Printf("Failed to activate subscription for user %d: %v", user.ID, err)
		respondError(c, http.StatusInternalServerError, "Failed to activate subscription", err.Error())
		return
	}

	if sc.mailer != nil {
		go sc.sendStarted(user.Email, end)
	}

	respondSuccess(c, http.StatusCreated, "Subscription activated", sub)
}

func (sc *SubscriptionController) sendStarted(email string, end time.Time) {
	subject, body := utils.SubscriptionStartedEmail(end)
	if err := sc.mailer.Send(email, subject, body); err != nil {
		log.Printf("Failed to send subscription email to %s: %v", email, err)
	}
}

// GetSubscription godoc
// @Summary Get subscription
// @Description Return the subscription of the current user
// @Tags subscription
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Subscription retrieved successfully"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 404 {object} map[string]interface{} "No subscription found"
// @Router /subscription [get]
func (sc *SubscriptionController) GetSubscription(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	sub, err := sc.subs.FindByUserID(user.ID)
	if err != nil {
		if isNotFound(err) {
			respondError(c, http.StatusNotFound, "No subscription found", "The user has never subscribed")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to retrieve subscription", err.Error())
		return
	}

	respondSuccess(c, http.StatusOK, "Subscription retrieved successfully", sub)
}

// CancelSubscription godoc
// @Summary Cancel subscription
// @Description End the active subscription now and move the user back to the free tier
// @Tags subscription
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Subscription cancelled"
// @Failure 400 {object} map[string]interface{} "No active subscription found"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /subscription/cancel [post]
func (sc *SubscriptionController) CancelSubscription(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	sub, err := sc.subs.FindByUserID(user.ID)
	if err != nil && !isNotFound(err) {
		respondError(c, http.StatusInternalServerError, "Failed to retrieve subscription", err.Error())
		return
	}
	if sub == nil || !sub.IsActive {
		respondError(c, http.StatusBadRequest, "No active subscription found", "Nothing to cancel")
		return
	}

	if err := sc.subs.Expire(sub, sc.now()); err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to cancel subscription", err.Error())
		return
	}

	respondSuccess(c, http.StatusOK, "Subscription cancelled", sub)
}
