package routes

import (
	"planova/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterSubscriptionRoutes(api *gin.RouterGroup, subscriptionController *controllers.SubscriptionController, g Guards) {
	subscriptionRoutes := api.Group("/subscription")
	subscriptionRoutes.Use(g.Auth, g.Active)
	{
		subscriptionRoutes.GET("", subscriptionController.GetSubscription)
		subscriptionRoutes.POST("/subscribe", subscriptionController.Subscribe)
		subscriptionRoutes.POST("/cancel", subscriptionController.CancelSubscription)
	}
}
