package routes

import (
	"planova/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterUserProfileRoutes(api *gin.RouterGroup, userProfileController *controllers.UserProfileController, g Guards) {
	profileRoutes := api.Group("/user/profile")
	profileRoutes.Use(g.Auth, g.Active)
	{
		profileRoutes.GET("", userProfileController.GetUserProfile)
		profileRoutes.POST("", userProfileController.CreateUserProfile)
		profileRoutes.PUT("", userProfileController.UpdateUserProfile)
		profileRoutes.DELETE("", userProfileController.DeleteUserProfile)
	}
}
