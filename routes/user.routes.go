package routes

import (
	"planova/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterUserRoutes(api *gin.RouterGroup, userController *controllers.UserController, g Guards) {
	userRoutes := api.Group("/users")
	userRoutes.Use(g.Auth, g.Active)
	{
		userRoutes.GET("/me", userController.GetCurrentUser)
		userRoutes.PUT("/me", userController.UpdateCurrentUser)
		userRoutes.DELETE("/me", userController.DeleteCurrentUser)
	}
}
