package routes

import (
	"planova/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterWorkoutRoutes(api *gin.RouterGroup, workoutController *controllers.WorkoutController, g Guards) {
	workoutRoutes := api.Group("/workout")
	workoutRoutes.Use(g.Auth, g.Active)
	{
		workoutRoutes.GET("/plan", workoutController.ListWorkoutPlans)
		workoutRoutes.POST("/plan/generate", workoutController.GenerateWorkoutPlan)
		workoutRoutes.GET("/plan/:day", workoutController.GetWorkoutPlanByDay)
	}

	premiumRoutes := api.Group("/workout")
	premiumRoutes.Use(g.Auth, g.Active, g.Premium)
	{
		premiumRoutes.PUT("/plan/:id", workoutController.UpdateWorkoutPlan)
		premiumRoutes.POST("/plan/:id/exercise", workoutController.AddExercise)
		premiumRoutes.PUT("/exercise/:id", workoutController.UpdateExercise)
		premiumRoutes.DELETE("/exercise/:id", workoutController.DeleteExercise)
	}
}
