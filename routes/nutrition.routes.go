package routes

import (
	"planova/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterNutritionRoutes(api *gin.RouterGroup, nutritionController *controllers.NutritionController, g Guards) {
	nutritionRoutes := api.Group("/nutrition")
	nutritionRoutes.Use(g.Auth, g.Active)
	{
		nutritionRoutes.GET("/plan", nutritionController.GetNutritionPlan)
		nutritionRoutes.GET("/foods", nutritionController.ListFoods)
		nutritionRoutes.GET("/meal-plan", nutritionController.ListMealPlans)
		nutritionRoutes.POST("/meal-plan/generate", nutritionController.GenerateMealPlan)
		nutritionRoutes.GET("/meal-plan/preview", nutritionController.PreviewMealPlan)
		nutritionRoutes.GET("/meal-plan/:day", nutritionController.GetMealPlanByDay)
	}

	premiumRoutes := api.Group("/nutrition")
	premiumRoutes.Use(g.Auth, g.Active, g.Premium)
	{
		premiumRoutes.POST("/meal-plan/:day/meal", nutritionController.AddMeal)
		premiumRoutes.POST("/meal/:meal_id/food", nutritionController.AddFoodItem)
	}
}
