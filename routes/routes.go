package routes

import (
	"planova/internal/controllers"
	"planova/internal/middleware"
	"planova/internal/repository"

	"github.com/gin-gonic/gin"
)

const APIPrefix = "/api/v1"

// Guards are the middleware chains protecting the API groups.
type Guards struct {
	Auth    gin.HandlerFunc
	Active  gin.HandlerFunc
	Premium gin.HandlerFunc
}

func NewGuards(secret string, users repository.UserRepository) Guards {
	return Guards{
		Auth:    middleware.AuthMiddleware(secret),
		Active:  middleware.ActiveUser(users),
		Premium: middleware.RequirePremium(),
	}
}

type Handlers struct {
	Auth         *controllers.AuthController
	User         *controllers.UserController
	Profile      *controllers.UserProfileController
	Nutrition    *controllers.NutritionController
	Workout      *controllers.WorkoutController
	Subscription *controllers.SubscriptionController
	Export       *controllers.ExportController
	Health       *controllers.HealthController
}

// RegisterRoutes mounts every group of the API on router.
func RegisterRoutes(router *gin.Engine, h Handlers, g Guards) {
	RegisterHealthRoutes(router, h.Health)
	RegisterSwaggerRoutes(router)

	api := router.Group(APIPrefix)
	RegisterAuthRoutes(api, h.Auth)
	RegisterUserRoutes(api, h.User, g)
	RegisterUserProfileRoutes(api, h.Profile, g)
	RegisterNutritionRoutes(api, h.Nutrition, g)
	RegisterWorkoutRoutes(api, h.Workout, g)
	RegisterSubscriptionRoutes(api, h.Subscription, g)
	RegisterExportRoutes(api, h.Export, g)
}
