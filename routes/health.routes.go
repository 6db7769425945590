package routes

import (
	"planova/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterHealthRoutes(router *gin.Engine, healthController *controllers.HealthController) {
	router.GET("/", healthController.Root)
	router.GET("/health", healthController.Health)
}
