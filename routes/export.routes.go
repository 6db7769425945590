package routes

import (
	"planova/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterExportRoutes(api *gin.RouterGroup, exportController *controllers.ExportController, g Guards) {
	exportRoutes := api.Group("/export")
	exportRoutes.Use(g.Auth, g.Active)
	{
		exportRoutes.GET("/plans", exportController.ExportPlans)
	}
}
