package controllers

import (
	"net/http"
	"planova/internal/export"
	"planova/internal/models"
	"planova/internal/repository"

	"github.com/gin-gonic/gin"
)

type ExportController struct {
	profiles  repository.UserProfileRepository
	mealPlans repository.MealPlanRepository
	workouts  repository.WorkoutPlanRepository
}

func NewExportController(
	profiles repository.UserProfileRepository,
	mealPlans repository.MealPlanRepository,
	workouts repository.WorkoutPlanRepository,
) *ExportController {
	return &ExportController{
		profiles:  profiles,
		mealPlans: mealPlans,
		workouts:  workouts,
	}
}

// ExportPlans godoc
// @Summary Download plans as a spreadsheet
// @Description Export the profile targets, every stored meal plan and the workout week as an XLSX workbook
// @Tags export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Success 200 {file} file "XLSX workbook"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /export/plans [get]
func (ec *ExportController) ExportPlans(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var profile *models.UserProfile
	found, err := ec.profiles.FindByUserID(user.ID)
	switch {
	case err == nil:
		profile = found
	case !isNotFound(err):
		respondError(c, http.StatusInternalServerError, "Failed to retrieve profile", err.Error())
		return
	}

	mealPlans, err := ec.mealPlans.FindAllByUserID(user.ID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to retrieve meal plans", err.Error())
		return
	}
	workouts, err := ec.workouts.FindAllByUserID(user.ID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to retrieve workout plans", err.Error())
		return
	}

	f, err := export.PlansWorkbook(profile, mealPlans, workouts)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to build workbook", err.Error())
		return
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to build workbook", err.Error())
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+export.Filename(user.ID)+`"`)
	c.Data(http.StatusOK, export.ContentType, buf.Bytes())
}
