package controllers

import (
	"darwinplanner/internal/services"
	"darwinplanner/pkg/utils"
	"github.com/gin-gonic/gin"
)

type TravelPlanController struct {
	travelPlanService services.TravelPlanServiceInterface
}

func NewTravelPlanController(travelPlanService services.TravelPlanServiceInterface) *TravelPlanController {
	return &TravelPlanController{
		travelPlanService: travelPlanService,
	}
}

// ListMyTrips godoc
// @Summary List the caller's saved travel plans, newest first
// @Tags TravelPlans
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /plans [get]
func (t *TravelPlanController) ListMyTrips(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	plans, err := t.travelPlanService.ListPlans(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plans, "Travel plans fetched successfully")
}

func (t *TravelPlanController) GetTrip(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	plan, err := t.travelPlanService.GetPlan(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Travel plan fetched successfully")
}

func (t *TravelPlanController) DeleteTrip(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	if err := t.travelPlanService.DeletePlan(c.Request.Context(), userID, c.Param("id")); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Travel plan deleted successfully")
}
