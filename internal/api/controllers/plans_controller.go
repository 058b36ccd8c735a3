package controllers

import (
	"github.com/gin-gonic/gin"
	"net/http"
	"strconv"

	"wanderguard/internal/models/request_models"
	"wanderguard/internal/services"
	"wanderguard/pkg/utils"
)

type PlansController struct {
	planService services.PlanServiceInterface
}

func NewPlansController(planService services.PlanServiceInterface) *PlansController {
	return &PlansController{
		planService: planService,
	}
}

// ListPlans godoc
// @Summary List saved plans, most recent first
// @Tags Plans
// @Produce json
// @Success 200 {object} response_models.PlanListResponse
// @Security BearerAuth
// @Router /plans [get]
func (p *PlansController) ListPlans(c *gin.Context) {
	plans, err := p.planService.ListPlans(c.Request.Context(), c.GetString("session_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, plans, "Plans fetched successfully")
}

// SavePlan godoc
// @Summary Save a guide into the plan collection
// @Description Saves the posted guide, or the session's current guide when none is posted
// @Tags Plans
// @Accept json
// @Produce json
// @Param request body request_models.SavePlanRequest true "Guide and naming info"
// @Success 200 {object} guide.TravelData
// @Security BearerAuth
// @Router /plans [post]
func (p *PlansController) SavePlan(c *gin.Context) {
	var req request_models.SavePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	saved, err := p.planService.SavePlan(c.Request.Context(), c.GetString("session_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, saved, "Expedition saved successfully")
}

// RenamePlan godoc
// @Summary Rename one saved plan
// @Tags Plans
// @Accept json
// @Produce json
// @Param planId path string true "Plan ID"
// @Param request body request_models.RenamePlanRequest true "New display name"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /plans/{planId}/name [patch]
func (p *PlansController) RenamePlan(c *gin.Context) {
	planID := c.Param("planId")
	if planID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Plan ID is required")
		return
	}

	var req request_models.RenamePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "custom_name is required")
		return
	}

	if err := p.planService.RenamePlan(c.Request.Context(), c.GetString("session_id"), planID, req.CustomName); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Plan renamed successfully")
}

// DeletePlan godoc
// @Summary Delete one saved plan
// @Description Confirmation is the caller's responsibility; deletion is immediate
// @Tags Plans
// @Produce json
// @Param planId path string true "Plan ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /plans/{planId} [delete]
func (p *PlansController) DeletePlan(c *gin.Context) {
	planID := c.Param("planId")
	if planID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Plan ID is required")
		return
	}

	if err := p.planService.DeletePlan(c.Request.Context(), c.GetString("session_id"), planID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Plan deleted successfully")
}

// ClearPlans godoc
// @Summary Delete every saved plan of the session
// @Tags Plans
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /plans [delete]
func (p *PlansController) ClearPlans(c *gin.Context) {
	if err := p.planService.ClearPlans(c.Request.Context(), c.GetString("session_id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "All plans cleared")
}

// SearchPlans godoc
// @Summary Semantic search over saved plans
// @Tags Plans
// @Produce json
// @Param q query string true "Search query"
// @Param limit query int false "Max results" default(10)
// @Success 200 {array} response_models.PlanSearchHit
// @Security BearerAuth
// @Router /plans/search [get]
func (p *PlansController) SearchPlans(c *gin.Context) {
	query := c.Query("q")
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid limit")
		return
	}

	hits, err := p.planService.SearchPlans(c.Request.Context(), c.GetString("session_id"), query, limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, hits, "Search complete")
}
