package controllers

import (
	"github.com/gin-gonic/gin"
	"net/http"

	"wanderguard/internal/guide"
	"wanderguard/internal/models/request_models"
	"wanderguard/internal/models/response_models"
	"wanderguard/internal/services"
	"wanderguard/pkg/utils"
)

type GuideController struct {
	guideService services.GuideServiceInterface
}

func NewGuideController(guideService services.GuideServiceInterface) *GuideController {
	return &GuideController{
		guideService: guideService,
	}
}

// GenerateGuide godoc
// @Summary Generate a travel guide
// @Description Build a full AI travel guide for the given trip parameters and parse its itinerary
// @Tags Guide
// @Accept json
// @Produce json
// @Param request body request_models.GenerateGuideRequest true "Trip parameters"
// @Success 200 {object} guide.TravelData
// @Security BearerAuth
// @Router /guides/generate [post]
func (g *GuideController) GenerateGuide(c *gin.Context) {
	var req request_models.GenerateGuideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	data, err := g.guideService.GenerateGuide(c.Request.Context(), c.GetString("session_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, data, "Travel guide generated successfully")
}

// ParseItinerary godoc
// @Summary Parse itinerary text into days
// @Tags Guide
// @Accept json
// @Produce json
// @Param request body request_models.ParseItineraryRequest true "Raw itinerary text"
// @Success 200 {object} response_models.ChecklistResponse
// @Router /guides/itinerary/parse [post]
func (g *GuideController) ParseItinerary(c *gin.Context) {
	var req request_models.ParseItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	days := g.guideService.ParseItinerary(req.Itinerary)
	utils.RespondSuccess(c, response_models.ChecklistResponse{Days: days}, "Itinerary parsed")
}

// UpdateChecklistItem godoc
// @Summary Update one checklist item
// @Description Replace the text and/or completed flag of one item; unknown ids are a no-op
// @Tags Guide
// @Accept json
// @Produce json
// @Param request body request_models.UpdateChecklistItemRequest true "Days plus target ids and fields"
// @Success 200 {object} response_models.ChecklistResponse
// @Router /guides/checklist/update [post]
func (g *GuideController) UpdateChecklistItem(c *gin.Context) {
	var req request_models.UpdateChecklistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	days := g.guideService.UpdateChecklistItem(req.Days, req.DayID, req.ItemID, guide.ItemPatch{
		Text:      req.Text,
		Completed: req.Completed,
	})
	utils.RespondSuccess(c, response_models.ChecklistResponse{Days: days}, "Checklist updated")
}

// AddChecklistItem godoc
// @Summary Append a blank checklist item to a day
// @Tags Guide
// @Accept json
// @Produce json
// @Param request body request_models.AddChecklistItemRequest true "Days plus target day id"
// @Success 200 {object} response_models.ChecklistResponse
// @Router /guides/checklist/add [post]
func (g *GuideController) AddChecklistItem(c *gin.Context) {
	var req request_models.AddChecklistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	days := g.guideService.AddChecklistItem(req.Days, req.DayID)
	utils.RespondSuccess(c, response_models.ChecklistResponse{Days: days}, "Checklist item added")
}

// DeleteChecklistItem godoc
// @Summary Remove one checklist item
// @Tags Guide
// @Accept json
// @Produce json
// @Param request body request_models.DeleteChecklistItemRequest true "Days plus target ids"
// @Success 200 {object} response_models.ChecklistResponse
// @Router /guides/checklist/delete [post]
func (g *GuideController) DeleteChecklistItem(c *gin.Context) {
	var req request_models.DeleteChecklistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	days := g.guideService.DeleteChecklistItem(req.Days, req.DayID, req.ItemID)
	utils.RespondSuccess(c, response_models.ChecklistResponse{Days: days}, "Checklist item deleted")
}

// OpenFlightEditor godoc
// @Summary Decode the flight comparison table for editing
// @Description Returns the decoded rows, or one blank row when no table exists
// @Tags Guide
// @Accept json
// @Produce json
// @Param request body request_models.OpenFlightEditorRequest true "Accommodations section text"
// @Success 200 {object} response_models.FlightEditorResponse
// @Router /guides/flights/open [post]
func (g *GuideController) OpenFlightEditor(c *gin.Context) {
	var req request_models.OpenFlightEditorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	flights := g.guideService.OpenFlightEditor(req.Accommodations)
	utils.RespondSuccess(c, response_models.FlightEditorResponse{Flights: flights}, "Flight editor ready")
}

// SaveFlights godoc
// @Summary Write edited flights back into the accommodations text
// @Tags Guide
// @Accept json
// @Produce json
// @Param request body request_models.SaveFlightsRequest true "Accommodations text plus edited rows"
// @Success 200 {object} response_models.SaveFlightsResponse
// @Security BearerAuth
// @Router /guides/flights/save [post]
func (g *GuideController) SaveFlights(c *gin.Context) {
	var req request_models.SaveFlightsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	updated := g.guideService.SaveFlights(c.GetString("session_id"), req.Accommodations, req.Flights, req.Currency)
	utils.RespondSuccess(c, response_models.SaveFlightsResponse{Accommodations: updated}, "Flights saved")
}

// RenderSection godoc
// @Summary Render section text into a display tree
// @Tags Guide
// @Accept json
// @Produce json
// @Param request body request_models.RenderSectionRequest true "Section text"
// @Success 200 {object} response_models.RenderSectionResponse
// @Router /guides/render [post]
func (g *GuideController) RenderSection(c *gin.Context) {
	var req request_models.RenderSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	nodes := g.guideService.RenderSection(req.Text)
	utils.RespondSuccess(c, response_models.RenderSectionResponse{Nodes: nodes}, "Section rendered")
}
