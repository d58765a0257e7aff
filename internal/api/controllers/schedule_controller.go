package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"vivu/internal/models/request_models"
	"vivu/internal/services"
	"vivu/pkg/itinerary"
	"vivu/pkg/utils"
)

type ScheduleController struct {
	scheduleService services.ScheduleServiceInterface
}

func NewScheduleController(scheduleService services.ScheduleServiceInterface) *ScheduleController {
	return &ScheduleController{
		scheduleService: scheduleService,
	}
}

// GetSchedule godoc
// @Summary Day-by-day schedule of a stored itinerary
// @Description Items grouped per day, ordered by start time, with travel-time warnings between consecutive items
// @Tags Schedule
// @Produce json
// @Param itineraryId path string true "Itinerary ID"
// @Success 200 {object} response_models.ScheduleResponse
// @Failure 404 {object} utils.APIResponse
// @Router /itineraries/{itineraryId}/schedule [get]
func (sc *ScheduleController) GetSchedule(c *gin.Context) {
	itineraryId := c.Param("itineraryId")
	if itineraryId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Itinerary ID is required")
		return
	}

	schedule, err := sc.scheduleService.GetScheduleForItinerary(c.Request.Context(), itineraryId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, schedule, "Schedule fetched successfully")
}

// PreviewSchedule godoc
// @Summary Schedule for an unsaved itinerary
// @Tags Schedule
// @Accept json
// @Produce json
// @Param request body itinerary.Itinerary true "Itinerary"
// @Success 200 {object} response_models.ScheduleResponse
// @Router /schedule/preview [post]
func (sc *ScheduleController) PreviewSchedule(c *gin.Context) {
	var req itinerary.Itinerary
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid itinerary: "+err.Error())
		return
	}
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		utils.RespondError(c, http.StatusBadRequest, "start_date and end_date are required")
		return
	}

	schedule, err := sc.scheduleService.BuildSchedule(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, schedule, "Schedule built successfully")
}

// CheckGap godoc
// @Summary Check the gap between two consecutive items
// @Tags Schedule
// @Accept json
// @Produce json
// @Param request body request_models.GapCheckRequest true "Consecutive items"
// @Success 200 {object} response_models.GapCheckResponse
// @Router /schedule/gap-check [post]
func (sc *ScheduleController) CheckGap(c *gin.Context) {
	var req request_models.GapCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid items: "+err.Error())
		return
	}

	utils.RespondSuccess(c, sc.scheduleService.CheckGap(c.Request.Context(), req.From.Item(), req.To.Item()), "Gap checked")
}
