package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"vivu/internal/models/request_models"
	"vivu/internal/services"
	"vivu/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
	}
}

// CreateItinerary godoc
// @Summary Create itinerary
// @Description Store a trip with its date range and scheduled items
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.CreateItineraryRequest true "Itinerary"
// @Success 201 {object} response_models.ItineraryDetailResponse
// @Failure 400 {object} utils.APIResponse
// @Router /itineraries [post]
func (ic *ItineraryController) CreateItinerary(c *gin.Context) {
	var req request_models.CreateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid itinerary: "+err.Error())
		return
	}

	itinerary, err := ic.itineraryService.CreateItinerary(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondWithStatus(c, http.StatusCreated, itinerary, "Itinerary created successfully")
}

// ListItineraries godoc
// @Summary List itineraries
// @Tags Itinerary
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20) minimum(1) maximum(100)
// @Success 200 {array} response_models.ItineraryResponse
// @Router /itineraries [get]
func (ic *ItineraryController) ListItineraries(c *gin.Context) {
	pageStr := c.DefaultQuery("page", "1")
	pageSizeStr := c.DefaultQuery("pageSize", "20")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return
	}

	itineraries, err := ic.itineraryService.ListItineraries(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itineraries, "Itineraries fetched successfully")
}

// GetItineraryById godoc
// @Summary Get itinerary by ID
// @Tags Itinerary
// @Produce json
// @Param itineraryId path string true "Itinerary ID"
// @Success 200 {object} response_models.ItineraryDetailResponse
// @Failure 404 {object} utils.APIResponse
// @Router /itineraries/{itineraryId} [get]
func (ic *ItineraryController) GetItineraryById(c *gin.Context) {
	itineraryId := c.Param("itineraryId")
	if itineraryId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Itinerary ID is required")
		return
	}

	itinerary, err := ic.itineraryService.GetItineraryById(c.Request.Context(), itineraryId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary fetched successfully")
}

// AddItem godoc
// @Summary Add item to itinerary
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param itineraryId path string true "Itinerary ID"
// @Param request body request_models.ItineraryItemRequest true "Item"
// @Success 201 {object} response_models.ItineraryItemResponse
// @Router /itineraries/{itineraryId}/items [post]
func (ic *ItineraryController) AddItem(c *gin.Context) {
	var req request_models.ItineraryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid item: "+err.Error())
		return
	}

	item, err := ic.itineraryService.AddItem(c.Request.Context(), c.Param("itineraryId"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondWithStatus(c, http.StatusCreated, item, "Item added to itinerary successfully")
}

// RemoveItem godoc
// @Summary Remove item from itinerary
// @Tags Itinerary
// @Produce json
// @Param itineraryId path string true "Itinerary ID"
// @Param itemId path string true "Item ID"
// @Success 200 {object} utils.APIResponse
// @Router /itineraries/{itineraryId}/items/{itemId} [delete]
func (ic *ItineraryController) RemoveItem(c *gin.Context) {
	err := ic.itineraryService.RemoveItem(c.Request.Context(), c.Param("itineraryId"), c.Param("itemId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Item removed from itinerary successfully")
}
