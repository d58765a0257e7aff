package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"vivu/internal/api/controllers"
	"vivu/pkg/middleware"
	"vivu/pkg/utils"
)

func NewRouter(log *zap.Logger,
	itineraryController *controllers.ItineraryController,
	scheduleController *controllers.ScheduleController) *gin.Engine {

	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recovery(log))
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, itineraryController, scheduleController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	itineraryController *controllers.ItineraryController,
	scheduleController *controllers.ScheduleController) {

	r.GET("/healthz", func(c *gin.Context) {
		utils.RespondSuccess(c, gin.H{"status": "ok"}, "")
	})

	itineraryGroup := r.Group("/itineraries")
	itineraryGroup.POST("", itineraryController.CreateItinerary)
	itineraryGroup.GET("", itineraryController.ListItineraries)
	itineraryGroup.GET("/:itineraryId", itineraryController.GetItineraryById)
	itineraryGroup.POST("/:itineraryId/items", itineraryController.AddItem)
	itineraryGroup.DELETE("/:itineraryId/items/:itemId", itineraryController.RemoveItem)
	itineraryGroup.GET("/:itineraryId/schedule", scheduleController.GetSchedule)

	scheduleGroup := r.Group("/schedule")
	scheduleGroup.POST("/preview", scheduleController.PreviewSchedule)
	scheduleGroup.POST("/gap-check", scheduleController.CheckGap)

	r.NoRoute(func(c *gin.Context) {
		utils.RespondError(c, http.StatusNotFound, "Route not found")
	})
}
