package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/autoaidc6/dalilscan-V2/internal/models"
	"github.com/autoaidc6/dalilscan-V2/internal/service"
	"github.com/autoaidc6/dalilscan-V2/internal/types"
)

// LogHandler exposes the log aggregator: meal and water logging, edits, the
// daily totals and the weekly chart.
type LogHandler struct {
	logService *service.LogService
}

func NewLogHandler(logService *service.LogService) *LogHandler {
	return &LogHandler{logService: logService}
}

func (h *LogHandler) RegisterRoutes(router *gin.RouterGroup) {
	logGroup := router.Group("/log")
	{
		logGroup.GET("", h.ListEntries)
		logGroup.POST("/meals", h.LogMeal)
		logGroup.PUT("/meals/:id", h.UpdateMeal)
		logGroup.POST("/water", h.AddWater)
		logGroup.GET("/summary", h.TodaySummary)
		logGroup.GET("/week", h.WeekChart)
		logGroup.DELETE("", h.ResetLog)
	}
}

func (h *LogHandler) ListEntries(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": h.logService.Entries(c.Request.Context(), userID)})
}

// LogMeal records a manual meal entry.
func (h *LogHandler) LogMeal(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.LogMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meal, unlocks := h.logService.LogMeal(c.Request.Context(), userID, req)
	c.JSON(http.StatusCreated, gin.H{"meal": meal, "notifications": unlocks})
}

// UpdateMeal corrects a logged meal's name, nutrition and image. The entry's
// timestamp and meal slot stay as recorded at creation. An id with no match
// leaves the log untouched and still returns 200; edits are corrections, not
// errors.
func (h *LogHandler) UpdateMeal(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var meal models.Meal
	if err := c.ShouldBindJSON(&meal); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	meal.ID = c.Param("id")

	h.logService.UpdateMeal(c.Request.Context(), userID, meal)
	c.JSON(http.StatusOK, gin.H{"message": "meal updated"})
}

// AddWater records one 250 ml glass.
func (h *LogHandler) AddWater(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	water, unlocks := h.logService.AddWater(c.Request.Context(), userID)
	c.JSON(http.StatusCreated, gin.H{"water": water, "notifications": unlocks})
}

func (h *LogHandler) TodaySummary(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.logService.TodaySummary(c.Request.Context(), userID))
}

func (h *LogHandler) WeekChart(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"days": h.logService.WeekChart(c.Request.Context(), userID)})
}

func (h *LogHandler) ResetLog(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	h.logService.Reset(c.Request.Context(), userID)
	c.JSON(http.StatusOK, gin.H{"message": "log cleared"})
}
