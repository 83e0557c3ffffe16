package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/stackscout/stackscout/internal/core/ports/services"
	"github.com/stackscout/stackscout/internal/dto"
)

// StatsHandler serves the analytics overview.
type StatsHandler struct {
	analyticsService portssvc.AnalyticsSvcFacade
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(analyticsService portssvc.AnalyticsSvcFacade) *StatsHandler {
	return &StatsHandler{analyticsService: analyticsService}
}

// registerStatsRoutes sets up the authenticated analytics routes.
func registerStatsRoutes(rg *gin.RouterGroup, analyticsService portssvc.AnalyticsSvcFacade) {
	h := NewStatsHandler(analyticsService)
	rg.GET("/stats", h.GetStats)
}

// GetStats godoc
// @Summary Analytics overview
// @Description Returns overall job counts, a per-platform breakdown, top
// search keywords and the most recent ingestion runs.
// @Tags stats
// @Produce json
// @Param recentSearches query int false "How many recent runs to include" default(10)
// @Success 200 {object} dto.StatsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /stats [get]
func (h *StatsHandler) GetStats(c *gin.Context) {
	var params dto.StatsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	stats, err := h.analyticsService.GetOverview(c.Request.Context(), params)
	if err != nil {
		respondWithError(c, err, "Failed to build analytics overview")
		return
	}
	c.JSON(http.StatusOK, stats)
}
