package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/stackscout/stackscout/internal/core/ports/services"
	"github.com/stackscout/stackscout/internal/dto"
	"github.com/stackscout/stackscout/internal/middleware"
)

// RecommendationHandler serves personalized job recommendations.
type RecommendationHandler struct {
	recommendationService portssvc.RecommendationSvcFacade
}

// NewRecommendationHandler creates a new RecommendationHandler.
func NewRecommendationHandler(recommendationService portssvc.RecommendationSvcFacade) *RecommendationHandler {
	return &RecommendationHandler{recommendationService: recommendationService}
}

// registerRecommendationRoutes sets up the authenticated recommendation routes.
func registerRecommendationRoutes(rg *gin.RouterGroup, recommendationService portssvc.RecommendationSvcFacade) {
	h := NewRecommendationHandler(recommendationService)
	rg.GET("/recommendations", h.ListRecommendations)
}

// ListRecommendations godoc
// @Summary List job recommendations
// @Description Scores recent jobs against the user's saved-job profile and
// returns the best matches with their reasons.
// @Tags recommendations
// @Produce json
// @Param limit query int false "Maximum recommendations" default(10)
// @Success 200 {object} dto.ListRecommendationsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /recommendations [get]
func (h *RecommendationHandler) ListRecommendations(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	var params dto.ListRecommendationsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	recommendations, err := h.recommendationService.GenerateRecommendations(c.Request.Context(), userID, params.Limit)
	if err != nil {
		respondWithError(c, err, "Failed to generate recommendations")
		return
	}

	resp := dto.ListRecommendationsResponse{
		Recommendations: make([]dto.RecommendationResponse, len(recommendations)),
	}
	for i := range recommendations {
		resp.Recommendations[i] = dto.ToRecommendationResponse(&recommendations[i])
	}
	c.JSON(http.StatusOK, resp)
}
