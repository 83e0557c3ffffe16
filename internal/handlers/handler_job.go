package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/stackscout/stackscout/internal/core/ports/services"
	"github.com/stackscout/stackscout/internal/dto"
	"github.com/stackscout/stackscout/internal/middleware"
)

// JobHandler handles job listing, bookmarks and ingestion.
type JobHandler struct {
	jobService       portssvc.JobSvcFacade
	ingestionService portssvc.IngestionSvcFacade
}

// NewJobHandler creates a new JobHandler.
func NewJobHandler(jobService portssvc.JobSvcFacade, ingestionService portssvc.IngestionSvcFacade) *JobHandler {
	return &JobHandler{jobService: jobService, ingestionService: ingestionService}
}

// registerJobRoutes sets up the authenticated job routes.
func registerJobRoutes(rg *gin.RouterGroup, jobService portssvc.JobSvcFacade, ingestionService portssvc.IngestionSvcFacade) {
	h := NewJobHandler(jobService, ingestionService)
	jobs := rg.Group("/jobs")
	{
		jobs.GET("", h.ListJobs)
		jobs.GET("/:id", h.GetJob)
		jobs.POST("/:id/save", h.SaveJob)
		jobs.DELETE("/:id/save", h.UnsaveJob)
		jobs.POST("/ingest", h.RunIngestion)
	}
}

// ListJobs godoc
// @Summary List jobs
// @Description Lists active jobs newest first. The salaryRange filter uses
// the same free-text syntax as scraped salaries, e.g. "100k+" or "80k-120k".
// @Tags jobs
// @Produce json
// @Param keyword query string false "Matched against role, company and description"
// @Param platform query string false "Source platform, e.g. remoteok"
// @Param location query string false "Location substring"
// @Param salaryRange query string false "Salary filter, e.g. 100k+"
// @Param limit query int false "Page size" default(20)
// @Param pageToken query string false "Cursor from a previous page"
// @Success 200 {object} dto.ListJobsResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /jobs [get]
func (h *JobHandler) ListJobs(c *gin.Context) {
	var params dto.ListJobsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	jobs, nextToken, err := h.jobService.ListJobs(c.Request.Context(), params)
	if err != nil {
		respondWithError(c, err, "Failed to list jobs")
		return
	}
	c.JSON(http.StatusOK, dto.ToListJobsResponse(jobs, nextToken))
}

// GetJob godoc
// @Summary Get a job by ID
// @Tags jobs
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} dto.JobResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /jobs/{id} [get]
func (h *JobHandler) GetJob(c *gin.Context) {
	job, err := h.jobService.GetJobByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, err, "Job not found")
		return
	}
	c.JSON(http.StatusOK, dto.ToJobResponse(job))
}

// SaveJob godoc
// @Summary Bookmark a job
// @Tags jobs
// @Param id path string true "Job ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /jobs/{id}/save [post]
func (h *JobHandler) SaveJob(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	if err := h.jobService.SaveJob(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondWithError(c, err, "Failed to save job")
		return
	}
	c.Status(http.StatusNoContent)
}

// UnsaveJob godoc
// @Summary Remove a job bookmark
// @Tags jobs
// @Param id path string true "Job ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /jobs/{id}/save [delete]
func (h *JobHandler) UnsaveJob(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	if err := h.jobService.UnsaveJob(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondWithError(c, err, "Failed to unsave job")
		return
	}
	c.Status(http.StatusNoContent)
}

// RunIngestion godoc
// @Summary Run a scrape across all sources
// @Description Fetches postings from every configured job board, normalizes
// them, and stores the results. Returns per-source counts.
// @Tags jobs
// @Accept json
// @Produce json
// @Param request body dto.RunIngestionRequest true "Search keywords"
// @Success 200 {object} dto.IngestionSummary
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /jobs/ingest [post]
func (h *JobHandler) RunIngestion(c *gin.Context) {
	var req dto.RunIngestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	summary, err := h.ingestionService.RunIngestion(c.Request.Context(), req.Keywords)
	if err != nil {
		respondWithError(c, err, "Ingestion run failed")
		return
	}
	c.JSON(http.StatusOK, summary)
}
